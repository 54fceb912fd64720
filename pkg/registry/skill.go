package registry

import (
	"portfolio-go-backend/pkg/adapter/controller"
	skillrepository "portfolio-go-backend/pkg/adapter/repository/skillrepository"
	usecase "portfolio-go-backend/pkg/usecase/usecase/skill"
)

func (r *registry) NewSkillController() controller.Skill {
	repo := skillrepository.NewSkillRepository(r.client)
	u := usecase.NewSkillUseCase(repo)

	return controller.NewSkillController(u)
}
