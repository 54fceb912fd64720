package projectrepository

import (
	"portfolio-go-backend/ent"
	ur "portfolio-go-backend/pkg/usecase/repository"
)

type projectRepository struct {
	client *ent.Client
}

func NewProjectRepository(client *ent.Client) ur.Project {
	return &projectRepository{client}
}
