package usecase

import (
	"context"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type pageUseCase struct {
	profileRepository       repository.Profile
	siteSettingsRepository  repository.SiteSettings
	educationRepository     repository.Education
	experienceRepository    repository.Experience
	skillRepository         repository.Skill
	certificationRepository repository.Certification
	projectRepository       repository.Project
}

type Page interface {
	Home(ctx context.Context) (*model.HomeContext, error)
	Academic(ctx context.Context) (*model.AcademicContext, error)
	Experience(ctx context.Context) (*model.ExperienceContext, error)
	Certifications(ctx context.Context) (*model.CertificationsContext, error)
	Projects(ctx context.Context, page int) (*model.ProjectListContext, error)
	ProjectDetail(ctx context.Context, id ulid.ID) (*model.ProjectDetailContext, error)
	Contact(ctx context.Context) (*model.ContactPageContext, error)
}

// This function creates new page use case
func NewPageUseCase(
	profileRepository repository.Profile,
	siteSettingsRepository repository.SiteSettings,
	educationRepository repository.Education,
	experienceRepository repository.Experience,
	skillRepository repository.Skill,
	certificationRepository repository.Certification,
	projectRepository repository.Project,
) Page {
	return &pageUseCase{
		profileRepository:       profileRepository,
		siteSettingsRepository:  siteSettingsRepository,
		educationRepository:     educationRepository,
		experienceRepository:    experienceRepository,
		skillRepository:         skillRepository,
		certificationRepository: certificationRepository,
		projectRepository:       projectRepository,
	}
}

const (
	featuredProjectLimit  = 3
	recentExperienceLimit = 3
	projectsPerPage       = 6
)

// base loads the profile and site settings shared by every page.
// Both are optional: a fresh install renders with nil values.
func (p *pageUseCase) base(ctx context.Context) (model.BaseContext, error) {
	profile, err := p.profileRepository.First(ctx)
	if err != nil {
		return model.BaseContext{}, err
	}

	settings, err := p.siteSettingsRepository.First(ctx)
	if err != nil {
		return model.BaseContext{}, err
	}

	return model.BaseContext{
		Profile:      profile,
		SiteSettings: settings,
	}, nil
}

func (p *pageUseCase) Home(ctx context.Context) (*model.HomeContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	featuredSkills, err := p.skillRepository.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	featuredProjects, err := p.projectRepository.ListFeatured(ctx, featuredProjectLimit)
	if err != nil {
		return nil, err
	}

	recentExperiences, err := p.experienceRepository.ListRecent(ctx, recentExperienceLimit)
	if err != nil {
		return nil, err
	}

	return &model.HomeContext{
		BaseContext:       base,
		FeaturedProjects:  featuredProjects,
		FeaturedSkills:    featuredSkills,
		RecentExperiences: recentExperiences,
	}, nil
}

func (p *pageUseCase) Academic(ctx context.Context) (*model.AcademicContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	educations, err := p.educationRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	skills, err := p.skillRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return &model.AcademicContext{
		BaseContext: base,
		Educations:  educations,
		Skills:      skills,
	}, nil
}

func (p *pageUseCase) Experience(ctx context.Context) (*model.ExperienceContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	experiences, err := p.experienceRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ExperienceContext{
		BaseContext: base,
		Experiences: experiences,
	}, nil
}

func (p *pageUseCase) Certifications(ctx context.Context) (*model.CertificationsContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	certifications, err := p.certificationRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	return &model.CertificationsContext{
		BaseContext:    base,
		Certifications: certifications,
	}, nil
}

func (p *pageUseCase) Projects(ctx context.Context, page int) (*model.ProjectListContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}

	projectPage, err := p.projectRepository.List(ctx, page, projectsPerPage)
	if err != nil {
		return nil, err
	}

	return &model.ProjectListContext{
		BaseContext: base,
		Page:        projectPage,
	}, nil
}

func (p *pageUseCase) ProjectDetail(ctx context.Context, id ulid.ID) (*model.ProjectDetailContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	project, err := p.projectRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.ProjectDetailContext{
		BaseContext: base,
		Project:     project,
	}, nil
}

func (p *pageUseCase) Contact(ctx context.Context) (*model.ContactPageContext, error) {
	base, err := p.base(ctx)
	if err != nil {
		return nil, err
	}

	return &model.ContactPageContext{
		BaseContext: base,
		Errors:      map[string]string{},
	}, nil
}
