package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository"
)

type sitemapUseCase struct {
	projectRepository repository.Project
	baseURL           string
}

type Sitemap interface {
	Build(ctx context.Context) (*model.SitemapURLSet, error)
}

// This function creates new sitemap use case
func NewSitemapUseCase(r repository.Project, baseURL string) Sitemap {
	return &sitemapUseCase{
		projectRepository: r,
		baseURL:           strings.TrimRight(baseURL, "/"),
	}
}

var staticPaths = []string{
	"/",
	"/academic/",
	"/experience/",
	"/certifications/",
	"/projects/",
	"/contact/",
}

// Build assembles the static pages plus one entry per project.
func (s *sitemapUseCase) Build(ctx context.Context) (*model.SitemapURLSet, error) {
	projects, err := s.projectRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().Format("2006-01-02")

	urls := make([]model.SitemapURL, 0, len(staticPaths)+len(projects))
	for _, path := range staticPaths {
		urls = append(urls, model.SitemapURL{
			Loc:        s.baseURL + path,
			LastMod:    now,
			ChangeFreq: model.SitemapWeekly,
			Priority:   0.8,
		})
	}

	for _, p := range projects {
		urls = append(urls, model.SitemapURL{
			Loc:        fmt.Sprintf("%s/projects/%s/", s.baseURL, p.ID),
			LastMod:    p.StartDate.Format("2006-01-02"),
			ChangeFreq: model.SitemapMonthly,
			Priority:   0.6,
		})
	}

	return &model.SitemapURLSet{
		Xmlns: model.SitemapXmlns,
		URLs:  urls,
	}, nil
}
