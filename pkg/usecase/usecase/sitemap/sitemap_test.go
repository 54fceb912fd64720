package usecase_test

import (
	"context"
	"errors"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository/mocks"
	usecase "portfolio-go-backend/pkg/usecase/usecase/sitemap"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSitemapBuild(t *testing.T) {
	t.Run("Should list the six static pages when there are no projects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockProject(ctrl)
		mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*model.Project{}, nil)

		uc := usecase.NewSitemapUseCase(mockRepo, "https://example.com")
		urlSet, err := uc.Build(context.Background())

		require.NoError(t, err)
		require.Equal(t, model.SitemapXmlns, urlSet.Xmlns)
		require.Len(t, urlSet.URLs, 6)
		require.Equal(t, "https://example.com/", urlSet.URLs[0].Loc)
		require.Equal(t, "https://example.com/contact/", urlSet.URLs[5].Loc)
		for _, u := range urlSet.URLs {
			require.Equal(t, model.SitemapWeekly, u.ChangeFreq)
			require.Equal(t, 0.8, u.Priority)
		}
	})

	t.Run("Should append one entry per project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		started := time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC)
		mockRepo := mocks.NewMockProject(ctrl)
		mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*model.Project{
			{ID: "01HXYZPROJECT0000000000001", StartDate: started},
			{ID: "01HXYZPROJECT0000000000002", StartDate: started},
		}, nil)

		uc := usecase.NewSitemapUseCase(mockRepo, "https://example.com")
		urlSet, err := uc.Build(context.Background())

		require.NoError(t, err)
		require.Len(t, urlSet.URLs, 8)

		project := urlSet.URLs[6]
		require.Equal(t, "https://example.com/projects/01HXYZPROJECT0000000000001/", project.Loc)
		require.Equal(t, "2023-03-15", project.LastMod)
		require.Equal(t, model.SitemapMonthly, project.ChangeFreq)
		require.Equal(t, 0.6, project.Priority)
	})

	t.Run("Should strip a trailing slash from the base URL", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockProject(ctrl)
		mockRepo.EXPECT().ListAll(gomock.Any()).Return([]*model.Project{}, nil)

		uc := usecase.NewSitemapUseCase(mockRepo, "https://example.com/")
		urlSet, err := uc.Build(context.Background())

		require.NoError(t, err)
		require.Equal(t, "https://example.com/academic/", urlSet.URLs[1].Loc)
	})

	t.Run("Should propagate a repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockProject(ctrl)
		mockRepo.EXPECT().ListAll(gomock.Any()).Return(nil, errors.New("db down"))

		uc := usecase.NewSitemapUseCase(mockRepo, "https://example.com")
		urlSet, err := uc.Build(context.Background())

		require.Error(t, err)
		require.Nil(t, urlSet)
	})
}
