package usecase_test

import (
	"context"
	"errors"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/pkg/usecase/repository/mocks"
	usecase "portfolio-go-backend/pkg/usecase/usecase/page"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type pageMocks struct {
	profile       *mocks.MockProfile
	siteSettings  *mocks.MockSiteSettings
	education     *mocks.MockEducation
	experience    *mocks.MockExperience
	skill         *mocks.MockSkill
	certification *mocks.MockCertification
	project       *mocks.MockProject
}

func setupPageMocks(t *testing.T) (*pageMocks, usecase.Page, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := &pageMocks{
		profile:       mocks.NewMockProfile(ctrl),
		siteSettings:  mocks.NewMockSiteSettings(ctrl),
		education:     mocks.NewMockEducation(ctrl),
		experience:    mocks.NewMockExperience(ctrl),
		skill:         mocks.NewMockSkill(ctrl),
		certification: mocks.NewMockCertification(ctrl),
		project:       mocks.NewMockProject(ctrl),
	}
	uc := usecase.NewPageUseCase(
		m.profile, m.siteSettings, m.education, m.experience,
		m.skill, m.certification, m.project,
	)
	return m, uc, ctrl
}

// expectBase sets the shared profile and settings lookups every page does.
func (m *pageMocks) expectBase(profile *model.Profile, settings *model.SiteSettings) {
	m.profile.EXPECT().First(gomock.Any()).Return(profile, nil)
	m.siteSettings.EXPECT().First(gomock.Any()).Return(settings, nil)
}

func TestPageHome(t *testing.T) {
	t.Run("Should render with a nil profile on a fresh install", func(t *testing.T) {
		m, uc, ctrl := setupPageMocks(t)
		defer ctrl.Finish()

		m.expectBase(nil, nil)
		m.skill.EXPECT().ListFeatured(gomock.Any()).Return([]*model.Skill{}, nil)
		m.project.EXPECT().ListFeatured(gomock.Any(), 3).Return([]*model.Project{}, nil)
		m.experience.EXPECT().ListRecent(gomock.Any(), 3).Return([]*model.Experience{}, nil)

		home, err := uc.Home(context.Background())

		require.NoError(t, err, "a fresh install must still render the home page")
		require.NotNil(t, home)
		require.Nil(t, home.Profile)
		require.Empty(t, home.FeaturedProjects)
	})

	t.Run("Should cap featured projects and recent experiences at three", func(t *testing.T) {
		m, uc, ctrl := setupPageMocks(t)
		defer ctrl.Finish()

		m.expectBase(&model.Profile{Name: "Jean Dupont"}, &model.SiteSettings{})
		m.skill.EXPECT().ListFeatured(gomock.Any()).Return([]*model.Skill{{Name: "Go"}}, nil)
		m.project.EXPECT().ListFeatured(gomock.Any(), 3).
			Return([]*model.Project{{Title: "A"}, {Title: "B"}, {Title: "C"}}, nil)
		m.experience.EXPECT().ListRecent(gomock.Any(), 3).
			Return([]*model.Experience{{Title: "Développeur"}}, nil)

		home, err := uc.Home(context.Background())

		require.NoError(t, err)
		require.Equal(t, "Jean Dupont", home.Profile.Name)
		require.Len(t, home.FeaturedProjects, 3)
		require.Len(t, home.FeaturedSkills, 1)
	})

	t.Run("Should propagate a profile lookup failure", func(t *testing.T) {
		m, uc, ctrl := setupPageMocks(t)
		defer ctrl.Finish()

		m.profile.EXPECT().First(gomock.Any()).Return(nil, errors.New("db down"))

		home, err := uc.Home(context.Background())

		require.Error(t, err)
		require.Nil(t, home)
	})
}

func TestPageAcademic(t *testing.T) {
	m, uc, ctrl := setupPageMocks(t)
	defer ctrl.Finish()

	m.expectBase(&model.Profile{}, nil)
	m.education.EXPECT().List(gomock.Any()).
		Return([]*model.Education{{Institution: "Université de Paris"}}, nil)
	m.skill.EXPECT().List(gomock.Any()).
		Return([]*model.Skill{{Name: "Go"}, {Name: "SQL"}}, nil)

	academic, err := uc.Academic(context.Background())

	require.NoError(t, err)
	require.Len(t, academic.Educations, 1)
	require.Len(t, academic.Skills, 2)
}

func TestPageProjects(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		wantsPage int
	}{
		{name: "Should pass the requested page through", page: 2, wantsPage: 2},
		{name: "Should clamp page zero to one", page: 0, wantsPage: 1},
		{name: "Should clamp a negative page to one", page: -3, wantsPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, uc, ctrl := setupPageMocks(t)
			defer ctrl.Finish()

			m.expectBase(nil, nil)
			m.project.EXPECT().
				List(gomock.Any(), tt.wantsPage, 6).
				Return(&model.ProjectPage{Page: tt.wantsPage, PerPage: 6}, nil)

			result, err := uc.Projects(context.Background(), tt.page)

			require.NoError(t, err)
			require.Equal(t, tt.wantsPage, result.Page.Page)
		})
	}
}

func TestPageContact(t *testing.T) {
	m, uc, ctrl := setupPageMocks(t)
	defer ctrl.Finish()

	m.expectBase(nil, &model.SiteSettings{})

	contact, err := uc.Contact(context.Background())

	require.NoError(t, err)
	require.NotNil(t, contact.Errors, "the errors map must be non-nil for template lookups")
	require.Empty(t, contact.Errors)
}
