package projectrepository_test

import (
	"context"
	"fmt"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/adapter/repository/projectrepository"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/testutil"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (client *ent.Client, teardown func()) {
	testutil.ReadConfig()
	c := testutil.NewSqlLiteDBClient(t)

	return c, func() {
		testutil.DropProject(t, c)
		defer c.Close()
	}
}

func boolPtr(b bool) *bool { return &b }

// seedProjects inserts n projects with descending start dates so the list
// order is deterministic.
func seedProjects(t *testing.T, repo func(ctx context.Context, input model.CreateProjectInput) (*model.Project, error), n int, featured int) {
	ctx := context.Background()
	for i := 0; i < n; i++ {
		input := model.CreateProjectInput{
			Title:        fmt.Sprintf("Projet %02d", i),
			Description:  "Description",
			Technologies: "Go,PostgreSQL",
			StartDate:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i, 0),
			IsFeatured:   boolPtr(i < featured),
		}
		if _, err := repo(ctx, input); err != nil {
			t.Error(err)
			t.FailNow()
		}
	}
}

func TestProjectRepository_List(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := projectrepository.NewProjectRepository(client)
	seedProjects(t, repo.Create, 8, 0)

	ctx := context.Background()

	t.Run("It should return the first page of six", func(t *testing.T) {
		page, err := repo.List(ctx, 1, 6)

		assert.Nil(t, err)
		assert.Len(t, page.Projects, 6)
		assert.Equal(t, 8, page.Total)
		assert.Equal(t, 2, page.TotalPages)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrev)
		// Newest start date first.
		assert.Equal(t, "Projet 07", page.Projects[0].Title)
	})

	t.Run("It should return the remainder on the last page", func(t *testing.T) {
		page, err := repo.List(ctx, 2, 6)

		assert.Nil(t, err)
		assert.Len(t, page.Projects, 2)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})

	t.Run("It should return an empty page past the end", func(t *testing.T) {
		page, err := repo.List(ctx, 5, 6)

		assert.Nil(t, err)
		assert.Len(t, page.Projects, 0)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})
}

func TestProjectRepository_ListFeatured(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := projectrepository.NewProjectRepository(client)
	seedProjects(t, repo.Create, 6, 5)

	featured, err := repo.ListFeatured(context.Background(), 3)

	assert.Nil(t, err)
	assert.Len(t, featured, 3, "the limit caps the featured list")
	for _, p := range featured {
		assert.True(t, p.IsFeatured)
	}
}

func TestProjectRepository_Get(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := projectrepository.NewProjectRepository(client)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateProjectInput{
		Title:        "Projet",
		Description:  "Description",
		Technologies: "Go",
		StartDate:    time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	t.Run("It should get a project by id", func(t *testing.T) {
		got, err := repo.Get(ctx, created.ID)

		assert.Nil(t, err)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, "Projet", got.Title)
	})

	t.Run("It should return not found for an unknown id", func(t *testing.T) {
		got, err := repo.Get(ctx, "01HXYZUNKNOWN0000000000000")

		assert.Nil(t, got)
		assert.True(t, model.IsNotFound(err))
	})
}
