package sitesettingsrepository_test

import (
	"context"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/adapter/repository/sitesettingsrepository"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (client *ent.Client, teardown func()) {
	testutil.ReadConfig()
	c := testutil.NewSqlLiteDBClient(t)

	return c, func() {
		testutil.DropSiteSettings(t, c)
		defer c.Close()
	}
}

func strPtr(s string) *string { return &s }

func TestSiteSettingsRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := sitesettingsrepository.NewSiteSettingsRepository(client)
	ctx := context.Background()

	t.Run("It should return nil before any settings exist", func(t *testing.T) {
		got, err := repo.First(ctx)

		assert.Nil(t, err)
		assert.Nil(t, got)
	})

	t.Run("It should create the settings row", func(t *testing.T) {
		got, err := repo.Create(ctx, model.CreateSiteSettingsInput{
			SiteTitle:       strPtr("Mon Portfolio"),
			SiteDescription: strPtr("Portfolio personnel"),
		})

		assert.Nil(t, err)
		assert.NotNil(t, got)
		assert.Equal(t, "Mon Portfolio", got.SiteTitle)
	})

	t.Run("It should reject a second settings row", func(t *testing.T) {
		got, err := repo.Create(ctx, model.CreateSiteSettingsInput{
			SiteTitle: strPtr("Doublon"),
		})

		assert.Nil(t, got)
		assert.True(t, model.IsValidation(err))
	})

	t.Run("It should update the existing row", func(t *testing.T) {
		existing, err := repo.First(ctx)
		if err != nil || existing == nil {
			t.Error(err)
			t.FailNow()
		}

		got, err := repo.Update(ctx, model.UpdateSiteSettingsInput{
			ID:        existing.ID,
			SiteTitle: strPtr("Titre mis à jour"),
		})

		assert.Nil(t, err)
		assert.Equal(t, "Titre mis à jour", got.SiteTitle)
		assert.Equal(t, "Portfolio personnel", got.SiteDescription)
	})

	t.Run("It should require an id on update", func(t *testing.T) {
		got, err := repo.Update(ctx, model.UpdateSiteSettingsInput{})

		assert.Nil(t, got)
		assert.NotNil(t, err)
	})
}
