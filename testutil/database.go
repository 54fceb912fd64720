package testutil

import (
	"context"
	"database/sql"
	"testing"

	"portfolio-go-backend/ent"
	"portfolio-go-backend/ent/enttest"
	"portfolio-go-backend/pkg/infrastructure/datastore"

	"entgo.io/ent/dialect"
	pgx "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// init registers the pgx stdlib driver under the name "postgres" so that ent recognizes it.
func init() {
	sql.Register("postgres", pgx.GetDefaultDriver())
}

// NewDBClient loads database for test.
func NewDBClient(t *testing.T) *ent.Client {
	dsn := datastore.NewDSN()

	return enttest.Open(t, dialect.Postgres, dsn)
}

// NewSqlLiteDBClient opens an in-memory sqlite database for repository tests.
func NewSqlLiteDBClient(t *testing.T) *ent.Client {
	return enttest.Open(t, "sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
}

// DropAll drops all the data from database

func DropAll(t *testing.T, client *ent.Client) {
	t.Log("drop data from database")
	DropUser(t, client)
	DropProfile(t, client)
	DropEducation(t, client)
	DropExperience(t, client)
	DropSkill(t, client)
	DropCertification(t, client)
	DropProject(t, client)
	DropContact(t, client)
	DropSiteSettings(t, client)
}

// DropUser drops data from users.
func DropUser(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.User.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropProfile drops data from profiles.
func DropProfile(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Profile.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropEducation drops data from educations.
func DropEducation(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Education.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropExperience drops data from experiences.
func DropExperience(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Experience.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropSkill drops data from skills.
func DropSkill(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Skill.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropCertification drops data from certifications.
func DropCertification(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Certification.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropProject drops data from projects.
func DropProject(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Project.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropContact drops data from contacts.
func DropContact(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.Contact.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

// DropSiteSettings drops data from site settings.
func DropSiteSettings(t *testing.T, client *ent.Client) {
	ctx := context.Background()
	_, err := client.SiteSettings.Delete().Exec(ctx)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}
