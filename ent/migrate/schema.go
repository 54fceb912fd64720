// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CertificationsColumns holds the columns for the "certifications" table.
	CertificationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 200},
		{Name: "issuing_organization", Type: field.TypeString, Size: 200},
		{Name: "issue_date", Type: field.TypeTime},
		{Name: "expiration_date", Type: field.TypeTime, Nullable: true},
		{Name: "credential_id", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "credential_url", Type: field.TypeString, Nullable: true},
		{Name: "certificate_file", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// CertificationsTable holds the schema information for the "certifications" table.
	CertificationsTable = &schema.Table{
		Name:       "certifications",
		Columns:    CertificationsColumns,
		PrimaryKey: []*schema.Column{CertificationsColumns[0]},
	}
	// ContactsColumns holds the columns for the "contacts" table.
	ContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "email", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString, Size: 200},
		{Name: "message", Type: field.TypeString, Size: 2147483647},
		{Name: "is_read", Type: field.TypeBool, Default: false},
		{Name: "is_replied", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ContactsTable holds the schema information for the "contacts" table.
	ContactsTable = &schema.Table{
		Name:       "contacts",
		Columns:    ContactsColumns,
		PrimaryKey: []*schema.Column{ContactsColumns[0]},
	}
	// EducationsColumns holds the columns for the "educations" table.
	EducationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "degree", Type: field.TypeEnum, Enums: []string{"bachelor", "master", "phd", "diploma", "certificate"}},
		{Name: "field_of_study", Type: field.TypeString, Size: 200},
		{Name: "institution", Type: field.TypeString, Size: 200},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "grade", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// EducationsTable holds the schema information for the "educations" table.
	EducationsTable = &schema.Table{
		Name:       "educations",
		Columns:    EducationsColumns,
		PrimaryKey: []*schema.Column{EducationsColumns[0]},
	}
	// ExperiencesColumns holds the columns for the "experiences" table.
	ExperiencesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "company", Type: field.TypeString, Size: 200},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "job_type", Type: field.TypeEnum, Enums: []string{"full_time", "part_time", "contract", "internship", "freelance"}},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "is_current", Type: field.TypeBool, Default: false},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "achievements", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "technologies", Type: field.TypeString, Nullable: true, Size: 500},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ExperiencesTable holds the schema information for the "experiences" table.
	ExperiencesTable = &schema.Table{
		Name:       "experiences",
		Columns:    ExperiencesColumns,
		PrimaryKey: []*schema.Column{ExperiencesColumns[0]},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "bio", Type: field.TypeString, Size: 2147483647},
		{Name: "email", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "linkedin", Type: field.TypeString, Nullable: true},
		{Name: "github", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "profile_image", Type: field.TypeString, Nullable: true},
		{Name: "cv_file", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Size: 200},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "detailed_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "technologies", Type: field.TypeString, Size: 500},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "in_progress", "planned"}, Default: "completed"},
		{Name: "start_date", Type: field.TypeTime},
		{Name: "end_date", Type: field.TypeTime, Nullable: true},
		{Name: "project_url", Type: field.TypeString, Nullable: true},
		{Name: "github_url", Type: field.TypeString, Nullable: true},
		{Name: "image", Type: field.TypeString, Nullable: true},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// SiteSettingsColumns holds the columns for the "site_settings" table.
	SiteSettingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "site_title", Type: field.TypeString, Size: 100, Default: "Portfolio"},
		{Name: "site_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "footer_text", Type: field.TypeString, Nullable: true, Size: 200},
		{Name: "google_analytics_id", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "maintenance_mode", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// SiteSettingsTable holds the schema information for the "site_settings" table.
	SiteSettingsTable = &schema.Table{
		Name:       "site_settings",
		Columns:    SiteSettingsColumns,
		PrimaryKey: []*schema.Column{SiteSettingsColumns[0]},
	}
	// SkillsColumns holds the columns for the "skills" table.
	SkillsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 100},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"technical", "soft", "language", "tool"}},
		{Name: "proficiency", Type: field.TypeEnum, Enums: []string{"beginner", "intermediate", "advanced", "expert"}},
		{Name: "years_of_experience", Type: field.TypeInt, Default: 0},
		{Name: "is_featured", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// SkillsTable holds the schema information for the "skills" table.
	SkillsTable = &schema.Table{
		Name:       "skills",
		Columns:    SkillsColumns,
		PrimaryKey: []*schema.Column{SkillsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
		{Name: "updated_at", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "timestamptz"}},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CertificationsTable,
		ContactsTable,
		EducationsTable,
		ExperiencesTable,
		ProfilesTable,
		ProjectsTable,
		SiteSettingsTable,
		SkillsTable,
		UsersTable,
	}
)

func init() {
}
