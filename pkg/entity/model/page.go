package model

// BaseContext carries the fields every page renders: the owner's profile and
// the site settings. Either may be nil when the record does not exist yet;
// templates render empty in that case.
type BaseContext struct {
	Profile      *Profile
	SiteSettings *SiteSettings
}

// HomeContext is the context of the landing page.
type HomeContext struct {
	BaseContext
	FeaturedProjects  []*Project
	FeaturedSkills    []*Skill
	RecentExperiences []*Experience
}

// AcademicContext is the context of the academic page.
type AcademicContext struct {
	BaseContext
	Educations []*Education
	Skills     []*Skill
}

// ExperienceContext is the context of the experience page.
type ExperienceContext struct {
	BaseContext
	Experiences []*Experience
}

// CertificationsContext is the context of the certifications page.
type CertificationsContext struct {
	BaseContext
	Certifications []*Certification
}

// ProjectListContext is the context of one page of the project list.
type ProjectListContext struct {
	BaseContext
	Page *ProjectPage
}

// ProjectDetailContext is the context of a project detail page.
type ProjectDetailContext struct {
	BaseContext
	Project *Project
}

// ContactPageContext is the context of the contact form page, re-rendered
// with field errors on an invalid submission.
type ContactPageContext struct {
	BaseContext
	Form    CreateContactInput
	Errors  map[string]string
	Warning string
}
