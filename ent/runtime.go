// Code generated by ent, DO NOT EDIT.

package ent

import (
	"portfolio-go-backend/ent/certification"
	"portfolio-go-backend/ent/contact"
	"portfolio-go-backend/ent/education"
	"portfolio-go-backend/ent/experience"
	"portfolio-go-backend/ent/profile"
	"portfolio-go-backend/ent/project"
	"portfolio-go-backend/ent/schema"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/sitesettings"
	"portfolio-go-backend/ent/skill"
	"portfolio-go-backend/ent/user"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	certificationMixin := schema.Certification{}.Mixin()
	certificationMixinFields0 := certificationMixin[0].Fields()
	_ = certificationMixinFields0
	certificationMixinFields1 := certificationMixin[1].Fields()
	_ = certificationMixinFields1
	certificationMixinFields2 := certificationMixin[2].Fields()
	_ = certificationMixinFields2
	certificationFields := schema.Certification{}.Fields()
	_ = certificationFields
	// certificationDescName is the schema descriptor for name field.
	certificationDescName := certificationMixinFields1[0].Descriptor()
	// certification.NameValidator is a validator for the "name" field. It is called by the builders before save.
	certification.NameValidator = func() func(string) error {
		validators := certificationDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// certificationDescIssuingOrganization is the schema descriptor for issuing_organization field.
	certificationDescIssuingOrganization := certificationMixinFields1[1].Descriptor()
	// certification.IssuingOrganizationValidator is a validator for the "issuing_organization" field. It is called by the builders before save.
	certification.IssuingOrganizationValidator = func() func(string) error {
		validators := certificationDescIssuingOrganization.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(issuing_organization string) error {
			for _, fn := range fns {
				if err := fn(issuing_organization); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// certificationDescCredentialID is the schema descriptor for credential_id field.
	certificationDescCredentialID := certificationMixinFields1[4].Descriptor()
	// certification.CredentialIDValidator is a validator for the "credential_id" field. It is called by the builders before save.
	certification.CredentialIDValidator = certificationDescCredentialID.Validators[0].(func(string) error)
	// certificationDescCreatedAt is the schema descriptor for created_at field.
	certificationDescCreatedAt := certificationMixinFields2[0].Descriptor()
	// certification.DefaultCreatedAt holds the default value on creation for the created_at field.
	certification.DefaultCreatedAt = certificationDescCreatedAt.Default.(func() time.Time)
	// certificationDescUpdatedAt is the schema descriptor for updated_at field.
	certificationDescUpdatedAt := certificationMixinFields2[1].Descriptor()
	// certification.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	certification.DefaultUpdatedAt = certificationDescUpdatedAt.Default.(func() time.Time)
	// certification.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	certification.UpdateDefaultUpdatedAt = certificationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// certificationDescID is the schema descriptor for id field.
	certificationDescID := certificationMixinFields0[0].Descriptor()
	// certification.DefaultID holds the default value on creation for the id field.
	certification.DefaultID = certificationDescID.Default.(func() ulid.ID)
	contactMixin := schema.Contact{}.Mixin()
	contactMixinFields0 := contactMixin[0].Fields()
	_ = contactMixinFields0
	contactMixinFields1 := contactMixin[1].Fields()
	_ = contactMixinFields1
	contactMixinFields2 := contactMixin[2].Fields()
	_ = contactMixinFields2
	contactFields := schema.Contact{}.Fields()
	_ = contactFields
	// contactDescName is the schema descriptor for name field.
	contactDescName := contactMixinFields1[0].Descriptor()
	// contact.NameValidator is a validator for the "name" field. It is called by the builders before save.
	contact.NameValidator = func() func(string) error {
		validators := contactDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescEmail is the schema descriptor for email field.
	contactDescEmail := contactMixinFields1[1].Descriptor()
	// contact.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	contact.EmailValidator = contactDescEmail.Validators[0].(func(string) error)
	// contactDescSubject is the schema descriptor for subject field.
	contactDescSubject := contactMixinFields1[2].Descriptor()
	// contact.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	contact.SubjectValidator = func() func(string) error {
		validators := contactDescSubject.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(subject string) error {
			for _, fn := range fns {
				if err := fn(subject); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// contactDescMessage is the schema descriptor for message field.
	contactDescMessage := contactMixinFields1[3].Descriptor()
	// contact.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	contact.MessageValidator = contactDescMessage.Validators[0].(func(string) error)
	// contactDescIsRead is the schema descriptor for is_read field.
	contactDescIsRead := contactMixinFields1[4].Descriptor()
	// contact.DefaultIsRead holds the default value on creation for the is_read field.
	contact.DefaultIsRead = contactDescIsRead.Default.(bool)
	// contactDescIsReplied is the schema descriptor for is_replied field.
	contactDescIsReplied := contactMixinFields1[5].Descriptor()
	// contact.DefaultIsReplied holds the default value on creation for the is_replied field.
	contact.DefaultIsReplied = contactDescIsReplied.Default.(bool)
	// contactDescCreatedAt is the schema descriptor for created_at field.
	contactDescCreatedAt := contactMixinFields2[0].Descriptor()
	// contact.DefaultCreatedAt holds the default value on creation for the created_at field.
	contact.DefaultCreatedAt = contactDescCreatedAt.Default.(func() time.Time)
	// contactDescUpdatedAt is the schema descriptor for updated_at field.
	contactDescUpdatedAt := contactMixinFields2[1].Descriptor()
	// contact.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contact.DefaultUpdatedAt = contactDescUpdatedAt.Default.(func() time.Time)
	// contact.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contact.UpdateDefaultUpdatedAt = contactDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contactDescID is the schema descriptor for id field.
	contactDescID := contactMixinFields0[0].Descriptor()
	// contact.DefaultID holds the default value on creation for the id field.
	contact.DefaultID = contactDescID.Default.(func() ulid.ID)
	educationMixin := schema.Education{}.Mixin()
	educationMixinFields0 := educationMixin[0].Fields()
	_ = educationMixinFields0
	educationMixinFields1 := educationMixin[1].Fields()
	_ = educationMixinFields1
	educationMixinFields2 := educationMixin[2].Fields()
	_ = educationMixinFields2
	educationFields := schema.Education{}.Fields()
	_ = educationFields
	// educationDescFieldOfStudy is the schema descriptor for field_of_study field.
	educationDescFieldOfStudy := educationMixinFields1[1].Descriptor()
	// education.FieldOfStudyValidator is a validator for the "field_of_study" field. It is called by the builders before save.
	education.FieldOfStudyValidator = func() func(string) error {
		validators := educationDescFieldOfStudy.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(field_of_study string) error {
			for _, fn := range fns {
				if err := fn(field_of_study); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// educationDescInstitution is the schema descriptor for institution field.
	educationDescInstitution := educationMixinFields1[2].Descriptor()
	// education.InstitutionValidator is a validator for the "institution" field. It is called by the builders before save.
	education.InstitutionValidator = func() func(string) error {
		validators := educationDescInstitution.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(institution string) error {
			for _, fn := range fns {
				if err := fn(institution); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// educationDescLocation is the schema descriptor for location field.
	educationDescLocation := educationMixinFields1[3].Descriptor()
	// education.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	education.LocationValidator = educationDescLocation.Validators[0].(func(string) error)
	// educationDescIsCurrent is the schema descriptor for is_current field.
	educationDescIsCurrent := educationMixinFields1[6].Descriptor()
	// education.DefaultIsCurrent holds the default value on creation for the is_current field.
	education.DefaultIsCurrent = educationDescIsCurrent.Default.(bool)
	// educationDescGrade is the schema descriptor for grade field.
	educationDescGrade := educationMixinFields1[8].Descriptor()
	// education.GradeValidator is a validator for the "grade" field. It is called by the builders before save.
	education.GradeValidator = educationDescGrade.Validators[0].(func(string) error)
	// educationDescCreatedAt is the schema descriptor for created_at field.
	educationDescCreatedAt := educationMixinFields2[0].Descriptor()
	// education.DefaultCreatedAt holds the default value on creation for the created_at field.
	education.DefaultCreatedAt = educationDescCreatedAt.Default.(func() time.Time)
	// educationDescUpdatedAt is the schema descriptor for updated_at field.
	educationDescUpdatedAt := educationMixinFields2[1].Descriptor()
	// education.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	education.DefaultUpdatedAt = educationDescUpdatedAt.Default.(func() time.Time)
	// education.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	education.UpdateDefaultUpdatedAt = educationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// educationDescID is the schema descriptor for id field.
	educationDescID := educationMixinFields0[0].Descriptor()
	// education.DefaultID holds the default value on creation for the id field.
	education.DefaultID = educationDescID.Default.(func() ulid.ID)
	experienceMixin := schema.Experience{}.Mixin()
	experienceMixinFields0 := experienceMixin[0].Fields()
	_ = experienceMixinFields0
	experienceMixinFields1 := experienceMixin[1].Fields()
	_ = experienceMixinFields1
	experienceMixinFields2 := experienceMixin[2].Fields()
	_ = experienceMixinFields2
	experienceFields := schema.Experience{}.Fields()
	_ = experienceFields
	// experienceDescTitle is the schema descriptor for title field.
	experienceDescTitle := experienceMixinFields1[0].Descriptor()
	// experience.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	experience.TitleValidator = func() func(string) error {
		validators := experienceDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experienceDescCompany is the schema descriptor for company field.
	experienceDescCompany := experienceMixinFields1[1].Descriptor()
	// experience.CompanyValidator is a validator for the "company" field. It is called by the builders before save.
	experience.CompanyValidator = func() func(string) error {
		validators := experienceDescCompany.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(company string) error {
			for _, fn := range fns {
				if err := fn(company); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// experienceDescLocation is the schema descriptor for location field.
	experienceDescLocation := experienceMixinFields1[2].Descriptor()
	// experience.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	experience.LocationValidator = experienceDescLocation.Validators[0].(func(string) error)
	// experienceDescIsCurrent is the schema descriptor for is_current field.
	experienceDescIsCurrent := experienceMixinFields1[6].Descriptor()
	// experience.DefaultIsCurrent holds the default value on creation for the is_current field.
	experience.DefaultIsCurrent = experienceDescIsCurrent.Default.(bool)
	// experienceDescTechnologies is the schema descriptor for technologies field.
	experienceDescTechnologies := experienceMixinFields1[9].Descriptor()
	// experience.TechnologiesValidator is a validator for the "technologies" field. It is called by the builders before save.
	experience.TechnologiesValidator = experienceDescTechnologies.Validators[0].(func(string) error)
	// experienceDescCreatedAt is the schema descriptor for created_at field.
	experienceDescCreatedAt := experienceMixinFields2[0].Descriptor()
	// experience.DefaultCreatedAt holds the default value on creation for the created_at field.
	experience.DefaultCreatedAt = experienceDescCreatedAt.Default.(func() time.Time)
	// experienceDescUpdatedAt is the schema descriptor for updated_at field.
	experienceDescUpdatedAt := experienceMixinFields2[1].Descriptor()
	// experience.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	experience.DefaultUpdatedAt = experienceDescUpdatedAt.Default.(func() time.Time)
	// experience.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	experience.UpdateDefaultUpdatedAt = experienceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// experienceDescID is the schema descriptor for id field.
	experienceDescID := experienceMixinFields0[0].Descriptor()
	// experience.DefaultID holds the default value on creation for the id field.
	experience.DefaultID = experienceDescID.Default.(func() ulid.ID)
	profileMixin := schema.Profile{}.Mixin()
	profileMixinFields0 := profileMixin[0].Fields()
	_ = profileMixinFields0
	profileMixinFields1 := profileMixin[1].Fields()
	_ = profileMixinFields1
	profileMixinFields2 := profileMixin[2].Fields()
	_ = profileMixinFields2
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescName is the schema descriptor for name field.
	profileDescName := profileMixinFields1[0].Descriptor()
	// profile.NameValidator is a validator for the "name" field. It is called by the builders before save.
	profile.NameValidator = func() func(string) error {
		validators := profileDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// profileDescTitle is the schema descriptor for title field.
	profileDescTitle := profileMixinFields1[1].Descriptor()
	// profile.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	profile.TitleValidator = profileDescTitle.Validators[0].(func(string) error)
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileMixinFields1[3].Descriptor()
	// profile.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	profile.EmailValidator = profileDescEmail.Validators[0].(func(string) error)
	// profileDescPhone is the schema descriptor for phone field.
	profileDescPhone := profileMixinFields1[4].Descriptor()
	// profile.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	profile.PhoneValidator = profileDescPhone.Validators[0].(func(string) error)
	// profileDescLocation is the schema descriptor for location field.
	profileDescLocation := profileMixinFields1[5].Descriptor()
	// profile.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	profile.LocationValidator = profileDescLocation.Validators[0].(func(string) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileMixinFields2[0].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileMixinFields2[1].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
	// profileDescID is the schema descriptor for id field.
	profileDescID := profileMixinFields0[0].Descriptor()
	// profile.DefaultID holds the default value on creation for the id field.
	profile.DefaultID = profileDescID.Default.(func() ulid.ID)
	projectMixin := schema.Project{}.Mixin()
	projectMixinFields0 := projectMixin[0].Fields()
	_ = projectMixinFields0
	projectMixinFields1 := projectMixin[1].Fields()
	_ = projectMixinFields1
	projectMixinFields2 := projectMixin[2].Fields()
	_ = projectMixinFields2
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescTitle is the schema descriptor for title field.
	projectDescTitle := projectMixinFields1[0].Descriptor()
	// project.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	project.TitleValidator = func() func(string) error {
		validators := projectDescTitle.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(title string) error {
			for _, fn := range fns {
				if err := fn(title); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescTechnologies is the schema descriptor for technologies field.
	projectDescTechnologies := projectMixinFields1[3].Descriptor()
	// project.TechnologiesValidator is a validator for the "technologies" field. It is called by the builders before save.
	project.TechnologiesValidator = func() func(string) error {
		validators := projectDescTechnologies.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(technologies string) error {
			for _, fn := range fns {
				if err := fn(technologies); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// projectDescIsFeatured is the schema descriptor for is_featured field.
	projectDescIsFeatured := projectMixinFields1[10].Descriptor()
	// project.DefaultIsFeatured holds the default value on creation for the is_featured field.
	project.DefaultIsFeatured = projectDescIsFeatured.Default.(bool)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectMixinFields2[0].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectMixinFields2[1].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	// projectDescID is the schema descriptor for id field.
	projectDescID := projectMixinFields0[0].Descriptor()
	// project.DefaultID holds the default value on creation for the id field.
	project.DefaultID = projectDescID.Default.(func() ulid.ID)
	sitesettingsMixin := schema.SiteSettings{}.Mixin()
	sitesettingsMixinFields0 := sitesettingsMixin[0].Fields()
	_ = sitesettingsMixinFields0
	sitesettingsMixinFields1 := sitesettingsMixin[1].Fields()
	_ = sitesettingsMixinFields1
	sitesettingsMixinFields2 := sitesettingsMixin[2].Fields()
	_ = sitesettingsMixinFields2
	sitesettingsFields := schema.SiteSettings{}.Fields()
	_ = sitesettingsFields
	// sitesettingsDescSiteTitle is the schema descriptor for site_title field.
	sitesettingsDescSiteTitle := sitesettingsMixinFields1[0].Descriptor()
	// sitesettings.DefaultSiteTitle holds the default value on creation for the site_title field.
	sitesettings.DefaultSiteTitle = sitesettingsDescSiteTitle.Default.(string)
	// sitesettings.SiteTitleValidator is a validator for the "site_title" field. It is called by the builders before save.
	sitesettings.SiteTitleValidator = sitesettingsDescSiteTitle.Validators[0].(func(string) error)
	// sitesettingsDescFooterText is the schema descriptor for footer_text field.
	sitesettingsDescFooterText := sitesettingsMixinFields1[2].Descriptor()
	// sitesettings.FooterTextValidator is a validator for the "footer_text" field. It is called by the builders before save.
	sitesettings.FooterTextValidator = sitesettingsDescFooterText.Validators[0].(func(string) error)
	// sitesettingsDescGoogleAnalyticsID is the schema descriptor for google_analytics_id field.
	sitesettingsDescGoogleAnalyticsID := sitesettingsMixinFields1[3].Descriptor()
	// sitesettings.GoogleAnalyticsIDValidator is a validator for the "google_analytics_id" field. It is called by the builders before save.
	sitesettings.GoogleAnalyticsIDValidator = sitesettingsDescGoogleAnalyticsID.Validators[0].(func(string) error)
	// sitesettingsDescMaintenanceMode is the schema descriptor for maintenance_mode field.
	sitesettingsDescMaintenanceMode := sitesettingsMixinFields1[4].Descriptor()
	// sitesettings.DefaultMaintenanceMode holds the default value on creation for the maintenance_mode field.
	sitesettings.DefaultMaintenanceMode = sitesettingsDescMaintenanceMode.Default.(bool)
	// sitesettingsDescCreatedAt is the schema descriptor for created_at field.
	sitesettingsDescCreatedAt := sitesettingsMixinFields2[0].Descriptor()
	// sitesettings.DefaultCreatedAt holds the default value on creation for the created_at field.
	sitesettings.DefaultCreatedAt = sitesettingsDescCreatedAt.Default.(func() time.Time)
	// sitesettingsDescUpdatedAt is the schema descriptor for updated_at field.
	sitesettingsDescUpdatedAt := sitesettingsMixinFields2[1].Descriptor()
	// sitesettings.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sitesettings.DefaultUpdatedAt = sitesettingsDescUpdatedAt.Default.(func() time.Time)
	// sitesettings.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	sitesettings.UpdateDefaultUpdatedAt = sitesettingsDescUpdatedAt.UpdateDefault.(func() time.Time)
	// sitesettingsDescID is the schema descriptor for id field.
	sitesettingsDescID := sitesettingsMixinFields0[0].Descriptor()
	// sitesettings.DefaultID holds the default value on creation for the id field.
	sitesettings.DefaultID = sitesettingsDescID.Default.(func() ulid.ID)
	skillMixin := schema.Skill{}.Mixin()
	skillMixinFields0 := skillMixin[0].Fields()
	_ = skillMixinFields0
	skillMixinFields1 := skillMixin[1].Fields()
	_ = skillMixinFields1
	skillMixinFields2 := skillMixin[2].Fields()
	_ = skillMixinFields2
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillMixinFields1[0].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = func() func(string) error {
		validators := skillDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// skillDescYearsOfExperience is the schema descriptor for years_of_experience field.
	skillDescYearsOfExperience := skillMixinFields1[3].Descriptor()
	// skill.DefaultYearsOfExperience holds the default value on creation for the years_of_experience field.
	skill.DefaultYearsOfExperience = skillDescYearsOfExperience.Default.(int)
	// skill.YearsOfExperienceValidator is a validator for the "years_of_experience" field. It is called by the builders before save.
	skill.YearsOfExperienceValidator = skillDescYearsOfExperience.Validators[0].(func(int) error)
	// skillDescIsFeatured is the schema descriptor for is_featured field.
	skillDescIsFeatured := skillMixinFields1[4].Descriptor()
	// skill.DefaultIsFeatured holds the default value on creation for the is_featured field.
	skill.DefaultIsFeatured = skillDescIsFeatured.Default.(bool)
	// skillDescCreatedAt is the schema descriptor for created_at field.
	skillDescCreatedAt := skillMixinFields2[0].Descriptor()
	// skill.DefaultCreatedAt holds the default value on creation for the created_at field.
	skill.DefaultCreatedAt = skillDescCreatedAt.Default.(func() time.Time)
	// skillDescUpdatedAt is the schema descriptor for updated_at field.
	skillDescUpdatedAt := skillMixinFields2[1].Descriptor()
	// skill.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	skill.DefaultUpdatedAt = skillDescUpdatedAt.Default.(func() time.Time)
	// skill.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	skill.UpdateDefaultUpdatedAt = skillDescUpdatedAt.UpdateDefault.(func() time.Time)
	// skillDescID is the schema descriptor for id field.
	skillDescID := skillMixinFields0[0].Descriptor()
	// skill.DefaultID holds the default value on creation for the id field.
	skill.DefaultID = skillDescID.Default.(func() ulid.ID)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userMixinFields1 := userMixin[1].Fields()
	_ = userMixinFields1
	userMixinFields2 := userMixin[2].Fields()
	_ = userMixinFields2
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userMixinFields1[0].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = func() func(string) error {
		validators := userDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userMixinFields1[1].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPassword is the schema descriptor for password field.
	userDescPassword := userMixinFields1[2].Descriptor()
	// user.PasswordValidator is a validator for the "password" field. It is called by the builders before save.
	user.PasswordValidator = userDescPassword.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields2[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields2[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userMixinFields0[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() ulid.ID)
}
