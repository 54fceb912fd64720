// Code generated by ent, DO NOT EDIT.

package project

import (
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDescription, v))
}

// DetailedDescription applies equality check predicate on the "detailed_description" field. It's identical to DetailedDescriptionEQ.
func DetailedDescription(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDetailedDescription, v))
}

// Technologies applies equality check predicate on the "technologies" field. It's identical to TechnologiesEQ.
func Technologies(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTechnologies, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEndDate, v))
}

// ProjectURL applies equality check predicate on the "project_url" field. It's identical to ProjectURLEQ.
func ProjectURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectURL, v))
}

// GithubURL applies equality check predicate on the "github_url" field. It's identical to GithubURLEQ.
func GithubURL(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGithubURL, v))
}

// Image applies equality check predicate on the "image" field. It's identical to ImageEQ.
func Image(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldImage, v))
}

// IsFeatured applies equality check predicate on the "is_featured" field. It's identical to IsFeaturedEQ.
func IsFeatured(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldIsFeatured, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDescription, v))
}

// DetailedDescriptionEQ applies the EQ predicate on the "detailed_description" field.
func DetailedDescriptionEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldDetailedDescription, v))
}

// DetailedDescriptionNEQ applies the NEQ predicate on the "detailed_description" field.
func DetailedDescriptionNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldDetailedDescription, v))
}

// DetailedDescriptionIn applies the In predicate on the "detailed_description" field.
func DetailedDescriptionIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldDetailedDescription, vs...))
}

// DetailedDescriptionNotIn applies the NotIn predicate on the "detailed_description" field.
func DetailedDescriptionNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldDetailedDescription, vs...))
}

// DetailedDescriptionGT applies the GT predicate on the "detailed_description" field.
func DetailedDescriptionGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldDetailedDescription, v))
}

// DetailedDescriptionGTE applies the GTE predicate on the "detailed_description" field.
func DetailedDescriptionGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldDetailedDescription, v))
}

// DetailedDescriptionLT applies the LT predicate on the "detailed_description" field.
func DetailedDescriptionLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldDetailedDescription, v))
}

// DetailedDescriptionLTE applies the LTE predicate on the "detailed_description" field.
func DetailedDescriptionLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldDetailedDescription, v))
}

// DetailedDescriptionContains applies the Contains predicate on the "detailed_description" field.
func DetailedDescriptionContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldDetailedDescription, v))
}

// DetailedDescriptionHasPrefix applies the HasPrefix predicate on the "detailed_description" field.
func DetailedDescriptionHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldDetailedDescription, v))
}

// DetailedDescriptionHasSuffix applies the HasSuffix predicate on the "detailed_description" field.
func DetailedDescriptionHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldDetailedDescription, v))
}

// DetailedDescriptionIsNil applies the IsNil predicate on the "detailed_description" field.
func DetailedDescriptionIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldDetailedDescription))
}

// DetailedDescriptionNotNil applies the NotNil predicate on the "detailed_description" field.
func DetailedDescriptionNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldDetailedDescription))
}

// DetailedDescriptionEqualFold applies the EqualFold predicate on the "detailed_description" field.
func DetailedDescriptionEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldDetailedDescription, v))
}

// DetailedDescriptionContainsFold applies the ContainsFold predicate on the "detailed_description" field.
func DetailedDescriptionContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldDetailedDescription, v))
}

// TechnologiesEQ applies the EQ predicate on the "technologies" field.
func TechnologiesEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldTechnologies, v))
}

// TechnologiesNEQ applies the NEQ predicate on the "technologies" field.
func TechnologiesNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldTechnologies, v))
}

// TechnologiesIn applies the In predicate on the "technologies" field.
func TechnologiesIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldTechnologies, vs...))
}

// TechnologiesNotIn applies the NotIn predicate on the "technologies" field.
func TechnologiesNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldTechnologies, vs...))
}

// TechnologiesGT applies the GT predicate on the "technologies" field.
func TechnologiesGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldTechnologies, v))
}

// TechnologiesGTE applies the GTE predicate on the "technologies" field.
func TechnologiesGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldTechnologies, v))
}

// TechnologiesLT applies the LT predicate on the "technologies" field.
func TechnologiesLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldTechnologies, v))
}

// TechnologiesLTE applies the LTE predicate on the "technologies" field.
func TechnologiesLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldTechnologies, v))
}

// TechnologiesContains applies the Contains predicate on the "technologies" field.
func TechnologiesContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldTechnologies, v))
}

// TechnologiesHasPrefix applies the HasPrefix predicate on the "technologies" field.
func TechnologiesHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldTechnologies, v))
}

// TechnologiesHasSuffix applies the HasSuffix predicate on the "technologies" field.
func TechnologiesHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldTechnologies, v))
}

// TechnologiesEqualFold applies the EqualFold predicate on the "technologies" field.
func TechnologiesEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldTechnologies, v))
}

// TechnologiesContainsFold applies the ContainsFold predicate on the "technologies" field.
func TechnologiesContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldTechnologies, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStatus, vs...))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldEndDate))
}

// ProjectURLEQ applies the EQ predicate on the "project_url" field.
func ProjectURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldProjectURL, v))
}

// ProjectURLNEQ applies the NEQ predicate on the "project_url" field.
func ProjectURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldProjectURL, v))
}

// ProjectURLIn applies the In predicate on the "project_url" field.
func ProjectURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldProjectURL, vs...))
}

// ProjectURLNotIn applies the NotIn predicate on the "project_url" field.
func ProjectURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldProjectURL, vs...))
}

// ProjectURLGT applies the GT predicate on the "project_url" field.
func ProjectURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldProjectURL, v))
}

// ProjectURLGTE applies the GTE predicate on the "project_url" field.
func ProjectURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldProjectURL, v))
}

// ProjectURLLT applies the LT predicate on the "project_url" field.
func ProjectURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldProjectURL, v))
}

// ProjectURLLTE applies the LTE predicate on the "project_url" field.
func ProjectURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldProjectURL, v))
}

// ProjectURLContains applies the Contains predicate on the "project_url" field.
func ProjectURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldProjectURL, v))
}

// ProjectURLHasPrefix applies the HasPrefix predicate on the "project_url" field.
func ProjectURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldProjectURL, v))
}

// ProjectURLHasSuffix applies the HasSuffix predicate on the "project_url" field.
func ProjectURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldProjectURL, v))
}

// ProjectURLIsNil applies the IsNil predicate on the "project_url" field.
func ProjectURLIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldProjectURL))
}

// ProjectURLNotNil applies the NotNil predicate on the "project_url" field.
func ProjectURLNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldProjectURL))
}

// ProjectURLEqualFold applies the EqualFold predicate on the "project_url" field.
func ProjectURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldProjectURL, v))
}

// ProjectURLContainsFold applies the ContainsFold predicate on the "project_url" field.
func ProjectURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldProjectURL, v))
}

// GithubURLEQ applies the EQ predicate on the "github_url" field.
func GithubURLEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldGithubURL, v))
}

// GithubURLNEQ applies the NEQ predicate on the "github_url" field.
func GithubURLNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldGithubURL, v))
}

// GithubURLIn applies the In predicate on the "github_url" field.
func GithubURLIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldGithubURL, vs...))
}

// GithubURLNotIn applies the NotIn predicate on the "github_url" field.
func GithubURLNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldGithubURL, vs...))
}

// GithubURLGT applies the GT predicate on the "github_url" field.
func GithubURLGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldGithubURL, v))
}

// GithubURLGTE applies the GTE predicate on the "github_url" field.
func GithubURLGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldGithubURL, v))
}

// GithubURLLT applies the LT predicate on the "github_url" field.
func GithubURLLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldGithubURL, v))
}

// GithubURLLTE applies the LTE predicate on the "github_url" field.
func GithubURLLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldGithubURL, v))
}

// GithubURLContains applies the Contains predicate on the "github_url" field.
func GithubURLContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldGithubURL, v))
}

// GithubURLHasPrefix applies the HasPrefix predicate on the "github_url" field.
func GithubURLHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldGithubURL, v))
}

// GithubURLHasSuffix applies the HasSuffix predicate on the "github_url" field.
func GithubURLHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldGithubURL, v))
}

// GithubURLIsNil applies the IsNil predicate on the "github_url" field.
func GithubURLIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldGithubURL))
}

// GithubURLNotNil applies the NotNil predicate on the "github_url" field.
func GithubURLNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldGithubURL))
}

// GithubURLEqualFold applies the EqualFold predicate on the "github_url" field.
func GithubURLEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldGithubURL, v))
}

// GithubURLContainsFold applies the ContainsFold predicate on the "github_url" field.
func GithubURLContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldGithubURL, v))
}

// ImageEQ applies the EQ predicate on the "image" field.
func ImageEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldImage, v))
}

// ImageNEQ applies the NEQ predicate on the "image" field.
func ImageNEQ(v string) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldImage, v))
}

// ImageIn applies the In predicate on the "image" field.
func ImageIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldImage, vs...))
}

// ImageNotIn applies the NotIn predicate on the "image" field.
func ImageNotIn(vs ...string) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldImage, vs...))
}

// ImageGT applies the GT predicate on the "image" field.
func ImageGT(v string) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldImage, v))
}

// ImageGTE applies the GTE predicate on the "image" field.
func ImageGTE(v string) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldImage, v))
}

// ImageLT applies the LT predicate on the "image" field.
func ImageLT(v string) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldImage, v))
}

// ImageLTE applies the LTE predicate on the "image" field.
func ImageLTE(v string) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldImage, v))
}

// ImageContains applies the Contains predicate on the "image" field.
func ImageContains(v string) predicate.Project {
	return predicate.Project(sql.FieldContains(FieldImage, v))
}

// ImageHasPrefix applies the HasPrefix predicate on the "image" field.
func ImageHasPrefix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasPrefix(FieldImage, v))
}

// ImageHasSuffix applies the HasSuffix predicate on the "image" field.
func ImageHasSuffix(v string) predicate.Project {
	return predicate.Project(sql.FieldHasSuffix(FieldImage, v))
}

// ImageIsNil applies the IsNil predicate on the "image" field.
func ImageIsNil() predicate.Project {
	return predicate.Project(sql.FieldIsNull(FieldImage))
}

// ImageNotNil applies the NotNil predicate on the "image" field.
func ImageNotNil() predicate.Project {
	return predicate.Project(sql.FieldNotNull(FieldImage))
}

// ImageEqualFold applies the EqualFold predicate on the "image" field.
func ImageEqualFold(v string) predicate.Project {
	return predicate.Project(sql.FieldEqualFold(FieldImage, v))
}

// ImageContainsFold applies the ContainsFold predicate on the "image" field.
func ImageContainsFold(v string) predicate.Project {
	return predicate.Project(sql.FieldContainsFold(FieldImage, v))
}

// IsFeaturedEQ applies the EQ predicate on the "is_featured" field.
func IsFeaturedEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldIsFeatured, v))
}

// IsFeaturedNEQ applies the NEQ predicate on the "is_featured" field.
func IsFeaturedNEQ(v bool) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldIsFeatured, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Project {
	return predicate.Project(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Project {
	return predicate.Project(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Project) predicate.Project {
	return predicate.Project(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Project) predicate.Project {
	return predicate.Project(sql.NotPredicates(p))
}
