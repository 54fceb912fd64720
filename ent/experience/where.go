// Code generated by ent, DO NOT EDIT.

package experience

import (
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldTitle, v))
}

// Company applies equality check predicate on the "company" field. It's identical to CompanyEQ.
func Company(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldCompany, v))
}

// Location applies equality check predicate on the "location" field. It's identical to LocationEQ.
func Location(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldLocation, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldStartDate, v))
}

// EndDate applies equality check predicate on the "end_date" field. It's identical to EndDateEQ.
func EndDate(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldEndDate, v))
}

// IsCurrent applies equality check predicate on the "is_current" field. It's identical to IsCurrentEQ.
func IsCurrent(v bool) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldIsCurrent, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldDescription, v))
}

// Achievements applies equality check predicate on the "achievements" field. It's identical to AchievementsEQ.
func Achievements(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldAchievements, v))
}

// Technologies applies equality check predicate on the "technologies" field. It's identical to TechnologiesEQ.
func Technologies(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldTechnologies, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldTitle, v))
}

// CompanyEQ applies the EQ predicate on the "company" field.
func CompanyEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldCompany, v))
}

// CompanyNEQ applies the NEQ predicate on the "company" field.
func CompanyNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldCompany, v))
}

// CompanyIn applies the In predicate on the "company" field.
func CompanyIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldCompany, vs...))
}

// CompanyNotIn applies the NotIn predicate on the "company" field.
func CompanyNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldCompany, vs...))
}

// CompanyGT applies the GT predicate on the "company" field.
func CompanyGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldCompany, v))
}

// CompanyGTE applies the GTE predicate on the "company" field.
func CompanyGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldCompany, v))
}

// CompanyLT applies the LT predicate on the "company" field.
func CompanyLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldCompany, v))
}

// CompanyLTE applies the LTE predicate on the "company" field.
func CompanyLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldCompany, v))
}

// CompanyContains applies the Contains predicate on the "company" field.
func CompanyContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldCompany, v))
}

// CompanyHasPrefix applies the HasPrefix predicate on the "company" field.
func CompanyHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldCompany, v))
}

// CompanyHasSuffix applies the HasSuffix predicate on the "company" field.
func CompanyHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldCompany, v))
}

// CompanyEqualFold applies the EqualFold predicate on the "company" field.
func CompanyEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldCompany, v))
}

// CompanyContainsFold applies the ContainsFold predicate on the "company" field.
func CompanyContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldCompany, v))
}

// LocationEQ applies the EQ predicate on the "location" field.
func LocationEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldLocation, v))
}

// LocationNEQ applies the NEQ predicate on the "location" field.
func LocationNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldLocation, v))
}

// LocationIn applies the In predicate on the "location" field.
func LocationIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldLocation, vs...))
}

// LocationNotIn applies the NotIn predicate on the "location" field.
func LocationNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldLocation, vs...))
}

// LocationGT applies the GT predicate on the "location" field.
func LocationGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldLocation, v))
}

// LocationGTE applies the GTE predicate on the "location" field.
func LocationGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldLocation, v))
}

// LocationLT applies the LT predicate on the "location" field.
func LocationLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldLocation, v))
}

// LocationLTE applies the LTE predicate on the "location" field.
func LocationLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldLocation, v))
}

// LocationContains applies the Contains predicate on the "location" field.
func LocationContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldLocation, v))
}

// LocationHasPrefix applies the HasPrefix predicate on the "location" field.
func LocationHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldLocation, v))
}

// LocationHasSuffix applies the HasSuffix predicate on the "location" field.
func LocationHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldLocation, v))
}

// LocationIsNil applies the IsNil predicate on the "location" field.
func LocationIsNil() predicate.Experience {
	return predicate.Experience(sql.FieldIsNull(FieldLocation))
}

// LocationNotNil applies the NotNil predicate on the "location" field.
func LocationNotNil() predicate.Experience {
	return predicate.Experience(sql.FieldNotNull(FieldLocation))
}

// LocationEqualFold applies the EqualFold predicate on the "location" field.
func LocationEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldLocation, v))
}

// LocationContainsFold applies the ContainsFold predicate on the "location" field.
func LocationContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldLocation, v))
}

// JobTypeEQ applies the EQ predicate on the "job_type" field.
func JobTypeEQ(v JobType) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldJobType, v))
}

// JobTypeNEQ applies the NEQ predicate on the "job_type" field.
func JobTypeNEQ(v JobType) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldJobType, v))
}

// JobTypeIn applies the In predicate on the "job_type" field.
func JobTypeIn(vs ...JobType) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldJobType, vs...))
}

// JobTypeNotIn applies the NotIn predicate on the "job_type" field.
func JobTypeNotIn(vs ...JobType) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldJobType, vs...))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldStartDate, v))
}

// EndDateEQ applies the EQ predicate on the "end_date" field.
func EndDateEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldEndDate, v))
}

// EndDateNEQ applies the NEQ predicate on the "end_date" field.
func EndDateNEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldEndDate, v))
}

// EndDateIn applies the In predicate on the "end_date" field.
func EndDateIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldEndDate, vs...))
}

// EndDateNotIn applies the NotIn predicate on the "end_date" field.
func EndDateNotIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldEndDate, vs...))
}

// EndDateGT applies the GT predicate on the "end_date" field.
func EndDateGT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldEndDate, v))
}

// EndDateGTE applies the GTE predicate on the "end_date" field.
func EndDateGTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldEndDate, v))
}

// EndDateLT applies the LT predicate on the "end_date" field.
func EndDateLT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldEndDate, v))
}

// EndDateLTE applies the LTE predicate on the "end_date" field.
func EndDateLTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldEndDate, v))
}

// EndDateIsNil applies the IsNil predicate on the "end_date" field.
func EndDateIsNil() predicate.Experience {
	return predicate.Experience(sql.FieldIsNull(FieldEndDate))
}

// EndDateNotNil applies the NotNil predicate on the "end_date" field.
func EndDateNotNil() predicate.Experience {
	return predicate.Experience(sql.FieldNotNull(FieldEndDate))
}

// IsCurrentEQ applies the EQ predicate on the "is_current" field.
func IsCurrentEQ(v bool) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldIsCurrent, v))
}

// IsCurrentNEQ applies the NEQ predicate on the "is_current" field.
func IsCurrentNEQ(v bool) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldIsCurrent, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldDescription, v))
}

// AchievementsEQ applies the EQ predicate on the "achievements" field.
func AchievementsEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldAchievements, v))
}

// AchievementsNEQ applies the NEQ predicate on the "achievements" field.
func AchievementsNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldAchievements, v))
}

// AchievementsIn applies the In predicate on the "achievements" field.
func AchievementsIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldAchievements, vs...))
}

// AchievementsNotIn applies the NotIn predicate on the "achievements" field.
func AchievementsNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldAchievements, vs...))
}

// AchievementsGT applies the GT predicate on the "achievements" field.
func AchievementsGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldAchievements, v))
}

// AchievementsGTE applies the GTE predicate on the "achievements" field.
func AchievementsGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldAchievements, v))
}

// AchievementsLT applies the LT predicate on the "achievements" field.
func AchievementsLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldAchievements, v))
}

// AchievementsLTE applies the LTE predicate on the "achievements" field.
func AchievementsLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldAchievements, v))
}

// AchievementsContains applies the Contains predicate on the "achievements" field.
func AchievementsContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldAchievements, v))
}

// AchievementsHasPrefix applies the HasPrefix predicate on the "achievements" field.
func AchievementsHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldAchievements, v))
}

// AchievementsHasSuffix applies the HasSuffix predicate on the "achievements" field.
func AchievementsHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldAchievements, v))
}

// AchievementsIsNil applies the IsNil predicate on the "achievements" field.
func AchievementsIsNil() predicate.Experience {
	return predicate.Experience(sql.FieldIsNull(FieldAchievements))
}

// AchievementsNotNil applies the NotNil predicate on the "achievements" field.
func AchievementsNotNil() predicate.Experience {
	return predicate.Experience(sql.FieldNotNull(FieldAchievements))
}

// AchievementsEqualFold applies the EqualFold predicate on the "achievements" field.
func AchievementsEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldAchievements, v))
}

// AchievementsContainsFold applies the ContainsFold predicate on the "achievements" field.
func AchievementsContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldAchievements, v))
}

// TechnologiesEQ applies the EQ predicate on the "technologies" field.
func TechnologiesEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldTechnologies, v))
}

// TechnologiesNEQ applies the NEQ predicate on the "technologies" field.
func TechnologiesNEQ(v string) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldTechnologies, v))
}

// TechnologiesIn applies the In predicate on the "technologies" field.
func TechnologiesIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldTechnologies, vs...))
}

// TechnologiesNotIn applies the NotIn predicate on the "technologies" field.
func TechnologiesNotIn(vs ...string) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldTechnologies, vs...))
}

// TechnologiesGT applies the GT predicate on the "technologies" field.
func TechnologiesGT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldTechnologies, v))
}

// TechnologiesGTE applies the GTE predicate on the "technologies" field.
func TechnologiesGTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldTechnologies, v))
}

// TechnologiesLT applies the LT predicate on the "technologies" field.
func TechnologiesLT(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldTechnologies, v))
}

// TechnologiesLTE applies the LTE predicate on the "technologies" field.
func TechnologiesLTE(v string) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldTechnologies, v))
}

// TechnologiesContains applies the Contains predicate on the "technologies" field.
func TechnologiesContains(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContains(FieldTechnologies, v))
}

// TechnologiesHasPrefix applies the HasPrefix predicate on the "technologies" field.
func TechnologiesHasPrefix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasPrefix(FieldTechnologies, v))
}

// TechnologiesHasSuffix applies the HasSuffix predicate on the "technologies" field.
func TechnologiesHasSuffix(v string) predicate.Experience {
	return predicate.Experience(sql.FieldHasSuffix(FieldTechnologies, v))
}

// TechnologiesIsNil applies the IsNil predicate on the "technologies" field.
func TechnologiesIsNil() predicate.Experience {
	return predicate.Experience(sql.FieldIsNull(FieldTechnologies))
}

// TechnologiesNotNil applies the NotNil predicate on the "technologies" field.
func TechnologiesNotNil() predicate.Experience {
	return predicate.Experience(sql.FieldNotNull(FieldTechnologies))
}

// TechnologiesEqualFold applies the EqualFold predicate on the "technologies" field.
func TechnologiesEqualFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldEqualFold(FieldTechnologies, v))
}

// TechnologiesContainsFold applies the ContainsFold predicate on the "technologies" field.
func TechnologiesContainsFold(v string) predicate.Experience {
	return predicate.Experience(sql.FieldContainsFold(FieldTechnologies, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Experience {
	return predicate.Experience(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Experience) predicate.Experience {
	return predicate.Experience(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Experience) predicate.Experience {
	return predicate.Experience(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Experience) predicate.Experience {
	return predicate.Experience(sql.NotPredicates(p))
}
