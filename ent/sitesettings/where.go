// Code generated by ent, DO NOT EDIT.

package sitesettings

import (
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ID) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldID, id))
}

// SiteTitle applies equality check predicate on the "site_title" field. It's identical to SiteTitleEQ.
func SiteTitle(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldSiteTitle, v))
}

// SiteDescription applies equality check predicate on the "site_description" field. It's identical to SiteDescriptionEQ.
func SiteDescription(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldSiteDescription, v))
}

// FooterText applies equality check predicate on the "footer_text" field. It's identical to FooterTextEQ.
func FooterText(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldFooterText, v))
}

// GoogleAnalyticsID applies equality check predicate on the "google_analytics_id" field. It's identical to GoogleAnalyticsIDEQ.
func GoogleAnalyticsID(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldGoogleAnalyticsID, v))
}

// MaintenanceMode applies equality check predicate on the "maintenance_mode" field. It's identical to MaintenanceModeEQ.
func MaintenanceMode(v bool) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldMaintenanceMode, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// SiteTitleEQ applies the EQ predicate on the "site_title" field.
func SiteTitleEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldSiteTitle, v))
}

// SiteTitleNEQ applies the NEQ predicate on the "site_title" field.
func SiteTitleNEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldSiteTitle, v))
}

// SiteTitleIn applies the In predicate on the "site_title" field.
func SiteTitleIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldSiteTitle, vs...))
}

// SiteTitleNotIn applies the NotIn predicate on the "site_title" field.
func SiteTitleNotIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldSiteTitle, vs...))
}

// SiteTitleGT applies the GT predicate on the "site_title" field.
func SiteTitleGT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldSiteTitle, v))
}

// SiteTitleGTE applies the GTE predicate on the "site_title" field.
func SiteTitleGTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldSiteTitle, v))
}

// SiteTitleLT applies the LT predicate on the "site_title" field.
func SiteTitleLT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldSiteTitle, v))
}

// SiteTitleLTE applies the LTE predicate on the "site_title" field.
func SiteTitleLTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldSiteTitle, v))
}

// SiteTitleContains applies the Contains predicate on the "site_title" field.
func SiteTitleContains(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContains(FieldSiteTitle, v))
}

// SiteTitleHasPrefix applies the HasPrefix predicate on the "site_title" field.
func SiteTitleHasPrefix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasPrefix(FieldSiteTitle, v))
}

// SiteTitleHasSuffix applies the HasSuffix predicate on the "site_title" field.
func SiteTitleHasSuffix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasSuffix(FieldSiteTitle, v))
}

// SiteTitleEqualFold applies the EqualFold predicate on the "site_title" field.
func SiteTitleEqualFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEqualFold(FieldSiteTitle, v))
}

// SiteTitleContainsFold applies the ContainsFold predicate on the "site_title" field.
func SiteTitleContainsFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContainsFold(FieldSiteTitle, v))
}

// SiteDescriptionEQ applies the EQ predicate on the "site_description" field.
func SiteDescriptionEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldSiteDescription, v))
}

// SiteDescriptionNEQ applies the NEQ predicate on the "site_description" field.
func SiteDescriptionNEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldSiteDescription, v))
}

// SiteDescriptionIn applies the In predicate on the "site_description" field.
func SiteDescriptionIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldSiteDescription, vs...))
}

// SiteDescriptionNotIn applies the NotIn predicate on the "site_description" field.
func SiteDescriptionNotIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldSiteDescription, vs...))
}

// SiteDescriptionGT applies the GT predicate on the "site_description" field.
func SiteDescriptionGT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldSiteDescription, v))
}

// SiteDescriptionGTE applies the GTE predicate on the "site_description" field.
func SiteDescriptionGTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldSiteDescription, v))
}

// SiteDescriptionLT applies the LT predicate on the "site_description" field.
func SiteDescriptionLT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldSiteDescription, v))
}

// SiteDescriptionLTE applies the LTE predicate on the "site_description" field.
func SiteDescriptionLTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldSiteDescription, v))
}

// SiteDescriptionContains applies the Contains predicate on the "site_description" field.
func SiteDescriptionContains(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContains(FieldSiteDescription, v))
}

// SiteDescriptionHasPrefix applies the HasPrefix predicate on the "site_description" field.
func SiteDescriptionHasPrefix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasPrefix(FieldSiteDescription, v))
}

// SiteDescriptionHasSuffix applies the HasSuffix predicate on the "site_description" field.
func SiteDescriptionHasSuffix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasSuffix(FieldSiteDescription, v))
}

// SiteDescriptionIsNil applies the IsNil predicate on the "site_description" field.
func SiteDescriptionIsNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIsNull(FieldSiteDescription))
}

// SiteDescriptionNotNil applies the NotNil predicate on the "site_description" field.
func SiteDescriptionNotNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotNull(FieldSiteDescription))
}

// SiteDescriptionEqualFold applies the EqualFold predicate on the "site_description" field.
func SiteDescriptionEqualFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEqualFold(FieldSiteDescription, v))
}

// SiteDescriptionContainsFold applies the ContainsFold predicate on the "site_description" field.
func SiteDescriptionContainsFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContainsFold(FieldSiteDescription, v))
}

// FooterTextEQ applies the EQ predicate on the "footer_text" field.
func FooterTextEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldFooterText, v))
}

// FooterTextNEQ applies the NEQ predicate on the "footer_text" field.
func FooterTextNEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldFooterText, v))
}

// FooterTextIn applies the In predicate on the "footer_text" field.
func FooterTextIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldFooterText, vs...))
}

// FooterTextNotIn applies the NotIn predicate on the "footer_text" field.
func FooterTextNotIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldFooterText, vs...))
}

// FooterTextGT applies the GT predicate on the "footer_text" field.
func FooterTextGT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldFooterText, v))
}

// FooterTextGTE applies the GTE predicate on the "footer_text" field.
func FooterTextGTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldFooterText, v))
}

// FooterTextLT applies the LT predicate on the "footer_text" field.
func FooterTextLT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldFooterText, v))
}

// FooterTextLTE applies the LTE predicate on the "footer_text" field.
func FooterTextLTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldFooterText, v))
}

// FooterTextContains applies the Contains predicate on the "footer_text" field.
func FooterTextContains(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContains(FieldFooterText, v))
}

// FooterTextHasPrefix applies the HasPrefix predicate on the "footer_text" field.
func FooterTextHasPrefix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasPrefix(FieldFooterText, v))
}

// FooterTextHasSuffix applies the HasSuffix predicate on the "footer_text" field.
func FooterTextHasSuffix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasSuffix(FieldFooterText, v))
}

// FooterTextIsNil applies the IsNil predicate on the "footer_text" field.
func FooterTextIsNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIsNull(FieldFooterText))
}

// FooterTextNotNil applies the NotNil predicate on the "footer_text" field.
func FooterTextNotNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotNull(FieldFooterText))
}

// FooterTextEqualFold applies the EqualFold predicate on the "footer_text" field.
func FooterTextEqualFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEqualFold(FieldFooterText, v))
}

// FooterTextContainsFold applies the ContainsFold predicate on the "footer_text" field.
func FooterTextContainsFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContainsFold(FieldFooterText, v))
}

// GoogleAnalyticsIDEQ applies the EQ predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDNEQ applies the NEQ predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDNEQ(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDIn applies the In predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldGoogleAnalyticsID, vs...))
}

// GoogleAnalyticsIDNotIn applies the NotIn predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDNotIn(vs ...string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldGoogleAnalyticsID, vs...))
}

// GoogleAnalyticsIDGT applies the GT predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDGT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDGTE applies the GTE predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDGTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDLT applies the LT predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDLT(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDLTE applies the LTE predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDLTE(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDContains applies the Contains predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDContains(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContains(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDHasPrefix applies the HasPrefix predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDHasPrefix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasPrefix(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDHasSuffix applies the HasSuffix predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDHasSuffix(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldHasSuffix(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDIsNil applies the IsNil predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDIsNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIsNull(FieldGoogleAnalyticsID))
}

// GoogleAnalyticsIDNotNil applies the NotNil predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDNotNil() predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotNull(FieldGoogleAnalyticsID))
}

// GoogleAnalyticsIDEqualFold applies the EqualFold predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDEqualFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEqualFold(FieldGoogleAnalyticsID, v))
}

// GoogleAnalyticsIDContainsFold applies the ContainsFold predicate on the "google_analytics_id" field.
func GoogleAnalyticsIDContainsFold(v string) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldContainsFold(FieldGoogleAnalyticsID, v))
}

// MaintenanceModeEQ applies the EQ predicate on the "maintenance_mode" field.
func MaintenanceModeEQ(v bool) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldMaintenanceMode, v))
}

// MaintenanceModeNEQ applies the NEQ predicate on the "maintenance_mode" field.
func MaintenanceModeNEQ(v bool) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldMaintenanceMode, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.SiteSettings {
	return predicate.SiteSettings(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SiteSettings) predicate.SiteSettings {
	return predicate.SiteSettings(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SiteSettings) predicate.SiteSettings {
	return predicate.SiteSettings(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SiteSettings) predicate.SiteSettings {
	return predicate.SiteSettings(sql.NotPredicates(p))
}
