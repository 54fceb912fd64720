// Code generated by ent, DO NOT EDIT.

package sitesettings

import (
	"portfolio-go-backend/ent/schema/ulid"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sitesettings type in the database.
	Label = "site_settings"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSiteTitle holds the string denoting the site_title field in the database.
	FieldSiteTitle = "site_title"
	// FieldSiteDescription holds the string denoting the site_description field in the database.
	FieldSiteDescription = "site_description"
	// FieldFooterText holds the string denoting the footer_text field in the database.
	FieldFooterText = "footer_text"
	// FieldGoogleAnalyticsID holds the string denoting the google_analytics_id field in the database.
	FieldGoogleAnalyticsID = "google_analytics_id"
	// FieldMaintenanceMode holds the string denoting the maintenance_mode field in the database.
	FieldMaintenanceMode = "maintenance_mode"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sitesettings in the database.
	Table = "site_settings"
)

// Columns holds all SQL columns for sitesettings fields.
var Columns = []string{
	FieldID,
	FieldSiteTitle,
	FieldSiteDescription,
	FieldFooterText,
	FieldGoogleAnalyticsID,
	FieldMaintenanceMode,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSiteTitle holds the default value on creation for the "site_title" field.
	DefaultSiteTitle string
	// SiteTitleValidator is a validator for the "site_title" field. It is called by the builders before save.
	SiteTitleValidator func(string) error
	// FooterTextValidator is a validator for the "footer_text" field. It is called by the builders before save.
	FooterTextValidator func(string) error
	// GoogleAnalyticsIDValidator is a validator for the "google_analytics_id" field. It is called by the builders before save.
	GoogleAnalyticsIDValidator func(string) error
	// DefaultMaintenanceMode holds the default value on creation for the "maintenance_mode" field.
	DefaultMaintenanceMode bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ID
)

// OrderOption defines the ordering options for the SiteSettings queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySiteTitle orders the results by the site_title field.
func BySiteTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteTitle, opts...).ToFunc()
}

// BySiteDescription orders the results by the site_description field.
func BySiteDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSiteDescription, opts...).ToFunc()
}

// ByFooterText orders the results by the footer_text field.
func ByFooterText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFooterText, opts...).ToFunc()
}

// ByGoogleAnalyticsID orders the results by the google_analytics_id field.
func ByGoogleAnalyticsID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoogleAnalyticsID, opts...).ToFunc()
}

// ByMaintenanceMode orders the results by the maintenance_mode field.
func ByMaintenanceMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaintenanceMode, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
