// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/sitesettings"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

// SiteSettings is the model entity for the SiteSettings schema.
type SiteSettings struct {
	config `json:"-"`
	// ID of the ent.
	ID ulid.ID `json:"id,omitempty"`
	// SiteTitle holds the value of the "site_title" field.
	SiteTitle string `json:"site_title,omitempty"`
	// SiteDescription holds the value of the "site_description" field.
	SiteDescription string `json:"site_description,omitempty"`
	// FooterText holds the value of the "footer_text" field.
	FooterText string `json:"footer_text,omitempty"`
	// GoogleAnalyticsID holds the value of the "google_analytics_id" field.
	GoogleAnalyticsID string `json:"google_analytics_id,omitempty"`
	// MaintenanceMode holds the value of the "maintenance_mode" field.
	MaintenanceMode bool `json:"maintenance_mode,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SiteSettings) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sitesettings.FieldMaintenanceMode:
			values[i] = new(sql.NullBool)
		case sitesettings.FieldID, sitesettings.FieldSiteTitle, sitesettings.FieldSiteDescription, sitesettings.FieldFooterText, sitesettings.FieldGoogleAnalyticsID:
			values[i] = new(sql.NullString)
		case sitesettings.FieldCreatedAt, sitesettings.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SiteSettings fields.
func (ss *SiteSettings) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sitesettings.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				ss.ID = ulid.ID(value.String)
			}
		case sitesettings.FieldSiteTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_title", values[i])
			} else if value.Valid {
				ss.SiteTitle = value.String
			}
		case sitesettings.FieldSiteDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field site_description", values[i])
			} else if value.Valid {
				ss.SiteDescription = value.String
			}
		case sitesettings.FieldFooterText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field footer_text", values[i])
			} else if value.Valid {
				ss.FooterText = value.String
			}
		case sitesettings.FieldGoogleAnalyticsID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_analytics_id", values[i])
			} else if value.Valid {
				ss.GoogleAnalyticsID = value.String
			}
		case sitesettings.FieldMaintenanceMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field maintenance_mode", values[i])
			} else if value.Valid {
				ss.MaintenanceMode = value.Bool
			}
		case sitesettings.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ss.CreatedAt = value.Time
			}
		case sitesettings.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ss.UpdatedAt = value.Time
			}
		default:
			ss.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SiteSettings.
// This includes values selected through modifiers, order, etc.
func (ss *SiteSettings) Value(name string) (ent.Value, error) {
	return ss.selectValues.Get(name)
}

// Update returns a builder for updating this SiteSettings.
// Note that you need to call SiteSettings.Unwrap() before calling this method if this SiteSettings
// was returned from a transaction, and the transaction was committed or rolled back.
func (ss *SiteSettings) Update() *SiteSettingsUpdateOne {
	return NewSiteSettingsClient(ss.config).UpdateOne(ss)
}

// Unwrap unwraps the SiteSettings entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ss *SiteSettings) Unwrap() *SiteSettings {
	_tx, ok := ss.config.driver.(*txDriver)
	if !ok {
		panic("ent: SiteSettings is not a transactional entity")
	}
	ss.config.driver = _tx.drv
	return ss
}

// String implements the fmt.Stringer.
func (ss *SiteSettings) String() string {
	var builder strings.Builder
	builder.WriteString("SiteSettings(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ss.ID))
	builder.WriteString("site_title=")
	builder.WriteString(ss.SiteTitle)
	builder.WriteString(", ")
	builder.WriteString("site_description=")
	builder.WriteString(ss.SiteDescription)
	builder.WriteString(", ")
	builder.WriteString("footer_text=")
	builder.WriteString(ss.FooterText)
	builder.WriteString(", ")
	builder.WriteString("google_analytics_id=")
	builder.WriteString(ss.GoogleAnalyticsID)
	builder.WriteString(", ")
	builder.WriteString("maintenance_mode=")
	builder.WriteString(fmt.Sprintf("%v", ss.MaintenanceMode))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ss.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ss.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SiteSettingsSlice is a parsable slice of SiteSettings.
type SiteSettingsSlice []*SiteSettings
