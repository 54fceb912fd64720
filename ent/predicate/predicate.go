// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Certification is the predicate function for certification builders.
type Certification func(*sql.Selector)

// Contact is the predicate function for contact builders.
type Contact func(*sql.Selector)

// Education is the predicate function for education builders.
type Education func(*sql.Selector)

// Experience is the predicate function for experience builders.
type Experience func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// SiteSettings is the predicate function for sitesettings builders.
type SiteSettings func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
