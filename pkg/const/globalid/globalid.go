package globalid

// Object holds the id prefix of an entity.
type Object struct {
	Prefix string
}

// GlobalID lists the id prefixes of all entities.
type GlobalID struct {
	User          Object
	Profile       Object
	Education     Object
	Experience    Object
	Skill         Object
	Certification Object
	Project       Object
	Contact       Object
	SiteSettings  Object
}

// New returns the id prefix table.
func New() GlobalID {
	return GlobalID{
		User:          Object{Prefix: "US"},
		Profile:       Object{Prefix: "PF"},
		Education:     Object{Prefix: "ED"},
		Experience:    Object{Prefix: "EX"},
		Skill:         Object{Prefix: "SK"},
		Certification: Object{Prefix: "CT"},
		Project:       Object{Prefix: "PJ"},
		Contact:       Object{Prefix: "CN"},
		SiteSettings:  Object{Prefix: "ST"},
	}
}
