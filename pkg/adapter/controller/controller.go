package controller

// Controller struct holds the controller of the entire app
type Controller struct {
	Page          interface{ Page }
	Contact       interface{ Contact }
	Sitemap       interface{ Sitemap }
	Auth          interface{ Auth }
	Profile       interface{ Profile }
	Education     interface{ Education }
	Experience    interface{ Experience }
	Skill         interface{ Skill }
	Certification interface{ Certification }
	Project       interface{ Project }
	SiteSettings  interface{ SiteSettings }
}
