package router

import (
	"net/http"

	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/infrastructure/router/handler"
	appmiddleware "portfolio-go-backend/pkg/infrastructure/router/middleware"
	"portfolio-go-backend/pkg/infrastructure/storage"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Options of router
type Options struct {
	// TemplatesGlob locates the HTML templates. Defaults to
	// "web/templates/*.html" relative to the working directory.
	TemplatesGlob string
	// Storage enables the admin media upload endpoint when set.
	Storage *storage.S3Service
}

// New creates route endpoint
func New(ctrl controller.Controller, options Options) (*echo.Echo, error) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderXRequestedWith,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
		},
	}))

	glob := options.TemplatesGlob
	if glob == "" {
		glob = "web/templates/*.html"
	}
	renderer, err := NewRenderer(glob)
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.GET("/health_check", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	pageHandler := handler.NewPageHandler(ctrl.Page)
	contactHandler := handler.NewContactHandler(ctrl.Contact, ctrl.Page)
	sitemapHandler := handler.NewSitemapHandler(ctrl.Sitemap)

	{ // Public site
		e.GET("/", pageHandler.Home)
		e.GET("/academic/", pageHandler.Academic)
		e.GET("/experience/", pageHandler.Experience)
		e.GET("/certifications/", pageHandler.Certifications)
		e.GET("/projects/", pageHandler.Projects)
		e.GET("/projects/:id/", pageHandler.ProjectDetail)
		e.GET("/contact/", contactHandler.ShowForm)
		e.POST("/contact/", contactHandler.SubmitForm)
		e.GET("/contact/success/", contactHandler.ShowSuccess)
		e.GET("/sitemap.xml", sitemapHandler.Serve)
	}

	e.POST("/api/contact/", contactHandler.SubmitAPI)

	authHandler := handler.NewAuthHandler(ctrl.Auth)
	e.POST("/api/admin/login", authHandler.Login)
	e.POST("/api/admin/refresh", authHandler.RefreshToken, appmiddleware.RefreshAuth())

	admin := e.Group("/api/admin", appmiddleware.Auth(appmiddleware.AuthOptions{}))
	{
		profileHandler := handler.NewProfileHandler(ctrl.Profile)
		admin.GET("/profile", profileHandler.Get)
		admin.POST("/profile", profileHandler.Create)
		admin.PATCH("/profile/:id", profileHandler.Update)
		admin.DELETE("/profile/:id", profileHandler.Delete)

		educationHandler := handler.NewEducationHandler(ctrl.Education)
		admin.GET("/educations", educationHandler.List)
		admin.GET("/educations/:id", educationHandler.Get)
		admin.POST("/educations", educationHandler.Create)
		admin.PATCH("/educations/:id", educationHandler.Update)
		admin.DELETE("/educations/:id", educationHandler.Delete)

		experienceHandler := handler.NewExperienceHandler(ctrl.Experience)
		admin.GET("/experiences", experienceHandler.List)
		admin.GET("/experiences/:id", experienceHandler.Get)
		admin.POST("/experiences", experienceHandler.Create)
		admin.PATCH("/experiences/:id", experienceHandler.Update)
		admin.DELETE("/experiences/:id", experienceHandler.Delete)

		skillHandler := handler.NewSkillHandler(ctrl.Skill)
		admin.GET("/skills", skillHandler.List)
		admin.GET("/skills/:id", skillHandler.Get)
		admin.POST("/skills", skillHandler.Create)
		admin.PATCH("/skills/:id", skillHandler.Update)
		admin.DELETE("/skills/:id", skillHandler.Delete)

		certificationHandler := handler.NewCertificationHandler(ctrl.Certification)
		admin.GET("/certifications", certificationHandler.List)
		admin.GET("/certifications/:id", certificationHandler.Get)
		admin.POST("/certifications", certificationHandler.Create)
		admin.PATCH("/certifications/:id", certificationHandler.Update)
		admin.DELETE("/certifications/:id", certificationHandler.Delete)

		projectHandler := handler.NewProjectHandler(ctrl.Project)
		admin.GET("/projects", projectHandler.List)
		admin.GET("/projects/:id", projectHandler.Get)
		admin.POST("/projects", projectHandler.Create)
		admin.PATCH("/projects/:id", projectHandler.Update)
		admin.DELETE("/projects/:id", projectHandler.Delete)

		siteSettingsHandler := handler.NewSiteSettingsHandler(ctrl.SiteSettings)
		admin.GET("/site-settings", siteSettingsHandler.Get)
		admin.POST("/site-settings", siteSettingsHandler.Create)
		admin.PATCH("/site-settings", siteSettingsHandler.Update)

		admin.GET("/contacts", contactHandler.List)
		admin.PATCH("/contacts/:id/read", contactHandler.MarkRead)
		admin.PATCH("/contacts/:id/replied", contactHandler.MarkReplied)

		if options.Storage != nil {
			mediaHandler := handler.NewMediaHandler(options.Storage)
			admin.POST("/media", mediaHandler.Upload)
		}
	}

	return e, nil
}
