package query_test

import (
	"net/http"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/testutil"
	"portfolio-go-backend/testutil/e2e"
	"testing"
)

func TestPages_HealthCheck(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
	})
	defer teardown()

	expect.GET("/health_check").
		Expect().
		Status(http.StatusOK).
		Body().IsEqual("ok")
}

func TestPages_PublicPages(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
	})
	defer teardown()

	// Every public page must render even on an empty database.
	paths := []string{
		"/",
		"/academic/",
		"/experience/",
		"/certifications/",
		"/projects/",
		"/contact/",
	}

	for _, path := range paths {
		expect.GET(path).
			Expect().
			Status(http.StatusOK).
			ContentType("text/html")
	}
}

func TestPages_ProjectDetailNotFound(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
	})
	defer teardown()

	expect.GET("/projects/01HXYZUNKNOWN0000000000000/").
		Expect().
		Status(http.StatusNotFound)
}

func TestPages_Sitemap(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
		TearDown: func(t *testing.T, client *ent.Client) {
			testutil.DropProject(t, client)
		},
	})
	defer teardown()

	body := expect.GET("/sitemap.xml").
		Expect().
		Status(http.StatusOK).
		ContentType("application/xml").
		Body()

	body.Contains("<urlset")
	body.Contains("/contact/")
	body.Contains("weekly")
}
