package handler

import (
	"encoding/xml"
	"net/http"

	"portfolio-go-backend/pkg/adapter/controller"

	"github.com/labstack/echo/v4"
)

// SitemapHandler serves /sitemap.xml.
type SitemapHandler struct {
	controller controller.Sitemap
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(c controller.Sitemap) *SitemapHandler {
	return &SitemapHandler{controller: c}
}

func (h *SitemapHandler) Serve(c echo.Context) error {
	urlSet, err := h.controller.Build(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}

	body, err := xml.MarshalIndent(urlSet, "", "  ")
	if err != nil {
		return HandleError(c, err)
	}

	return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), body...))
}
