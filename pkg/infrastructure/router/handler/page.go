package handler

import (
	"net/http"
	"strconv"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"

	"github.com/labstack/echo/v4"
)

// PageHandler renders the public pages.
type PageHandler struct {
	controller controller.Page
}

// NewPageHandler creates a new page handler
func NewPageHandler(c controller.Page) *PageHandler {
	return &PageHandler{controller: c}
}

func (h *PageHandler) Home(c echo.Context) error {
	ctx, err := h.controller.Home(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "home.html", ctx)
}

func (h *PageHandler) Academic(c echo.Context) error {
	ctx, err := h.controller.Academic(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "academic.html", ctx)
}

func (h *PageHandler) Experience(c echo.Context) error {
	ctx, err := h.controller.Experience(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "experience.html", ctx)
}

func (h *PageHandler) Certifications(c echo.Context) error {
	ctx, err := h.controller.Certifications(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "certifications.html", ctx)
}

func (h *PageHandler) Projects(c echo.Context) error {
	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	ctx, err := h.controller.Projects(c.Request().Context(), page)
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "projects.html", ctx)
}

func (h *PageHandler) ProjectDetail(c echo.Context) error {
	id := ulid.ID(c.Param("id"))

	ctx, err := h.controller.ProjectDetail(c.Request().Context(), id)
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "project_detail.html", ctx)
}
