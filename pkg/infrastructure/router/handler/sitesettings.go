package handler

import (
	"net/http"

	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// SiteSettingsHandler serves the admin site settings endpoints.
type SiteSettingsHandler struct {
	controller controller.SiteSettings
}

// NewSiteSettingsHandler creates a new site settings handler
func NewSiteSettingsHandler(c controller.SiteSettings) *SiteSettingsHandler {
	return &SiteSettingsHandler{controller: c}
}

func (h *SiteSettingsHandler) Get(c echo.Context) error {
	settings, err := h.controller.First(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SiteSettingsHandler) Create(c echo.Context) error {
	var input model.CreateSiteSettingsInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	settings, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, settings)
}

func (h *SiteSettingsHandler) Update(c echo.Context) error {
	var input model.UpdateSiteSettingsInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	settings, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, settings)
}
