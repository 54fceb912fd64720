package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the admin profile endpoints.
type ProfileHandler struct {
	controller controller.Profile
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(c controller.Profile) *ProfileHandler {
	return &ProfileHandler{controller: c}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	profile, err := h.controller.First(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Create(c echo.Context) error {
	var input model.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	profile, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, profile)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var input model.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	profile, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
