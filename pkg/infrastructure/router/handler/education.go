package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// EducationHandler serves the admin education endpoints.
type EducationHandler struct {
	controller controller.Education
}

// NewEducationHandler creates a new education handler
func NewEducationHandler(c controller.Education) *EducationHandler {
	return &EducationHandler{controller: c}
}

func (h *EducationHandler) List(c echo.Context) error {
	educations, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, educations)
}

func (h *EducationHandler) Get(c echo.Context) error {
	education, err := h.controller.Get(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, education)
}

func (h *EducationHandler) Create(c echo.Context) error {
	var input model.CreateEducationInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	education, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, education)
}

func (h *EducationHandler) Update(c echo.Context) error {
	var input model.UpdateEducationInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	education, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, education)
}

func (h *EducationHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
