package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ExperienceHandler serves the admin experience endpoints.
type ExperienceHandler struct {
	controller controller.Experience
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(c controller.Experience) *ExperienceHandler {
	return &ExperienceHandler{controller: c}
}

func (h *ExperienceHandler) List(c echo.Context) error {
	experiences, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, experiences)
}

func (h *ExperienceHandler) Get(c echo.Context) error {
	experience, err := h.controller.Get(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Create(c echo.Context) error {
	var input model.CreateExperienceInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	experience, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, experience)
}

func (h *ExperienceHandler) Update(c echo.Context) error {
	var input model.UpdateExperienceInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	experience, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, experience)
}

func (h *ExperienceHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
