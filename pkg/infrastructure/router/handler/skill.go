package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// SkillHandler serves the admin skill endpoints.
type SkillHandler struct {
	controller controller.Skill
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(c controller.Skill) *SkillHandler {
	return &SkillHandler{controller: c}
}

func (h *SkillHandler) List(c echo.Context) error {
	skills, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Get(c echo.Context) error {
	skill, err := h.controller.Get(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Create(c echo.Context) error {
	var input model.CreateSkillInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	skill, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, skill)
}

func (h *SkillHandler) Update(c echo.Context) error {
	var input model.UpdateSkillInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	skill, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, skill)
}

func (h *SkillHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
