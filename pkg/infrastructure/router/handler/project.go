package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ProjectHandler serves the admin project endpoints.
type ProjectHandler struct {
	controller controller.Project
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(c controller.Project) *ProjectHandler {
	return &ProjectHandler{controller: c}
}

func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.controller.ListAll(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.controller.Get(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Create(c echo.Context) error {
	var input model.CreateProjectInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	project, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, project)
}

func (h *ProjectHandler) Update(c echo.Context) error {
	var input model.UpdateProjectInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	project, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
