package handler

import (
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// CertificationHandler serves the admin certification endpoints.
type CertificationHandler struct {
	controller controller.Certification
}

// NewCertificationHandler creates a new certification handler
func NewCertificationHandler(c controller.Certification) *CertificationHandler {
	return &CertificationHandler{controller: c}
}

func (h *CertificationHandler) List(c echo.Context) error {
	certifications, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, certifications)
}

func (h *CertificationHandler) Get(c echo.Context) error {
	certification, err := h.controller.Get(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, certification)
}

func (h *CertificationHandler) Create(c echo.Context) error {
	var input model.CreateCertificationInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	certification, err := h.controller.Create(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusCreated, certification)
}

func (h *CertificationHandler) Update(c echo.Context) error {
	var input model.UpdateCertificationInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}
	input.ID = ulid.ID(c.Param("id"))

	certification, err := h.controller.Update(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, certification)
}

func (h *CertificationHandler) Delete(c echo.Context) error {
	if err := h.controller.Delete(c.Request().Context(), ulid.ID(c.Param("id"))); err != nil {
		return HandleError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
