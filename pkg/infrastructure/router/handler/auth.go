package handler

import (
	"net/http"

	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the admin login and token refresh endpoints.
type AuthHandler struct {
	controller controller.Auth
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(c controller.Auth) *AuthHandler {
	return &AuthHandler{controller: c}
}

func (h *AuthHandler) Login(c echo.Context) error {
	var input model.LoginInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	payload, err := h.controller.Login(c.Request().Context(), input)
	if err != nil {
		return HandleError(c, model.NewAuthError(err))
	}
	return c.JSON(http.StatusOK, payload)
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	payload, err := h.controller.RefreshToken(c.Request().Context())
	if err != nil {
		return HandleError(c, model.NewAuthError(err))
	}
	return c.JSON(http.StatusOK, payload)
}
