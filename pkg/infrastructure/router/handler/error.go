package handler

import (
	"errors"
	"net/http"

	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body returned for a failed request.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HandleError maps a usecase error to an HTTP response.
func HandleError(c echo.Context, err error) error {
	var appErr *model.Error
	if !errors.As(err, &appErr) {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}

	status := http.StatusInternalServerError
	switch appErr.Code {
	case model.CodeNotFound:
		status = http.StatusNotFound
	case model.CodeInvalidParam:
		status = http.StatusBadRequest
	case model.CodeValidation:
		status = http.StatusUnprocessableEntity
	case model.CodeAuth:
		status = http.StatusUnauthorized
	case model.CodeDB:
		status = http.StatusInternalServerError
	}

	return c.JSON(status, ErrorResponse{
		Error:  appErr.Error(),
		Fields: appErr.Fields,
	})
}
