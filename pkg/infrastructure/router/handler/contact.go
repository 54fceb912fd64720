package handler

import (
	"errors"
	"net/http"

	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/pkg/adapter/controller"
	"portfolio-go-backend/pkg/entity/model"

	"github.com/labstack/echo/v4"
)

// ContactHandler serves the contact form, its submission, and the JSON API.
type ContactHandler struct {
	controller     controller.Contact
	pageController controller.Page
}

// NewContactHandler creates a new contact handler
func NewContactHandler(c controller.Contact, pc controller.Page) *ContactHandler {
	return &ContactHandler{controller: c, pageController: pc}
}

// ContactAPIResponse is the body returned by the JSON endpoint.
type ContactAPIResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (h *ContactHandler) ShowForm(c echo.Context) error {
	ctx, err := h.pageController.Contact(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.Render(http.StatusOK, "contact.html", ctx)
}

// SubmitForm handles the browser form. Validation failures re-render the
// form with field errors; a failed notification still succeeds with a
// warning on the success page.
func (h *ContactHandler) SubmitForm(c echo.Context) error {
	var input model.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return HandleError(c, model.NewInvalidParamError(err))
	}

	result, err := h.controller.Submit(c.Request().Context(), input)
	if err != nil {
		var appErr *model.Error
		if errors.As(err, &appErr) && appErr.Code == model.CodeValidation {
			ctx, pageErr := h.pageController.Contact(c.Request().Context())
			if pageErr != nil {
				return HandleError(c, pageErr)
			}
			ctx.Form = input
			ctx.Errors = appErr.Fields
			return c.Render(http.StatusUnprocessableEntity, "contact.html", ctx)
		}
		return HandleError(c, err)
	}

	target := "/contact/success/"
	if !result.EmailSent {
		target += "?notified=0"
	}
	return c.Redirect(http.StatusSeeOther, target)
}

func (h *ContactHandler) ShowSuccess(c echo.Context) error {
	ctx, err := h.pageController.Contact(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	if c.QueryParam("notified") == "0" {
		ctx.Warning = "Votre message a été enregistré mais la notification n'a pas pu être envoyée."
	}
	return c.Render(http.StatusOK, "contact_success.html", ctx)
}

// List returns every message for the admin inbox.
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.controller.List(c.Request().Context())
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) MarkRead(c echo.Context) error {
	contact, err := h.controller.MarkRead(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, contact)
}

func (h *ContactHandler) MarkReplied(c echo.Context) error {
	contact, err := h.controller.MarkReplied(c.Request().Context(), ulid.ID(c.Param("id")))
	if err != nil {
		return HandleError(c, err)
	}
	return c.JSON(http.StatusOK, contact)
}

// SubmitAPI handles the JSON endpoint used by client-side forms.
func (h *ContactHandler) SubmitAPI(c echo.Context) error {
	var input model.CreateContactInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, ContactAPIResponse{
			Success: false,
			Message: "Requête invalide.",
		})
	}

	result, err := h.controller.Submit(c.Request().Context(), input)
	if err != nil {
		var appErr *model.Error
		if errors.As(err, &appErr) && appErr.Code == model.CodeValidation {
			return c.JSON(http.StatusUnprocessableEntity, ContactAPIResponse{
				Success: false,
				Errors:  appErr.Fields,
			})
		}
		return HandleError(c, err)
	}

	message := "Votre message a bien été envoyé."
	if !result.EmailSent {
		message = "Votre message a été enregistré mais la notification n'a pas pu être envoyée."
	}
	return c.JSON(http.StatusCreated, ContactAPIResponse{
		Success: true,
		Message: message,
	})
}
