package api_test

import (
	"net/http"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/testutil"
	"portfolio-go-backend/testutil/e2e"
	"testing"

	"github.com/gavv/httpexpect/v2"
)

func TestContact_SubmitAPI(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
		TearDown: func(t *testing.T, client *ent.Client) {
			testutil.DropContact(t, client)
		},
	})
	defer teardown()

	tests := []struct {
		name     string
		arrange  func(t *testing.T)
		act      func(t *testing.T) *httpexpect.Response
		assert   func(t *testing.T, got *httpexpect.Response)
		teardown func(t *testing.T)
	}{
		{
			name:    "It should accept a valid submission",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/contact/").WithJSON(map[string]string{
					"name":    "Jean Dupont",
					"email":   "jean@example.com",
					"subject": "Bonjour",
					"message": "Je voudrais discuter d'un projet.",
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusCreated)
				body := got.JSON().Object()
				body.Value("success").Boolean().IsTrue()
				body.Value("message").String().NotEmpty()
			},
			teardown: func(t *testing.T) {
				testutil.DropContact(t, client)
			},
		},
		{
			name:    "It should reject a submission with a malformed email",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/contact/").WithJSON(map[string]string{
					"name":    "Jean Dupont",
					"email":   "not-an-address",
					"subject": "Bonjour",
					"message": "Un message.",
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusUnprocessableEntity)
				body := got.JSON().Object()
				body.Value("success").Boolean().IsFalse()
				body.Value("errors").Object().ContainsKey("email")
			},
			teardown: func(t *testing.T) {
				testutil.DropContact(t, client)
			},
		},
		{
			name:    "It should reject an empty submission",
			arrange: func(t *testing.T) {},
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/contact/").WithJSON(map[string]string{}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusUnprocessableEntity)
				body := got.JSON().Object()
				body.Value("success").Boolean().IsFalse()
				fields := body.Value("errors").Object()
				fields.ContainsKey("name")
				fields.ContainsKey("email")
				fields.ContainsKey("subject")
				fields.ContainsKey("message")
			},
			teardown: func(t *testing.T) {
				testutil.DropContact(t, client)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange(t)
			got := tt.act(t)
			tt.assert(t, got)
			tt.teardown(t)
		})
	}
}

func TestContact_AdminRequiresAuth(t *testing.T) {
	expect, _, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
	})
	defer teardown()

	expect.GET("/api/admin/contacts").
		Expect().
		Status(http.StatusUnauthorized)
}
