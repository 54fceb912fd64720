package api_test

import (
	"context"
	"fmt"
	"net/http"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/util/auth"
	"portfolio-go-backend/testutil"
	"portfolio-go-backend/testutil/e2e"
	"testing"

	"github.com/gavv/httpexpect/v2"
)

const (
	adminEmail    = "admin@example.com"
	adminPassword = "admin12345"
)

func seedAdmin(t *testing.T, client *ent.Client) {
	hashed, err := auth.HashPassword(adminPassword)
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
	_, err = client.User.Create().
		SetName("Admin").
		SetEmail(adminEmail).
		SetPassword(hashed).
		Save(context.Background())
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
}

func TestAuth_Login(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
		TearDown: func(t *testing.T, client *ent.Client) {
			testutil.DropUser(t, client)
		},
	})
	defer teardown()

	seedAdmin(t, client)

	tests := []struct {
		name   string
		act    func(t *testing.T) *httpexpect.Response
		assert func(t *testing.T, got *httpexpect.Response)
	}{
		{
			name: "It should return tokens for valid credentials",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/admin/login").WithJSON(map[string]string{
					"email":    adminEmail,
					"password": adminPassword,
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusOK)
				body := got.JSON().Object()
				body.Value("accessToken").String().NotEmpty()
				body.Value("refreshToken").String().NotEmpty()
			},
		},
		{
			name: "It should reject a wrong password",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/admin/login").WithJSON(map[string]string{
					"email":    adminEmail,
					"password": "wrongpassword",
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusUnauthorized)
			},
		},
		{
			name: "It should reject an unknown email",
			act: func(t *testing.T) *httpexpect.Response {
				return expect.POST("/api/admin/login").WithJSON(map[string]string{
					"email":    "nobody@example.com",
					"password": adminPassword,
				}).Expect()
			},
			assert: func(t *testing.T, got *httpexpect.Response) {
				got.Status(http.StatusUnauthorized)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.act(t)
			tt.assert(t, got)
		})
	}
}

func TestAuth_AdminAccess(t *testing.T) {
	expect, client, teardown := e2e.Setup(t, e2e.SetupOption{
		TemplatesGlob: "../../../web/templates/*.html",
		TearDown: func(t *testing.T, client *ent.Client) {
			testutil.DropUser(t, client)
		},
	})
	defer teardown()

	seedAdmin(t, client)

	loginBody := expect.POST("/api/admin/login").WithJSON(map[string]string{
		"email":    adminEmail,
		"password": adminPassword,
	}).Expect().Status(http.StatusOK).JSON().Object()
	accessToken := loginBody.Value("accessToken").String().Raw()

	t.Run("It should allow an authenticated request", func(t *testing.T) {
		expect.GET("/api/admin/contacts").
			WithHeader("Authorization", fmt.Sprintf("Bearer %s", accessToken)).
			Expect().
			Status(http.StatusOK)
	})

	t.Run("It should reject a garbage token", func(t *testing.T) {
		expect.GET("/api/admin/contacts").
			WithHeader("Authorization", "Bearer not-a-token").
			Expect().
			Status(http.StatusUnauthorized)
	})
}
