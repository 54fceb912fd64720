package e2e

import (
	"net/http/httptest"
	"testing"

	"portfolio-go-backend/config"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/infrastructure/router"
	"portfolio-go-backend/pkg/registry"
	"portfolio-go-backend/testutil"

	"github.com/gavv/httpexpect/v2"
)

// NopNotifier drops operator notifications; e2e runs have no SMTP server.
type NopNotifier struct{}

func (NopNotifier) SendContactNotification(name, email, subject, message string) error {
	return nil
}

// SetupOption of Setup
type SetupOption struct {
	// TemplatesGlob overrides the template location. Defaults to the
	// repository templates relative to test/e2e.
	TemplatesGlob string
	TearDown      func(t *testing.T, client *ent.Client)
}

// Setup boots the app against the e2e database and returns an httpexpect
// instance pointed at it.
func Setup(t *testing.T, option SetupOption) (*httpexpect.Expect, *ent.Client, func()) {
	testutil.ReadConfigE2E()

	client := testutil.NewDBClient(t)

	r := registry.New(client, NopNotifier{}, config.C.Site.BaseURL)

	glob := option.TemplatesGlob
	if glob == "" {
		glob = "../../web/templates/*.html"
	}
	e, err := router.New(r.NewController(), router.Options{TemplatesGlob: glob})
	if err != nil {
		t.Fatalf("failed to create router: %v", err)
	}

	server := httptest.NewServer(e)
	expect := httpexpect.Default(t, server.URL)

	teardown := func() {
		if option.TearDown != nil {
			option.TearDown(t, client)
		}
		server.Close()
		if err := client.Close(); err != nil {
			t.Error(err)
		}
	}

	return expect, client, teardown
}
