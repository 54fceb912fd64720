package contactrepository_test

import (
	"context"
	"portfolio-go-backend/ent"
	"portfolio-go-backend/pkg/adapter/repository/contactrepository"
	"portfolio-go-backend/pkg/entity/model"
	"portfolio-go-backend/testutil"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setup(t *testing.T) (client *ent.Client, teardown func()) {
	testutil.ReadConfig()
	c := testutil.NewSqlLiteDBClient(t)

	return c, func() {
		testutil.DropContact(t, c)
		defer c.Close()
	}
}

func TestContactRepository_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := contactrepository.NewContactRepository(client)

	type args struct {
		ctx context.Context
	}

	tests := []struct {
		name     string
		arrange  func(t *testing.T)
		act      func(ctx context.Context, t *testing.T) (c *model.Contact, err error)
		assert   func(t *testing.T, c *model.Contact, err error)
		args     args
		teardown func(t *testing.T)
	}{
		{
			name: "It should create contact message as unread",
			arrange: func(t *testing.T) {
				ctx := context.Background()
				_, err := client.Contact.Delete().Exec(ctx)
				if err != nil {
					t.Error(err)
					t.FailNow()
				}
			},
			act: func(ctx context.Context, t *testing.T) (c *model.Contact, err error) {
				input := model.CreateContactInput{
					Name:    "Jean Dupont",
					Email:   "jean@example.com",
					Subject: "Bonjour",
					Message: "Je voudrais discuter d'un projet.",
				}
				return repo.Create(ctx, input)
			},
			assert: func(t *testing.T, c *model.Contact, err error) {
				assert.Nil(t, err)
				assert.NotNil(t, c)
				assert.Equal(t, "Jean Dupont", c.Name)
				assert.Equal(t, "jean@example.com", c.Email)
				assert.False(t, c.IsRead)
				assert.False(t, c.IsReplied)
			},
			args: args{
				ctx: context.Background(),
			},
			teardown: func(t *testing.T) {
				testutil.DropContact(t, client)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.arrange(t)
			got, err := tt.act(tt.args.ctx, t)
			tt.assert(t, got, err)
			tt.teardown(t)
		})
	}
}

func TestContactRepository_MarkRead(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := contactrepository.NewContactRepository(client)
	ctx := context.Background()

	created, err := repo.Create(ctx, model.CreateContactInput{
		Name:    "Jean Dupont",
		Email:   "jean@example.com",
		Subject: "Bonjour",
		Message: "Un message.",
	})
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	t.Run("It should mark a message as read", func(t *testing.T) {
		got, err := repo.MarkRead(ctx, created.ID)

		assert.Nil(t, err)
		assert.True(t, got.IsRead)
		assert.False(t, got.IsReplied)
	})

	t.Run("It should mark a message as replied", func(t *testing.T) {
		got, err := repo.MarkReplied(ctx, created.ID)

		assert.Nil(t, err)
		assert.True(t, got.IsReplied)
	})

	t.Run("It should return not found for an unknown id", func(t *testing.T) {
		got, err := repo.MarkRead(ctx, "01HXYZUNKNOWN0000000000000")

		assert.Nil(t, got)
		assert.NotNil(t, err)
		assert.True(t, model.IsNotFound(err))
	})
}

func TestContactRepository_ListUnread(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping  unit test")
	}
	t.Helper()

	client, teardown := setup(t)
	defer teardown()

	repo := contactrepository.NewContactRepository(client)
	ctx := context.Background()

	first, err := repo.Create(ctx, model.CreateContactInput{
		Name:    "A",
		Email:   "a@example.com",
		Subject: "S",
		Message: "M",
	})
	if err != nil {
		t.Error(err)
		t.FailNow()
	}
	if _, err := repo.Create(ctx, model.CreateContactInput{
		Name:    "B",
		Email:   "b@example.com",
		Subject: "S",
		Message: "M",
	}); err != nil {
		t.Error(err)
		t.FailNow()
	}
	if _, err := repo.MarkRead(ctx, first.ID); err != nil {
		t.Error(err)
		t.FailNow()
	}

	unread, err := repo.ListUnread(ctx)

	assert.Nil(t, err)
	assert.Len(t, unread, 1)
	assert.Equal(t, "B", unread[0].Name)

	all, err := repo.List(ctx)

	assert.Nil(t, err)
	assert.Len(t, all, 2)
}
