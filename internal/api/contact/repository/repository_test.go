package contactRepository

import (
	"context"
	"io"
	"testing"
	"time"

	"PortfolioGolang/database/sqlite"
	contacts "PortfolioGolang/internal/api/contact"
	"PortfolioGolang/internal/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContacts(t *testing.T) {
	db, err := sqlite.NewInMemory()
	require.NoError(t, err)
	defer db.Close()

	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := New(db, log)
	ctx := context.Background()

	client, err := repo.NewClient(true)
	require.NoError(t, err)

	first, err := client.Contacts.CreateContact(ctx, entity.Contact{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "one",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	second, err := client.Contacts.CreateContact(ctx, entity.Contact{
		Name: "Bob", Email: "bob@example.com", Subject: "Yo", Message: "two",
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NoError(t, client.Commit())
	assert.NotEqual(t, first, second)

	client, err = repo.NewClient(false)
	require.NoError(t, err)

	all, err := client.Contacts.GetAllContacts(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Bob", all[0].Name)
	assert.False(t, all[0].IsRead)

	require.NoError(t, client.Contacts.MarkContactRead(ctx, second))

	unread, err := client.Contacts.GetAllContacts(ctx, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, first, unread[0].ID)

	got, err := client.Contacts.GetContactByID(ctx, second)
	require.NoError(t, err)
	assert.True(t, got.IsRead)

	_, err = client.Contacts.GetContactByID(ctx, 999)
	assert.ErrorIs(t, err, contacts.ErrContactNotFound)
	assert.ErrorIs(t, client.Contacts.MarkContactRead(ctx, 999), contacts.ErrContactNotFound)
}
