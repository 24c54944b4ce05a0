package services

import (
	"context"
	"testing"

	"sharebrasil-ops/internal/adapters/persistence/models"
	"sharebrasil-ops/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationServiceListForRecipient(t *testing.T) {
	ctx := context.Background()
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	requester := uint(7)
	other := uint(8)
	seed := []*models.Notification{
		{Type: domain.NotifyNewRequest, RecipientRole: domain.RoleCoordinator},
		{Type: domain.NotifyFlightScheduled, RecipientRole: domain.RoleRequester, RecipientID: &requester},
		{Type: domain.NotifyFlightCancelled, RecipientRole: domain.RoleRequester, RecipientID: &other},
	}
	for _, n := range seed {
		require.NoError(t, repo.Create(ctx, n))
	}

	t.Run("requester sees only their own", func(t *testing.T) {
		listed, err := svc.ListForRecipient(ctx, requester, domain.RoleRequester)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, domain.NotifyFlightScheduled, listed[0].Type)
	})

	t.Run("any coordinator sees role-wide notifications", func(t *testing.T) {
		listed, err := svc.ListForRecipient(ctx, 42, domain.RoleCoordinator)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, domain.NotifyNewRequest, listed[0].Type)
	})

	t.Run("requires an authenticated actor", func(t *testing.T) {
		_, err := svc.ListForRecipient(ctx, 0, domain.RoleRequester)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestNotificationServiceMarkRead(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, repo *fakeNotificationRepo, recipientID *uint) *models.Notification {
		t.Helper()
		n := &models.Notification{
			Type:          domain.NotifyFlightScheduled,
			RecipientRole: domain.RoleRequester,
			RecipientID:   recipientID,
		}
		require.NoError(t, repo.Create(ctx, n))
		return n
	}

	t.Run("recipient can mark their notification", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := NewNotificationService(repo)
		requester := uint(7)
		n := seed(t, repo, &requester)

		require.NoError(t, svc.MarkRead(ctx, requester, n.ID))

		stored, err := repo.GetByID(ctx, n.ID)
		require.NoError(t, err)
		assert.True(t, stored.Read)
	})

	t.Run("another user's notification is rejected", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := NewNotificationService(repo)
		requester := uint(7)
		n := seed(t, repo, &requester)

		err := svc.MarkRead(ctx, 99, n.ID)
		assert.ErrorIs(t, err, ErrNotRecipient)

		stored, err := repo.GetByID(ctx, n.ID)
		require.NoError(t, err)
		assert.False(t, stored.Read)
	})

	t.Run("role-wide notification is markable by anyone in the role", func(t *testing.T) {
		repo := newFakeNotificationRepo()
		svc := NewNotificationService(repo)
		n := seed(t, repo, nil)

		require.NoError(t, svc.MarkRead(ctx, 42, n.ID))
	})

	t.Run("unknown notification yields not found", func(t *testing.T) {
		svc := NewNotificationService(newFakeNotificationRepo())

		err := svc.MarkRead(ctx, 7, 123)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})
}
