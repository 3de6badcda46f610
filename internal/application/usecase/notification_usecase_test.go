package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/pkg/logger"
)

type memNotificationRepo struct {
	items []entity.Notification
}

func (m *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	m.items = append(m.items, *n)
	return nil
}

func (m *memNotificationRepo) ListForRole(_ context.Context, role entity.Role, limit int) ([]entity.Notification, error) {
	var out []entity.Notification
	for _, n := range m.items {
		if n.Targets(role) {
			out = append(out, n)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memNotificationRepo) MarkRead(_ context.Context, id, userID string) error {
	for i := range m.items {
		if m.items[i].ID != id || m.items[i].IsReadBy(userID) {
			continue
		}
		m.items[i].ReadBy = append(m.items[i].ReadBy, userID)
	}
	return nil
}

func (m *memNotificationRepo) Delete(_ context.Context, id string) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func newNotificationUC() (*NotificationUseCase, *memNotificationRepo) {
	repo := &memNotificationRepo{}
	return NewNotificationUseCase(repo, logger.New(logger.Config{Env: "production", Level: "error"})), repo
}

func TestNotificationCreatePermessiEValidazione(t *testing.T) {
	uc, _ := newNotificationUC()

	_, err := uc.Create(context.Background(), affiliateUser, "Titolo", "msg", "", []entity.Role{entity.RoleAffiliate})
	assert.ErrorIs(t, err, domain.ErrForbidden, "solo lo staff direttivo pubblica avvisi")

	_, err = uc.Create(context.Background(), adminUser, "  ", "msg", "", []entity.Role{entity.RoleAffiliate})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "il titolo è obbligatorio")

	_, err = uc.Create(context.Background(), adminUser, "Titolo", "msg", "", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "serve almeno un ruolo destinatario")

	_, err = uc.Create(context.Background(), adminUser, "Titolo", "msg", "", []entity.Role{"pirata"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "i ruoli devono appartenere all'enumerazione")

	n, err := uc.Create(context.Background(), adminUser, "Promo aprile", "dettagli", "/promo", []entity.Role{entity.RoleAffiliate, entity.RoleManager})
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
}

// La visibilità segue il ruolo e la presa visione è per utente.
func TestNotificationLetturaPerUtente(t *testing.T) {
	uc, _ := newNotificationUC()

	_, err := uc.Create(context.Background(), adminUser, "Per affiliati", "msg", "", []entity.Role{entity.RoleAffiliate})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), adminUser, "Per logistica", "msg", "", []entity.Role{entity.RoleLogistics})
	require.NoError(t, err)

	list, err := uc.ListForUser(context.Background(), affiliateUser, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Per affiliati", list[0].Title)

	unread, err := uc.CountUnread(context.Background(), affiliateUser)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	require.NoError(t, uc.MarkRead(context.Background(), affiliateUser, list[0].ID))
	// Idempotente: una seconda presa visione non cambia nulla.
	require.NoError(t, uc.MarkRead(context.Background(), affiliateUser, list[0].ID))

	unread, err = uc.CountUnread(context.Background(), affiliateUser)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	// Un altro utente dello stesso ruolo la vede ancora come non letta.
	altro := entity.User{ID: "a2", Name: "Mara", Role: entity.RoleAffiliate}
	unread, err = uc.CountUnread(context.Background(), altro)
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}

func TestNotificationMarkAllReadEDelete(t *testing.T) {
	uc, repo := newNotificationUC()

	for i := 0; i < 3; i++ {
		_, err := uc.Create(context.Background(), adminUser, "Avviso", "msg", "", []entity.Role{entity.RoleAffiliate})
		require.NoError(t, err)
	}
	require.NoError(t, uc.MarkAllRead(context.Background(), affiliateUser))

	unread, err := uc.CountUnread(context.Background(), affiliateUser)
	require.NoError(t, err)
	assert.Equal(t, 0, unread)

	assert.ErrorIs(t, uc.Delete(context.Background(), careUser, repo.items[0].ID), domain.ErrForbidden)
	require.NoError(t, uc.Delete(context.Background(), adminUser, repo.items[0].ID))
	assert.Len(t, repo.items, 2)
}
