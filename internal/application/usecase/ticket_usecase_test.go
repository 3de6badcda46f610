package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/pkg/logger"
)

type memTicketRepo struct {
	byID map[string]*entity.Ticket
}

func newMemTicketRepo() *memTicketRepo { return &memTicketRepo{byID: map[string]*entity.Ticket{}} }

func (r *memTicketRepo) Create(ctx context.Context, t *entity.Ticket) error {
	r.byID[t.ID] = t
	return nil
}

func (r *memTicketRepo) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	return r.byID[id], nil
}

func (r *memTicketRepo) ListByUser(ctx context.Context, userID string) ([]entity.Ticket, error) {
	var out []entity.Ticket
	for _, t := range r.byID {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTicketRepo) ListAll(ctx context.Context) ([]entity.Ticket, error) {
	var out []entity.Ticket
	for _, t := range r.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (r *memTicketRepo) AppendReply(ctx context.Context, ticketID string, reply entity.TicketReply) error {
	r.byID[ticketID].Replies = append(r.byID[ticketID].Replies, reply)
	return nil
}

func (r *memTicketRepo) SetStatus(ctx context.Context, id, status string, at time.Time) error {
	r.byID[id].Status = status
	return nil
}

func (r *memTicketRepo) CountOpen(ctx context.Context) (int, error) {
	n := 0
	for _, t := range r.byID {
		if t.Status == entity.TicketAperto {
			n++
		}
	}
	return n, nil
}

func newTicketUC() (*TicketUseCase, *memTicketRepo) {
	repo := newMemTicketRepo()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return NewTicketUseCase(repo, log), repo
}

func TestTicketFlusso(t *testing.T) {
	uc, repo := newTicketUC()
	ctx := context.Background()

	tk, err := uc.Open(ctx, affiliateUser, "Pagamento mancante", "Non vedo il payout di marzo")
	require.NoError(t, err)
	require.Len(t, tk.Replies, 1)
	assert.Equal(t, entity.TicketAperto, tk.Status)

	require.NoError(t, uc.SetStatus(ctx, adminUser, tk.ID, entity.TicketInLavorazione))
	require.NoError(t, uc.Reply(ctx, adminUser, tk.ID, "Lo stiamo verificando"))
	require.NoError(t, uc.SetStatus(ctx, adminUser, tk.ID, entity.TicketChiuso))

	// Una risposta del proprietario riapre il ticket chiuso.
	require.NoError(t, uc.Reply(ctx, affiliateUser, tk.ID, "Ancora niente"))
	assert.Equal(t, entity.TicketAperto, repo.byID[tk.ID].Status)
	assert.Len(t, repo.byID[tk.ID].Replies, 3)
}

func TestTicketPermessi(t *testing.T) {
	uc, _ := newTicketUC()
	ctx := context.Background()

	tk, err := uc.Open(ctx, affiliateUser, "Domanda", "Testo")
	require.NoError(t, err)

	altro := entity.User{ID: "a2", Name: "Sara", Role: entity.RoleAffiliate}
	err = uc.Reply(ctx, altro, tk.ID, "Mi intrometto")
	require.ErrorIs(t, err, domain.ErrForbidden)

	err = uc.SetStatus(ctx, affiliateUser, tk.ID, entity.TicketChiuso)
	require.ErrorIs(t, err, domain.ErrForbidden)

	// Transizione non ammessa: da Aperto non si torna ad Aperto.
	err = uc.SetStatus(ctx, adminUser, tk.ID, entity.TicketAperto)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
