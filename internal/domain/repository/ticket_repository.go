package repository

import (
	"context"
	"time"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// TicketRepository porta di persistenza per i ticket di assistenza.
type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Ticket, error)
	ListAll(ctx context.Context) ([]entity.Ticket, error)
	AppendReply(ctx context.Context, ticketID string, reply entity.TicketReply) error
	SetStatus(ctx context.Context, id, status string, at time.Time) error
	CountOpen(ctx context.Context) (int, error)
}
