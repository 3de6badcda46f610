package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// Transizioni di stato ammesse per i ticket: avanti nel flusso di
// lavorazione, mai indietro oltre la riapertura.
var ticketTransitions = map[string]map[string]bool{
	entity.TicketAperto:        {entity.TicketInLavorazione: true, entity.TicketChiuso: true},
	entity.TicketInLavorazione: {entity.TicketChiuso: true, entity.TicketAperto: true},
	entity.TicketChiuso:        {entity.TicketAperto: true},
}

// TicketUseCase thread di assistenza: apertura, risposte in append e
// avanzamento di stato.
type TicketUseCase struct {
	repo repository.TicketRepository
	log  *logger.Logger
}

func NewTicketUseCase(repo repository.TicketRepository, log *logger.Logger) *TicketUseCase {
	return &TicketUseCase{repo: repo, log: log}
}

// Open apre un nuovo ticket per conto dell'utente.
func (uc *TicketUseCase) Open(ctx context.Context, actor entity.User, subject, message string) (*entity.Ticket, error) {
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	t := &entity.Ticket{
		ID:       uuid.NewString(),
		UserID:   actor.ID,
		UserName: actor.Name,
		Role:     actor.Role,
		Subject:  subject,
		Status:   entity.TicketAperto,
		Replies: []entity.TicketReply{{
			ID:        uuid.NewString(),
			UserID:    actor.ID,
			UserName:  actor.Name,
			Role:      actor.Role,
			Message:   message,
			CreatedAt: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	uc.log.Info().Str("ticket_id", t.ID).Str("user_id", actor.ID).Msg("ticket aperto")
	return t, nil
}

// Reply accoda una risposta al thread. Il proprietario e lo staff
// direttivo possono rispondere; una risposta su un ticket chiuso lo
// riapre.
func (uc *TicketUseCase) Reply(ctx context.Context, actor entity.User, ticketID, message string) error {
	if strings.TrimSpace(message) == "" {
		return domain.ErrInvalidInput
	}
	t, err := uc.repo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if !canTouchTicket(actor, t) {
		return domain.ErrForbidden
	}

	reply := entity.TicketReply{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Role:      actor.Role,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.AppendReply(ctx, ticketID, reply); err != nil {
		return err
	}
	if t.Status == entity.TicketChiuso {
		return uc.repo.SetStatus(ctx, ticketID, entity.TicketAperto, time.Now())
	}
	return nil
}

// SetStatus avanza lo stato del ticket. Solo lo staff direttivo.
func (uc *TicketUseCase) SetStatus(ctx context.Context, actor entity.User, ticketID, status string) error {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return domain.ErrForbidden
	}
	t, err := uc.repo.GetByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if t == nil {
		return domain.ErrNotFound
	}
	if !ticketTransitions[t.Status][status] {
		return domain.ErrInvalidInput
	}
	return uc.repo.SetStatus(ctx, ticketID, status, time.Now())
}

// ListFor ritorna i ticket visibili all'attore: i propri per i ruoli
// operativi, tutti per lo staff direttivo.
func (uc *TicketUseCase) ListFor(ctx context.Context, actor entity.User) ([]entity.Ticket, error) {
	if actor.Role == entity.RoleAdmin || actor.Role == entity.RoleManager {
		return uc.repo.ListAll(ctx)
	}
	return uc.repo.ListByUser(ctx, actor.ID)
}

// CountOpen numero di ticket aperti, per il badge dello staff.
func (uc *TicketUseCase) CountOpen(ctx context.Context) (int, error) {
	return uc.repo.CountOpen(ctx)
}

func canTouchTicket(actor entity.User, t *entity.Ticket) bool {
	if actor.Role == entity.RoleAdmin || actor.Role == entity.RoleManager {
		return true
	}
	return t.UserID == actor.ID
}
