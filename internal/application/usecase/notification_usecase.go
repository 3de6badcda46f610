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

// NotificationUseCase avvisi in-app indirizzati per ruolo, con presa
// visione per utente.
type NotificationUseCase struct {
	repo repository.NotificationRepository
	log  *logger.Logger
}

func NewNotificationUseCase(repo repository.NotificationRepository, log *logger.Logger) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, log: log}
}

// Create pubblica un avviso verso i ruoli indicati. Solo lo staff
// direttivo può pubblicare.
func (uc *NotificationUseCase) Create(ctx context.Context, actor entity.User, title, message, link string, targetRoles []entity.Role) (*entity.Notification, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(title) == "" || len(targetRoles) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, r := range targetRoles {
		if !r.Valid() {
			return nil, domain.ErrInvalidInput
		}
	}

	n := &entity.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		Message:     message,
		Link:        link,
		TargetRoles: targetRoles,
		ReadBy:      []string{},
		CreatedAt:   time.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	uc.log.Info().Str("notification_id", n.ID).Msg("avviso pubblicato")
	return n, nil
}

// ListForUser ritorna gli avvisi destinati al ruolo dell'utente.
func (uc *NotificationUseCase) ListForUser(ctx context.Context, user entity.User, limit int) ([]entity.Notification, error) {
	return uc.repo.ListForRole(ctx, user.Role, limit)
}

// CountUnread conta gli avvisi del ruolo non ancora letti dall'utente.
func (uc *NotificationUseCase) CountUnread(ctx context.Context, user entity.User) (int, error) {
	list, err := uc.repo.ListForRole(ctx, user.Role, 0)
	if err != nil {
		return 0, err
	}
	n := 0
	for i := range list {
		if !list[i].IsReadBy(user.ID) {
			n++
		}
	}
	return n, nil
}

// MarkRead registra la presa visione dell'utente. Idempotente.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, user entity.User, notificationID string) error {
	return uc.repo.MarkRead(ctx, notificationID, user.ID)
}

// MarkAllRead registra la presa visione su tutti gli avvisi del ruolo.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, user entity.User) error {
	list, err := uc.repo.ListForRole(ctx, user.Role, 0)
	if err != nil {
		return err
	}
	for i := range list {
		if list[i].IsReadBy(user.ID) {
			continue
		}
		if err := uc.repo.MarkRead(ctx, list[i].ID, user.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete elimina un avviso. Solo admin.
func (uc *NotificationUseCase) Delete(ctx context.Context, actor entity.User, notificationID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.repo.Delete(ctx, notificationID)
}
