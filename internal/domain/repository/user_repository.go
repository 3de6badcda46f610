package repository

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// UserRepository porta di persistenza per gli utenti.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
	ListByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	SetBlocked(ctx context.Context, id string, blocked bool) error
}
