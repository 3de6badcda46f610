// Package auth gestisce autenticazione e anagrafica utenti: login con
// bcrypt, emissione JWT, creazione utenti e cambio password.
package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/pkg/jwt"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// JWTConfig parametri di emissione dei token.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casi d'uso di autenticazione e anagrafica.
type UseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewUseCase costruisce il caso d'uso.
func NewUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log}
}

// Login verifica le credenziali e ritorna token e profilo. Gli utenti
// bloccati non entrano.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.IsBlocked {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, string(user.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login riuscito")
	return &dto.LoginResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// CreateUser crea un utente con ruolo. Solo admin.
func (uc *UseCase) CreateUser(ctx context.Context, actor entity.User, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	role := entity.Role(in.Role)
	if !role.Valid() || in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if existing, err := uc.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		UniqueLink:   uuid.NewString(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if user.Name == "" {
		user.Name = email
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ChangePassword verifica la password corrente e la sostituisce.
func (uc *UseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	if len(in.NewPassword) < 8 {
		return domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}

// UpdateProfile aggiorna nome ed email del profilo.
func (uc *UseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Email != "" {
		user.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// SetBlocked blocca o sblocca un utente. Solo admin.
func (uc *UseCase) SetBlocked(ctx context.Context, actor entity.User, userID string, blocked bool) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	return uc.userRepo.SetBlocked(ctx, userID, blocked)
}

// ToUserResponse proietta l'entità nel contratto pubblico.
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		IsBlocked:  u.IsBlocked,
		UniqueLink: u.UniqueLink,
	}
}
