package ledger

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/internal/domain/sales"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// Service operazioni di movimento del registro. Ogni operazione ricarica
// lo snapshot, valida sul saldo ricalcolato e scrive un singolo record;
// il chiamante rilegge poi lo stato fresco. La gara tra due operatori che
// approvano lo stesso payout è demandata alla persistenza (update
// condizionato sullo stato Pending).
type Service struct {
	snapshots repository.SnapshotLoader
	txRepo    repository.TransactionRepository
	saleRepo  repository.SaleRepository
	log       *logger.Logger
}

// NewService costruisce il servizio.
func NewService(
	snapshots repository.SnapshotLoader,
	txRepo repository.TransactionRepository,
	saleRepo repository.SaleRepository,
	log *logger.Logger,
) *Service {
	return &Service{
		snapshots: snapshots,
		txRepo:    txRepo,
		saleRepo:  saleRepo,
		log:       log,
	}
}

// RequestPayout crea una richiesta di prelievo in stato Pending. Rifiuta
// se l'importo supera il saldo al netto dei payout già in sospeso.
func (s *Service) RequestPayout(ctx context.Context, userID string, amount decimal.Decimal, method, details string) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	user := snap.UserByID(userID)
	if user == nil || !user.Role.HasBalance() {
		return nil, domain.ErrUserNotFound
	}
	if amount.GreaterThan(AvailableForPayout(snap, *user)) {
		return nil, domain.ErrInsufficientBalance
	}

	tx := &entity.Transaction{
		ID:             uuid.NewString(),
		Type:           entity.TransactionPayout,
		Status:         entity.TransactionPending,
		UserID:         userID,
		Amount:         amount,
		PaymentMethod:  method,
		PaymentDetails: details,
		CreatedAt:      time.Now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", userID).Str("amount", amount.StringFixed(2)).Msg("richiesta di payout creata")
	return tx, nil
}

// Transfer sposta saldo dal mittente al destinatario con una transazione
// già Completed. La sufficienza si verifica sempre sul mittente nominato;
// l'admin ha saldo illimitato e non viene mai verificato.
func (s *Service) Transfer(ctx context.Context, actorID, fromUserID, toUserID string, amount decimal.Decimal, notes string) (*entity.Transaction, error) {
	if !amount.IsPositive() || fromUserID == toUserID {
		return nil, domain.ErrInvalidInput
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	from := snap.UserByID(fromUserID)
	to := snap.UserByID(toUserID)
	if from == nil || to == nil {
		return nil, domain.ErrUserNotFound
	}
	if from.Role != entity.RoleAdmin {
		if amount.GreaterThan(ComputeBalance(snap, *from).Current) {
			return nil, domain.ErrInsufficientBalance
		}
	}

	tx := &entity.Transaction{
		ID:           uuid.NewString(),
		Type:         entity.TransactionTransfer,
		Status:       entity.TransactionCompleted,
		UserID:       actorID,
		FromUserID:   from.ID,
		FromUserName: from.Name,
		ToUserID:     to.ID,
		ToUserName:   to.Name,
		Amount:       amount,
		Notes:        notes,
		CreatedAt:    time.Now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("from_user_id", fromUserID).
		Str("to_user_id", toUserID).
		Str("amount", amount.StringFixed(2)).
		Msg("trasferimento saldo completato")
	return tx, nil
}

// Adjust accredita una somma a un utente con una transazione Adjustment
// già Completed. Le rettifiche sono crediti di sistema, sempre positive.
func (s *Service) Adjust(ctx context.Context, actorID, toUserID string, amount decimal.Decimal, notes string) (*entity.Transaction, error) {
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	to := snap.UserByID(toUserID)
	if to == nil {
		return nil, domain.ErrUserNotFound
	}

	tx := &entity.Transaction{
		ID:         uuid.NewString(),
		Type:       entity.TransactionAdjustment,
		Status:     entity.TransactionCompleted,
		UserID:     actorID,
		ToUserID:   to.ID,
		ToUserName: to.Name,
		Amount:     amount,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// AddBonus accredita un bonus al destinatario tramite una vendita
// sintetica pre-approvata. Se l'attore è un Manager il bonus esce dal suo
// saldo con una vendita specchio in addebito; i bonus dell'Admin non
// addebitano nessuno.
func (s *Service) AddBonus(ctx context.Context, actorID, recipientID string, amount decimal.Decimal, notes string) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return err
	}
	actor := snap.UserByID(actorID)
	recipient := snap.UserByID(recipientID)
	if actor == nil || recipient == nil || !recipient.Role.HasBalance() {
		return domain.ErrUserNotFound
	}
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return domain.ErrForbidden
	}
	if actor.Role == entity.RoleManager {
		if amount.GreaterThan(ComputeBalance(snap, *actor).Current) {
			return domain.ErrInsufficientBalance
		}
	}

	now := time.Now()
	note := strings.TrimSpace("Bonus aggiunto da " + actor.Name + ". " + notes)
	bonus := &entity.Sale{
		ID:               "BNS-" + uuid.NewString(),
		ProductID:        entity.BonusProductID,
		ProductName:      "Bonus Manuale",
		AffiliateID:      recipient.ID,
		AffiliateName:    recipient.Name,
		SaleAmount:       decimal.Zero,
		CommissionAmount: amount,
		Status:           sales.StatusConsegnato,
		IsBonus:          true,
		CustomerEmail:    recipient.Email,
		SubID:            "manuale",
		Notes:            note,
		SaleDate:         now,
	}
	if err := s.saleRepo.Create(ctx, bonus); err != nil {
		return err
	}

	if actor.Role == entity.RoleManager {
		debit := &entity.Sale{
			ID:               "BNS-DEBIT-" + uuid.NewString(),
			ProductID:        entity.BonusDebitProductID,
			ProductName:      "Bonus erogato a " + recipient.Name,
			AffiliateID:      actor.ID,
			AffiliateName:    actor.Name,
			SaleAmount:       decimal.Zero,
			CommissionAmount: amount.Neg(),
			Status:           sales.StatusConsegnato,
			IsBonus:          true,
			CustomerEmail:    actor.Email,
			SubID:            "manuale",
			Notes:            strings.TrimSpace("Bonus per " + recipient.Name + ". " + notes),
			SaleDate:         now,
		}
		if err := s.saleRepo.Create(ctx, debit); err != nil {
			return err
		}
	}

	s.log.Info().
		Str("actor_id", actorID).
		Str("recipient_id", recipientID).
		Str("amount", amount.StringFixed(2)).
		Msg("bonus accreditato")
	return nil
}

// ApproveTransaction porta una transazione Pending a Completed.
func (s *Service) ApproveTransaction(ctx context.Context, adminID, txID string) error {
	return s.resolve(ctx, adminID, txID, entity.TransactionCompleted)
}

// RejectTransaction porta una transazione Pending a Failed. Il saldo non
// viene mai toccato: una Failed semplicemente non conta.
func (s *Service) RejectTransaction(ctx context.Context, adminID, txID string) error {
	return s.resolve(ctx, adminID, txID, entity.TransactionFailed)
}

func (s *Service) resolve(ctx context.Context, adminID, txID, status string) error {
	tx, err := s.txRepo.GetByID(ctx, txID)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	if tx.Status != entity.TransactionPending {
		return domain.ErrTransactionState
	}
	return s.txRepo.Resolve(ctx, txID, status, adminID, time.Now())
}
