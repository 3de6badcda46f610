package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mwsdigital/console-api/internal/application/dto"
	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/repository"
	"github.com/mwsdigital/console-api/internal/domain/sales"
	"github.com/mwsdigital/console-api/pkg/logger"
)

// SaleUseCase orchestration del ciclo di vita delle vendite: transizioni
// di stato con regole per ruolo, log contatti, note, dati cliente e
// scansione duplicati.
type SaleUseCase struct {
	saleRepo  repository.SaleRepository
	snapshots repository.SnapshotLoader
	log       *logger.Logger
}

// NewSaleUseCase costruisce il caso d'uso.
func NewSaleUseCase(saleRepo repository.SaleRepository, snapshots repository.SnapshotLoader, log *logger.Logger) *SaleUseCase {
	return &SaleUseCase{saleRepo: saleRepo, snapshots: snapshots, log: log}
}

// Create inserisce manualmente un ordine (admin/manager). Importo e
// commissione vengono dal catalogo: il bundle, se indicato, sostituisce
// prezzo e commissione del singolo pezzo.
func (uc *SaleUseCase) Create(ctx context.Context, actor entity.User, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return nil, domain.ErrForbidden
	}
	if in.ProductID == "" || in.AffiliateID == "" || strings.TrimSpace(in.CustomerName) == "" || strings.TrimSpace(in.CustomerPhone) == "" {
		return nil, domain.ErrInvalidInput
	}
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return nil, err
	}
	product := snap.ProductByID(in.ProductID)
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	affiliate := snap.UserByID(in.AffiliateID)
	if affiliate == nil || affiliate.Role != entity.RoleAffiliate {
		return nil, domain.ErrUserNotFound
	}

	amount := product.Price
	commission := product.Commission
	quantity := 1
	if in.BundleID != "" {
		var bundle *entity.BundleOption
		for i := range product.Bundles {
			if product.Bundles[i].ID == in.BundleID {
				bundle = &product.Bundles[i]
				break
			}
		}
		if bundle == nil {
			return nil, domain.ErrInvalidInput
		}
		amount = bundle.Price
		commission = bundle.Commission
		quantity = bundle.Quantity
	}

	sale := &entity.Sale{
		ID:               uuid.NewString(),
		ProductID:        product.ID,
		ProductName:      product.Name,
		AffiliateID:      affiliate.ID,
		AffiliateName:    affiliate.Name,
		BundleID:         in.BundleID,
		VariantID:        in.VariantID,
		SaleAmount:       amount,
		CommissionAmount: commission,
		Quantity:         quantity,
		Status:           sales.StatusInAttesa,

		CustomerName:          strings.TrimSpace(in.CustomerName),
		CustomerPhone:         strings.TrimSpace(in.CustomerPhone),
		CustomerEmail:         in.CustomerEmail,
		CustomerStreetAddress: in.CustomerStreetAddress,
		CustomerHouseNumber:   in.CustomerHouseNumber,
		CustomerCity:          in.CustomerCity,
		CustomerProvince:      in.CustomerProvince,
		CustomerZip:           in.CustomerZip,

		SubID:    in.SubID,
		Notes:    in.Notes,
		SaleDate: time.Now(),
	}
	if err := uc.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("product_id", product.ID).
		Str("affiliate_id", affiliate.ID).
		Msg("ordine inserito manualmente")
	return sale, nil
}

// ChangeStatus applica una transizione di stato per conto dell'attore.
// Il tracking passato sostituisce quello esistente se non vuoto; per lo
// stato Spedito il codice risultante deve essere presente.
func (uc *SaleUseCase) ChangeStatus(ctx context.Context, actor entity.User, saleID, newStatus, trackingCode string) error {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}

	effectiveTracking := sale.TrackingCode
	if strings.TrimSpace(trackingCode) != "" {
		effectiveTracking = strings.TrimSpace(trackingCode)
	}
	if err := sales.ValidateTransition(actor.Role, *sale, newStatus, effectiveTracking); err != nil {
		return err
	}

	now := time.Now()
	if err := uc.saleRepo.UpdateStatus(ctx, saleID, newStatus, effectiveTracking, now); err != nil {
		return err
	}

	// La logistica lavora le spedizioni: non è un contatto cliente.
	if sales.StampsContact(actor.Role) {
		item := entity.ContactHistoryItem{
			ID:        uuid.NewString(),
			UserID:    actor.ID,
			UserName:  actor.Name,
			Channel:   "stato",
			Note:      "Stato aggiornato a " + newStatus,
			CreatedAt: now,
		}
		if err := uc.saleRepo.StampContact(ctx, saleID, item); err != nil {
			return err
		}
	}

	uc.log.Info().
		Str("sale_id", saleID).
		Str("actor_id", actor.ID).
		Str("status", newStatus).
		Msg("stato vendita aggiornato")
	return nil
}

// RecordContact aggiunge una voce al log contatti e marca l'attore come
// ultimo contatto (salvo logistica).
func (uc *SaleUseCase) RecordContact(ctx context.Context, actor entity.User, saleID, channel, note string) error {
	if !sales.StampsContact(actor.Role) {
		return domain.ErrForbidden
	}
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	item := entity.ContactHistoryItem{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		UserName:  actor.Name,
		Channel:   channel,
		Note:      note,
		CreatedAt: time.Now(),
	}
	return uc.saleRepo.StampContact(ctx, saleID, item)
}

// UpdateNotes sostituisce le note operative della vendita.
func (uc *SaleUseCase) UpdateNotes(ctx context.Context, actor entity.User, saleID, notes string) error {
	if actor.Role == entity.RoleAffiliate {
		return domain.ErrForbidden
	}
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.UpdateNotes(ctx, saleID, notes)
}

// UpdateCustomer aggiorna i recapiti del cliente (indirizzo, telefono).
// Riservato allo staff: l'affiliato è in sola lettura sui propri ordini.
func (uc *SaleUseCase) UpdateCustomer(ctx context.Context, actor entity.User, sale *entity.Sale) error {
	if actor.Role == entity.RoleAffiliate {
		return domain.ErrForbidden
	}
	existing, err := uc.saleRepo.GetByID(ctx, sale.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrNotFound
	}
	return uc.saleRepo.UpdateCustomer(ctx, sale)
}

// ScanDuplicates rilancia il rilevamento duplicati sull'intero set e
// persiste gli esiti. Idempotente: un secondo lancio sullo stesso stato
// non marca nulla di nuovo.
func (uc *SaleUseCase) ScanDuplicates(ctx context.Context, actor entity.User) (int, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleManager {
		return 0, domain.ErrForbidden
	}
	snap, err := uc.snapshots.Load(ctx)
	if err != nil {
		return 0, err
	}
	ids := sales.DetectDuplicates(snap.Sales)
	if len(ids) == 0 {
		return 0, nil
	}
	if err := uc.saleRepo.MarkDuplicates(ctx, ids, time.Now()); err != nil {
		return 0, err
	}
	uc.log.Info().Int("marked", len(ids)).Msg("scansione duplicati completata")
	return len(ids), nil
}

// List ritorna le vendite visibili all'attore. L'affiliato vede solo le
// proprie, e le vendite sintetiche di bonus restano fuori dalle viste
// ordini di tutti.
func (uc *SaleUseCase) List(ctx context.Context, actor entity.User, filter repository.SaleFilter) ([]entity.Sale, error) {
	if actor.Role == entity.RoleAffiliate {
		filter.AffiliateID = actor.ID
	}
	list, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := list[:0]
	for _, s := range list {
		if s.ProductID == entity.BonusProductID || s.ProductID == entity.BonusDebitProductID {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

// Get ritorna una singola vendita, applicando la visibilità per ruolo.
func (uc *SaleUseCase) Get(ctx context.Context, actor entity.User, saleID string) (*entity.Sale, error) {
	sale, err := uc.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	if actor.Role == entity.RoleAffiliate && sale.AffiliateID != actor.ID {
		return nil, domain.ErrForbidden
	}
	return sale, nil
}
