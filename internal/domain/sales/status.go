// Package sales contiene le regole di dominio sul ciclo di vita delle
// vendite: enumerazione degli stati, gruppi semantici, permessi per ruolo
// e rilevamento duplicati.
package sales

import (
	"strings"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// Stati del ciclo di vita di una vendita. Enumerazione chiusa: ogni altro
// valore è rifiutato in ingresso.
const (
	StatusInAttesa         = "In attesa"
	StatusContattato       = "Contattato"
	StatusConfermato       = "Confermato"
	StatusAnnullato        = "Annullato"
	StatusCancellato       = "Cancellato"
	StatusSpedito          = "Spedito"
	StatusSvincolato       = "Svincolato"
	StatusConsegnato       = "Consegnato"
	StatusNonRaggiungibile = "Non raggiungibile"
	StatusNonRitirato      = "Non ritirato"
	StatusGiacenza         = "Giacenza"
	StatusDuplicato        = "Duplicato"
	StatusTest             = "Test"
)

// AllStatuses nell'ordine di presentazione.
var AllStatuses = []string{
	StatusInAttesa,
	StatusContattato,
	StatusConfermato,
	StatusAnnullato,
	StatusCancellato,
	StatusSpedito,
	StatusSvincolato,
	StatusConsegnato,
	StatusNonRaggiungibile,
	StatusNonRitirato,
	StatusGiacenza,
	StatusDuplicato,
	StatusTest,
}

func setOf(ss ...string) map[string]bool {
	m := make(map[string]bool, len(ss))
	for _, s := range ss {
		m[s] = true
	}
	return m
}

var validStatuses = setOf(AllStatuses...)

// Stati assegnabili solo dal sistema, mai a mano.
var systemStatuses = setOf(StatusDuplicato, StatusTest)

// nonRevenueStatuses: vendite che non contano mai come fatturato.
var nonRevenueStatuses = setOf(StatusAnnullato, StatusCancellato, StatusDuplicato, StatusTest)

// approvedStatuses: la commissione affiliato è maturata.
var approvedStatuses = setOf(StatusSvincolato, StatusConsegnato)

// pendingStatuses: commissione potenziale, in attesa di esito.
var pendingStatuses = setOf(
	StatusInAttesa,
	StatusContattato,
	StatusConfermato,
	StatusNonRaggiungibile,
	StatusSpedito,
	StatusGiacenza,
)

// excludedFromCounts: fuori dai conteggi ordini e dal tasso di conversione.
var excludedFromCounts = setOf(StatusDuplicato, StatusCancellato, StatusAnnullato)

// Bucket operativi per i ruoli di lavorazione: per logistica e customer
// care "approvato" significa solo Consegnato, e il pending copre la coda
// di lavoro del ruolo.
var logisticsPendingStatuses = setOf(
	StatusConfermato,
	StatusSpedito,
	StatusSvincolato,
	StatusGiacenza,
	StatusNonRitirato,
)

var customerCarePendingStatuses = setOf(
	StatusInAttesa,
	StatusContattato,
	StatusConfermato,
	StatusSpedito,
	StatusGiacenza,
)

// Stati impostabili per ruolo. Admin e Manager coprono tutto tranne gli
// stati di sistema; l'affiliato è in sola lettura.
var editableByRole = map[entity.Role]map[string]bool{
	entity.RoleAdmin: setOf(
		StatusInAttesa, StatusContattato, StatusConfermato, StatusAnnullato,
		StatusCancellato, StatusSpedito, StatusSvincolato, StatusConsegnato,
		StatusNonRaggiungibile, StatusNonRitirato, StatusGiacenza,
	),
	entity.RoleManager: setOf(
		StatusInAttesa, StatusContattato, StatusConfermato, StatusAnnullato,
		StatusCancellato, StatusSpedito, StatusSvincolato, StatusConsegnato,
		StatusNonRaggiungibile, StatusNonRitirato, StatusGiacenza,
	),
	entity.RoleLogistics: setOf(
		StatusConfermato, StatusSpedito, StatusConsegnato,
		StatusSvincolato, StatusNonRitirato, StatusGiacenza,
	),
	entity.RoleCustomerCare: setOf(
		StatusInAttesa, StatusContattato, StatusConfermato,
		StatusCancellato, StatusNonRaggiungibile, StatusGiacenza,
	),
	entity.RoleAffiliate: {},
}

// IsValidStatus riconosce un membro dell'enumerazione.
func IsValidStatus(s string) bool { return validStatuses[s] }

// IsSystemStatus vale per gli stati assegnabili solo dal sistema.
func IsSystemStatus(s string) bool { return systemStatuses[s] }

// IsNonRevenue vale per gli stati che non generano mai fatturato.
func IsNonRevenue(s string) bool { return nonRevenueStatuses[s] }

// IsApproved: commissione affiliato maturata. Le vendite bonus sono
// approvate per costruzione.
func IsApproved(sale entity.Sale) bool {
	return sale.IsBonus || approvedStatuses[sale.Status]
}

// IsPending: commissione potenziale in attesa di esito.
func IsPending(sale entity.Sale) bool {
	return !sale.IsBonus && pendingStatuses[sale.Status]
}

// IsCountable: la vendita entra nei conteggi ordini e nel tasso di
// conversione.
func IsCountable(s string) bool { return !excludedFromCounts[s] }

// IsLogisticsPending: la vendita è nella coda di lavoro della logistica.
func IsLogisticsPending(s string) bool { return logisticsPendingStatuses[s] }

// IsCustomerCarePending: la vendita è nella coda di lavoro del customer care.
func IsCustomerCarePending(s string) bool { return customerCarePendingStatuses[s] }

// IsOperationalApproved: per logistica e customer care conta solo la
// consegna effettiva.
func IsOperationalApproved(s string) bool { return s == StatusConsegnato }

// CanSetStatus dice se il ruolo può impostare a mano lo stato dato.
func CanSetStatus(role entity.Role, status string) bool {
	return editableByRole[role][status]
}

// StampsContact: la logistica lavora le spedizioni, non i contatti
// cliente, quindi non viene mai registrata come ultimo contatto.
func StampsContact(role entity.Role) bool {
	return role != entity.RoleLogistics
}

// ValidateTransition applica le regole di cambio stato: enumerazione
// chiusa, stati di sistema intoccabili, permessi per ruolo, e tracking
// obbligatorio per Spedito. TrackingCode è quello risultante dopo
// l'eventuale aggiornamento contestuale.
func ValidateTransition(role entity.Role, sale entity.Sale, newStatus, trackingCode string) error {
	if !IsValidStatus(newStatus) {
		return domain.ErrInvalidInput
	}
	if IsSystemStatus(newStatus) || IsSystemStatus(sale.Status) {
		return domain.ErrSystemStatus
	}
	if !CanSetStatus(role, newStatus) {
		return domain.ErrStatusNotAllowed
	}
	if newStatus == StatusSpedito && strings.TrimSpace(trackingCode) == "" {
		return domain.ErrMissingTracking
	}
	return nil
}
