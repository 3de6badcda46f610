package reporting

import (
	"strings"

	"github.com/mwsdigital/console-api/internal/domain/entity"
	"github.com/mwsdigital/console-api/internal/domain/sales"
)

// Filter selezione delle vendite per un report. Role e UserID definiscono
// la visibilità (l'affiliato vede solo il proprio); gli altri campi sono
// restrizioni facoltative, vuoto = nessun filtro.
type Filter struct {
	Role   entity.Role
	UserID string
	Window Window

	ProductID   string
	AffiliateID string   // solo per viste admin/manager
	SubID       string   // match per sottostringa, case-insensitive
	Statuses    []string // vuoto = tutti
}

// FilterSales applica visibilità per ruolo e restrizioni del filtro.
// Le vendite Test restano sempre fuori dalle statistiche.
func FilterSales(snap *entity.Snapshot, f Filter) []entity.Sale {
	subQuery := strings.ToLower(strings.TrimSpace(f.SubID))
	statusSet := map[string]bool{}
	for _, st := range f.Statuses {
		statusSet[st] = true
	}

	var out []entity.Sale
	for _, s := range snap.Sales {
		if s.Status == sales.StatusTest {
			continue
		}
		if !f.Window.Contains(s.SaleDate) {
			continue
		}
		if f.ProductID != "" && s.ProductID != f.ProductID {
			continue
		}
		switch f.Role {
		case entity.RoleAffiliate:
			if s.AffiliateID != f.UserID {
				continue
			}
		case entity.RoleAdmin, entity.RoleManager:
			if f.AffiliateID != "" && s.AffiliateID != f.AffiliateID {
				continue
			}
		}
		if subQuery != "" && !strings.Contains(strings.ToLower(strings.TrimSpace(s.SubID)), subQuery) {
			continue
		}
		if len(statusSet) > 0 && !statusSet[s.Status] {
			continue
		}
		out = append(out, s)
	}
	return out
}

// StatusCounts conta le vendite per stato nella finestra, senza altri
// filtri: alimenta la barra dei contatori sopra la lista ordini.
func StatusCounts(snap *entity.Snapshot, w Window) map[string]int {
	counts := make(map[string]int)
	for _, s := range snap.Sales {
		if w.Contains(s.SaleDate) {
			counts[s.Status]++
		}
	}
	return counts
}
