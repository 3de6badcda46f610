package sales

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// normalizeName chiave nome cliente: forma NFC, minuscole, spazi ai bordi
// rimossi. Così "José" e "José" composti diversamente collidono.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(name)))
}

// normalizePhone rimuove ogni spazio bianco dal numero.
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}

// DetectDuplicates individua le vendite da marcare come duplicati. Una
// vendita collide se condivide con una precedente lo stesso prodotto e lo
// stesso nome cliente normalizzato, oppure lo stesso prodotto e lo stesso
// telefono senza spazi. Regole:
//
//   - le vendite Test e bonus non partecipano mai, né come originale né
//     come duplicato;
//   - l'ordine è per data di vendita crescente: la più vecchia tiene la
//     chiave, le successive collidono;
//   - le vendite già marcate Duplicato restano tali e non reclamano
//     chiavi, quindi rilanciare il rilevamento è idempotente.
//
// Ritorna gli ID delle vendite da portare a Duplicato, in ordine di data.
func DetectDuplicates(all []entity.Sale) []string {
	candidates := make([]entity.Sale, 0, len(all))
	for _, s := range all {
		if s.Status == StatusTest || s.IsBonus {
			continue
		}
		candidates = append(candidates, s)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].SaleDate.Before(candidates[j].SaleDate)
	})

	seen := make(map[string]bool, len(candidates)*2)
	var toMark []string
	for _, s := range candidates {
		if s.Status == StatusDuplicato {
			continue
		}
		var keys []string
		if name := normalizeName(s.CustomerName); name != "" {
			keys = append(keys, s.ProductID+"|n|"+name)
		}
		if phone := normalizePhone(s.CustomerPhone); phone != "" {
			keys = append(keys, s.ProductID+"|p|"+phone)
		}

		dup := false
		for _, k := range keys {
			if seen[k] {
				dup = true
			}
		}
		if dup {
			toMark = append(toMark, s.ID)
			continue
		}
		for _, k := range keys {
			seen[k] = true
		}
	}
	return toMark
}
