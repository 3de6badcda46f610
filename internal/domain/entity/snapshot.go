package entity

// Snapshot stato applicativo caricato in memoria. I motori di calcolo
// (saldi, report, duplicati) sono funzioni pure su questo struct: si
// scrive sul repository e poi si rideriva, mai si mutano i derivati.
type Snapshot struct {
	Users         []User
	Products      []Product
	Sales         []Sale
	Transactions  []Transaction
	StockExpenses []StockExpense
}

// UserByID ritorna l'utente con l'id dato, o nil.
func (s *Snapshot) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// ProductByID ritorna il prodotto con l'id dato, o nil.
func (s *Snapshot) ProductByID(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// SaleByID ritorna la vendita con l'id dato, o nil.
func (s *Snapshot) SaleByID(id string) *Sale {
	for i := range s.Sales {
		if s.Sales[i].ID == id {
			return &s.Sales[i]
		}
	}
	return nil
}

// UsersByRole ritorna gli utenti con il ruolo dato.
func (s *Snapshot) UsersByRole(role Role) []User {
	var out []User
	for _, u := range s.Users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// SalesByAffiliate ritorna le vendite attribuite all'affiliato dato.
func (s *Snapshot) SalesByAffiliate(affiliateID string) []Sale {
	var out []Sale
	for _, sl := range s.Sales {
		if sl.AffiliateID == affiliateID {
			out = append(out, sl)
		}
	}
	return out
}
