package entity

import "time"

// Notification avviso in-app indirizzato a uno o più ruoli. ReadBy tiene
// gli id degli utenti che hanno preso visione: il log è append-only, la
// lettura non cancella nulla.
type Notification struct {
	ID          string
	Title       string
	Message     string
	Link        string
	TargetRoles []Role
	ReadBy      []string
	CreatedAt   time.Time
}

// Targets dice se l'avviso è destinato al ruolo dato.
func (n *Notification) Targets(role Role) bool {
	for _, r := range n.TargetRoles {
		if r == role {
			return true
		}
	}
	return false
}

// IsReadBy dice se l'utente ha già preso visione.
func (n *Notification) IsReadBy(userID string) bool {
	for _, id := range n.ReadBy {
		if id == userID {
			return true
		}
	}
	return false
}
