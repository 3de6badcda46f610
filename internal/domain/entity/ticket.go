package entity

import "time"

// Stati di un ticket di assistenza.
const (
	TicketAperto        = "Aperto"
	TicketInLavorazione = "In Lavorazione"
	TicketChiuso        = "Chiuso"
)

// TicketReply risposta all'interno del thread di un ticket.
type TicketReply struct {
	ID        string
	UserID    string
	UserName  string
	Role      Role
	Message   string
	CreatedAt time.Time
}

// Ticket richiesta di assistenza. Il thread cresce in append, mai
// riscritto; oltre alle risposte cambia solo lo stato.
type Ticket struct {
	ID        string
	UserID    string
	UserName  string
	Role      Role
	Subject   string
	Status    string
	Replies   []TicketReply
	CreatedAt time.Time
	UpdatedAt time.Time
}
