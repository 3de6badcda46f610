package domain

import "errors"

// Errori di dominio (senza dipendenze esterne).
// Le violazioni di regole di business si restituiscono sempre come valori,
// mai come panic: il layer HTTP le mappa su risposte {code, message}.
var (
	ErrNotFound            = errors.New("risorsa non trovata")
	ErrUserNotFound        = errors.New("utente non trovato")
	ErrProductNotFound     = errors.New("prodotto non trovato")
	ErrInvalidInput        = errors.New("input non valido")
	ErrUnauthorized        = errors.New("non autorizzato")
	ErrForbidden           = errors.New("accesso negato")
	ErrInsufficientBalance = errors.New("saldo insufficiente")
	ErrMissingTracking     = errors.New("codice di tracciamento obbligatorio per lo stato Spedito")
	ErrStatusNotAllowed    = errors.New("stato non consentito per il ruolo")
	ErrSystemStatus        = errors.New("stato assegnabile solo dal sistema")
	ErrTransactionState    = errors.New("transizione di stato della transazione non valida")
)
