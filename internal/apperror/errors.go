// Package apperror definisce la tassonomia degli errori dell'applicazione.
// I repository restituiscono errori gorm grezzi; i service li traducono in
// questi sentinel e gli handler li mappano sugli status HTTP.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrUnauthenticated  = errors.New("utente non autenticato")
	ErrNotFound         = errors.New("risorsa non trovata")
	ErrConflict         = errors.New("record duplicato")
	ErrStoreUnavailable = errors.New("store non disponibile")
)

// Status mappa un errore sullo status HTTP corrispondente.
// Gli errori non classificati sono trattati come guasti dello store (500).
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
