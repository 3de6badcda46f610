// Package reporting implementa il motore di aggregazione: finestre
// temporali, KPI per ruolo, classifica prodotti e leaderboard affiliati.
// Tutte le funzioni sono pure e totali sullo snapshot: i riferimenti
// mancanti valgono zero, mai un errore a metà aggregazione.
package reporting

import (
	"time"

	"github.com/mwsdigital/console-api/internal/domain"
)

// Period chiave della finestra temporale.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodThisWeek  Period = "this_week"
	PeriodLastWeek  Period = "last_week"
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodThisYear  Period = "this_year"
	PeriodLastYear  Period = "last_year"
	PeriodLast7     Period = "7d"
	PeriodLast30    Period = "30d"
	PeriodAll       Period = "all"
	PeriodCustom    Period = "custom"
)

// Window intervallo chiuso [Start, End] su giorni interi in ora locale.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains verifica l'appartenenza inclusiva agli estremi.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// mondayOf lunedì della settimana di t (la settimana inizia lunedì).
func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // domenica chiude la settimana, non la apre
	}
	return startOfDay(t.AddDate(0, 0, 1-wd))
}

// ResolveWindow traduce una chiave di periodo nell'intervallo concreto.
// Per custom gli estremi mancanti degradano a "dall'inizio" e "fino a
// oggi"; una chiave sconosciuta è un errore di input.
func ResolveWindow(period Period, now time.Time, customStart, customEnd *time.Time) (Window, error) {
	switch period {
	case PeriodToday:
		return Window{startOfDay(now), endOfDay(now)}, nil
	case PeriodYesterday:
		y := now.AddDate(0, 0, -1)
		return Window{startOfDay(y), endOfDay(y)}, nil
	case PeriodThisWeek:
		monday := mondayOf(now)
		return Window{monday, endOfDay(monday.AddDate(0, 0, 6))}, nil
	case PeriodLastWeek:
		monday := mondayOf(now).AddDate(0, 0, -7)
		return Window{monday, endOfDay(monday.AddDate(0, 0, 6))}, nil
	case PeriodThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return Window{first, endOfDay(first.AddDate(0, 1, -1))}, nil
	case PeriodLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0)
		return Window{first, endOfDay(first.AddDate(0, 1, -1))}, nil
	case PeriodThisYear:
		first := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return Window{first, endOfDay(time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location()))}, nil
	case PeriodLastYear:
		year := now.Year() - 1
		first := time.Date(year, 1, 1, 0, 0, 0, 0, now.Location())
		return Window{first, endOfDay(time.Date(year, 12, 31, 0, 0, 0, 0, now.Location()))}, nil
	case PeriodLast7:
		return Window{startOfDay(now.AddDate(0, 0, -6)), endOfDay(now)}, nil
	case PeriodLast30:
		return Window{startOfDay(now.AddDate(0, 0, -29)), endOfDay(now)}, nil
	case PeriodAll:
		return Window{time.Time{}, endOfDay(now)}, nil
	case PeriodCustom:
		w := Window{time.Time{}, endOfDay(now)}
		if customStart != nil {
			w.Start = startOfDay(*customStart)
		}
		if customEnd != nil {
			w.End = endOfDay(*customEnd)
		}
		return w, nil
	}
	return Window{}, domain.ErrInvalidInput
}
