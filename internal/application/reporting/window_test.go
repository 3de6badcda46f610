package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain"
)

// Mercoledì 15 aprile 2026, metà giornata.
var now = time.Date(2026, 4, 15, 12, 30, 0, 0, time.Local)

func TestResolveWindowGiorni(t *testing.T) {
	w, err := ResolveWindow(PeriodToday, now, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 4, 15, 0, 0, 0, 0, time.Local), w.Start)
	assert.True(t, w.Contains(time.Date(2026, 4, 15, 23, 59, 59, 0, time.Local)))
	assert.False(t, w.Contains(time.Date(2026, 4, 16, 0, 0, 0, 0, time.Local)))

	w, err = ResolveWindow(PeriodYesterday, now, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 14, w.Start.Day())
	assert.Equal(t, 14, w.End.Day())
}

func TestResolveWindowSettimanaDaLunedi(t *testing.T) {
	w, err := ResolveWindow(PeriodThisWeek, now, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, w.Start.Weekday())
	assert.Equal(t, 13, w.Start.Day())
	assert.Equal(t, time.Sunday, w.End.Weekday())
	assert.Equal(t, 19, w.End.Day())

	// Di domenica la settimana corrente è ancora quella iniziata il
	// lunedì precedente, non quella del giorno dopo.
	sunday := time.Date(2026, 4, 19, 10, 0, 0, 0, time.Local)
	w, err = ResolveWindow(PeriodThisWeek, sunday, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 13, w.Start.Day())

	w, err = ResolveWindow(PeriodLastWeek, now, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, w.Start.Day())
	assert.Equal(t, 12, w.End.Day())
}

func TestResolveWindowMesiEAnni(t *testing.T) {
	w, _ := ResolveWindow(PeriodThisMonth, now, nil, nil)
	assert.Equal(t, 1, w.Start.Day())
	assert.Equal(t, 30, w.End.Day())

	w, _ = ResolveWindow(PeriodLastMonth, now, nil, nil)
	assert.Equal(t, time.March, w.Start.Month())
	assert.Equal(t, 31, w.End.Day())

	w, _ = ResolveWindow(PeriodThisYear, now, nil, nil)
	assert.Equal(t, time.January, w.Start.Month())
	assert.Equal(t, time.December, w.End.Month())

	w, _ = ResolveWindow(PeriodLastYear, now, nil, nil)
	assert.Equal(t, 2025, w.Start.Year())
	assert.Equal(t, 2025, w.End.Year())
}

func TestResolveWindowScorrevoli(t *testing.T) {
	w, _ := ResolveWindow(PeriodLast7, now, nil, nil)
	assert.Equal(t, 9, w.Start.Day())

	w, _ = ResolveWindow(PeriodLast30, now, nil, nil)
	assert.Equal(t, time.March, w.Start.Month())
	assert.Equal(t, 17, w.Start.Day())
}

func TestResolveWindowAllECustom(t *testing.T) {
	w, _ := ResolveWindow(PeriodAll, now, nil, nil)
	assert.True(t, w.Contains(time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local)))

	start := time.Date(2026, 2, 10, 15, 0, 0, 0, time.Local)
	end := time.Date(2026, 2, 20, 9, 0, 0, 0, time.Local)
	w, err := ResolveWindow(PeriodCustom, now, &start, &end)
	require.NoError(t, err)
	// Gli estremi si allargano al giorno intero.
	assert.True(t, w.Contains(time.Date(2026, 2, 10, 0, 30, 0, 0, time.Local)))
	assert.True(t, w.Contains(time.Date(2026, 2, 20, 23, 0, 0, 0, time.Local)))
	assert.False(t, w.Contains(time.Date(2026, 2, 21, 0, 0, 0, 0, time.Local)))
}

func TestResolveWindowPeriodoSconosciuto(t *testing.T) {
	_, err := ResolveWindow(Period("boh"), now, nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
