package sales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain"
	"github.com/mwsdigital/console-api/internal/domain/entity"
)

func TestClassificazioneStati(t *testing.T) {
	// Ogni stato appartiene a esattamente una classe di fatturato.
	for _, st := range AllStatuses {
		sale := entity.Sale{Status: st}
		classi := 0
		if IsNonRevenue(st) {
			classi++
		}
		if IsApproved(sale) {
			classi++
		}
		if IsPending(sale) {
			classi++
		}
		assert.Equal(t, 1, classi, "stato %q", st)
	}
}

func TestBonusSempreApprovato(t *testing.T) {
	sale := entity.Sale{Status: StatusInAttesa, IsBonus: true}
	assert.True(t, IsApproved(sale))
	assert.False(t, IsPending(sale))
}

func TestConteggiEscludonoAnnullati(t *testing.T) {
	assert.False(t, IsCountable(StatusDuplicato))
	assert.False(t, IsCountable(StatusCancellato))
	assert.False(t, IsCountable(StatusAnnullato))
	assert.True(t, IsCountable(StatusConsegnato))
	assert.True(t, IsCountable(StatusInAttesa))
}

func TestPermessiPerRuolo(t *testing.T) {
	cases := []struct {
		role    entity.Role
		status  string
		allowed bool
	}{
		{entity.RoleAdmin, StatusAnnullato, true},
		{entity.RoleAdmin, StatusDuplicato, false},
		{entity.RoleManager, StatusConsegnato, true},
		{entity.RoleManager, StatusTest, false},
		{entity.RoleLogistics, StatusSpedito, true},
		{entity.RoleLogistics, StatusAnnullato, false},
		{entity.RoleLogistics, StatusContattato, false},
		{entity.RoleCustomerCare, StatusContattato, true},
		{entity.RoleCustomerCare, StatusCancellato, true},
		{entity.RoleCustomerCare, StatusSpedito, false},
		{entity.RoleAffiliate, StatusInAttesa, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.allowed, CanSetStatus(tc.role, tc.status),
			"ruolo %s stato %q", tc.role, tc.status)
	}
}

func TestValidateTransition(t *testing.T) {
	base := entity.Sale{Status: StatusInAttesa}

	t.Run("stato sconosciuto", func(t *testing.T) {
		err := ValidateTransition(entity.RoleAdmin, base, "Boh", "")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("stato di sistema non assegnabile", func(t *testing.T) {
		err := ValidateTransition(entity.RoleAdmin, base, StatusDuplicato, "")
		require.ErrorIs(t, err, domain.ErrSystemStatus)
	})

	t.Run("vendita di sistema intoccabile", func(t *testing.T) {
		dup := entity.Sale{Status: StatusDuplicato}
		err := ValidateTransition(entity.RoleAdmin, dup, StatusInAttesa, "")
		require.ErrorIs(t, err, domain.ErrSystemStatus)
	})

	t.Run("ruolo non abilitato", func(t *testing.T) {
		err := ValidateTransition(entity.RoleAffiliate, base, StatusContattato, "")
		require.ErrorIs(t, err, domain.ErrStatusNotAllowed)
	})

	t.Run("spedito senza tracking", func(t *testing.T) {
		err := ValidateTransition(entity.RoleLogistics, base, StatusSpedito, "  ")
		require.ErrorIs(t, err, domain.ErrMissingTracking)
	})

	t.Run("spedito con tracking", func(t *testing.T) {
		err := ValidateTransition(entity.RoleLogistics, base, StatusSpedito, "BRT123")
		require.NoError(t, err)
	})
}

func TestStampsContact(t *testing.T) {
	assert.False(t, StampsContact(entity.RoleLogistics))
	assert.True(t, StampsContact(entity.RoleCustomerCare))
	assert.True(t, StampsContact(entity.RoleAdmin))
}
