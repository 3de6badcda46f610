package sales

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

func sale(id, productID, name, phone, status string, day int) entity.Sale {
	return entity.Sale{
		ID:            id,
		ProductID:     productID,
		CustomerName:  name,
		CustomerPhone: phone,
		Status:        status,
		SaleDate:      time.Date(2026, 3, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestDetectDuplicatesPerNome(t *testing.T) {
	all := []entity.Sale{
		sale("s2", "p1", "Mario Rossi", "333111", StatusInAttesa, 2),
		sale("s1", "p1", "  mario ROSSI ", "333222", StatusInAttesa, 1),
	}
	// La più vecchia tiene la chiave anche se arriva seconda nella slice.
	marked := DetectDuplicates(all)
	require.Equal(t, []string{"s2"}, marked)
}

func TestDetectDuplicatesPerTelefono(t *testing.T) {
	all := []entity.Sale{
		sale("s1", "p1", "Anna Bianchi", "347 123 4567", StatusInAttesa, 1),
		sale("s2", "p1", "A. Bianchi", "3471234567", StatusInAttesa, 2),
	}
	marked := DetectDuplicates(all)
	require.Equal(t, []string{"s2"}, marked)
}

func TestDetectDuplicatesProdottiDiversi(t *testing.T) {
	all := []entity.Sale{
		sale("s1", "p1", "Mario Rossi", "333111", StatusInAttesa, 1),
		sale("s2", "p2", "Mario Rossi", "333111", StatusInAttesa, 2),
	}
	assert.Empty(t, DetectDuplicates(all))
}

func TestDetectDuplicatesIgnoraTestEBonus(t *testing.T) {
	bonus := sale("s3", "p1", "Mario Rossi", "333111", StatusConsegnato, 3)
	bonus.IsBonus = true
	all := []entity.Sale{
		sale("s1", "p1", "Mario Rossi", "333111", StatusTest, 1),
		sale("s2", "p1", "Mario Rossi", "333111", StatusInAttesa, 2),
		bonus,
	}
	// La vendita Test non reclama la chiave: s2 resta originale e il
	// bonus non viene mai marcato.
	assert.Empty(t, DetectDuplicates(all))
}

func TestDetectDuplicatesIdempotente(t *testing.T) {
	all := []entity.Sale{
		sale("s1", "p1", "Mario Rossi", "333111", StatusInAttesa, 1),
		sale("s2", "p1", "Mario Rossi", "333111", StatusDuplicato, 2),
		sale("s3", "p1", "Mario Rossi", "333111", StatusInAttesa, 3),
	}
	marked := DetectDuplicates(all)
	// s2 è già marcata e non viene riscritta; s3 collide con s1.
	require.Equal(t, []string{"s3"}, marked)
}

func TestDetectDuplicatesNomeNFC(t *testing.T) {
	// "é" precomposto contro "e" + accento combinante.
	all := []entity.Sale{
		sale("s1", "p1", "José Verdi", "111", StatusInAttesa, 1),
		sale("s2", "p1", "José Verdi", "222", StatusInAttesa, 2),
	}
	marked := DetectDuplicates(all)
	require.Equal(t, []string{"s2"}, marked)
}
