package repository

import (
	"context"

	"github.com/mwsdigital/console-api/internal/domain/entity"
)

// SnapshotLoader carica lo stato applicativo completo. I motori di saldo
// e di report lavorano su questo snapshot, non su query ad hoc.
type SnapshotLoader interface {
	Load(ctx context.Context) (*entity.Snapshot, error)
}
