package repository

import (
	"context"
	"database/sql"

	"github.com/vfg2006/roi-collector-api/infrastructure/database/postgres"
	"github.com/vfg2006/roi-collector-api/internal/domain"
)

// SnapshotRecorder grava a coleta e o seu registro na mesma transação
type SnapshotRecorder struct {
	conn postgres.Conn
	logs CollectionLogRepository
}

func NewSnapshotRecorder(conn postgres.Conn) *SnapshotRecorder {
	return &SnapshotRecorder{
		conn: conn,
		logs: NewCollectionLogRepository(conn),
	}
}

// Record insere a coleta e o registro. Nada é gravado se um dos dois falhar.
func (r *SnapshotRecorder) Record(ctx context.Context, snapshot *domain.Snapshot, log *domain.CollectionLog) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := insertSnapshot(ctx, tx, snapshot); err != nil {
			return err
		}
		return insertCollectionLog(ctx, tx, log)
	})
}

// RecordFailure registra uma tentativa sem coleta gravada
func (r *SnapshotRecorder) RecordFailure(ctx context.Context, log *domain.CollectionLog) error {
	return r.logs.Insert(ctx, log)
}
