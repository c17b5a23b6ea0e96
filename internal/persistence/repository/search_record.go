package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hilthontt/sovereign/internal/domain"
	"github.com/hilthontt/sovereign/internal/persistence/db"
)

type searchRecordRepository struct {
	db *sql.DB
}

func NewSearchRecordRepository(db *sql.DB) domain.SearchRecordRepository {
	return &searchRecordRepository{
		db: db,
	}
}

func (r *searchRecordRepository) Append(ctx context.Context, record *domain.SearchRecord) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO `+db.SearchResultsTable+` (intent, result, timestamp) VALUES (?, ?, ?)`,
		record.Intent,
		record.Result,
		record.FormattedTimestamp(),
	)
	if err != nil {
		return fmt.Errorf("append search record: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		record.ID = id
	}

	return nil
}
