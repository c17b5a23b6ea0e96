package domain

import (
	"context"
	"time"
)

// TimestampLayout is the ISO-8601 layout used for persisted timestamps.
const TimestampLayout = time.RFC3339Nano

// SearchRecord is one row of the append-only research log.
type SearchRecord struct {
	ID        int64     `json:"id"`
	Intent    string    `json:"intent"`
	Result    string    `json:"result"`
	Timestamp time.Time `json:"timestamp"`
}

type SearchRecordRepository interface {
	Append(ctx context.Context, record *SearchRecord) error
}

func NewSearchRecord(intent Intent, result string, now time.Time) *SearchRecord {
	return &SearchRecord{
		Intent:    intent.String(),
		Result:    result,
		Timestamp: now.UTC(),
	}
}

func (r *SearchRecord) FormattedTimestamp() string {
	return r.Timestamp.UTC().Format(TimestampLayout)
}
