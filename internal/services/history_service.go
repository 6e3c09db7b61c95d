// Package services – HistoryService
//
// This file implements the bounded translation-history ledger: per user, the
// most recent MaxEntries completed translations, oldest-first eviction. The
// ledger consumes a finished translation result and is consumed by the
// history-display path; it never calls the language or speech providers
// itself.
//
// Capacity is enforced by evict-before-insert: one ordered read, at most one
// delete, exactly one insert per append. The three store calls are not
// wrapped in a transaction and no lock serializes appends for a user, so two
// concurrent appends can leave the collection one over capacity. The
// overshoot is accepted and stays bounded (one eviction per append, never
// two); a cross-request lock would not serialize across service instances
// anyway.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
)

// DefaultHistoryMax is the per-user ledger capacity when none is configured.
const DefaultHistoryMax = 10

// HistoryStore is the narrow store contract the ledger is written against:
// an ordered read, a single-document delete, and an insert that assigns the
// record's id and timestamp server-side.
type HistoryStore interface {
	// List returns all of uid's records ordered by timestamp, descending
	// when desc is true.
	List(ctx context.Context, uid string, desc bool) ([]domain.HistoryRecord, error)

	// Delete removes one record by id.
	Delete(ctx context.Context, uid, id string) error

	// Insert adds a record, returning its store-assigned id. The stored
	// timestamp is the insertion time as seen by the store.
	Insert(ctx context.Context, uid string, rec domain.HistoryRecord) (string, error)
}

// HistoryService maintains the bounded per-user translation history.
type HistoryService struct {
	Store HistoryStore

	// MaxEntries caps the per-user record count after an append completes.
	MaxEntries int
}

// NewHistoryService constructs a HistoryService with the default capacity.
func NewHistoryService(store HistoryStore) *HistoryService {
	return &HistoryService{Store: store, MaxEntries: DefaultHistoryMax}
}

// capacity returns the effective cap, guarding against zero-value construction.
func (s *HistoryService) capacity() int {
	if s.MaxEntries < 1 {
		return DefaultHistoryMax
	}
	return s.MaxEntries
}

// Append records one completed translation for uid, evicting the single
// oldest record first when the ledger is at (or beyond) capacity.
//
// Validation: sourceText and translatedText must be non-empty
// (ErrValidation); an example sentence missing either half is dropped from
// the record rather than failing the append. Store failures surface as
// ErrStoreUnavailable with no retry. If the eviction committed but the
// following insert fails, the deletion stands: the ledger simply has room
// for one extra record before the next eviction, which is not treated as
// corruption.
func (s *HistoryService) Append(ctx context.Context, uid string, rec domain.HistoryRecord) error {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "Append",
		trace.WithAttributes(attribute.String("user.id", uid)),
	)
	defer span.End()

	if strings.TrimSpace(rec.SourceText) == "" || strings.TrimSpace(rec.TranslatedText) == "" {
		return fmt.Errorf("%w: sourceText and translatedText must be non-empty", ErrValidation)
	}
	rec.ExampleSentences = keepValidExamples(rec.ExampleSentences)

	// Id and timestamp are store-assigned; scrub anything the caller set.
	rec.ID = ""
	rec.Timestamp = time.Time{}

	records, err := s.Store.List(ctx, uid, false)
	if err != nil {
		return fmt.Errorf("%w: reading history: %v", ErrStoreUnavailable, err)
	}

	// At most one eviction per append, however far over capacity a race
	// has left the collection. Fixed policy, not a loop to the target size.
	if len(records) >= s.capacity() {
		oldest := records[0]
		if err := s.Store.Delete(ctx, uid, oldest.ID); err != nil {
			return fmt.Errorf("%w: evicting %s: %v", ErrStoreUnavailable, oldest.ID, err)
		}
		span.AddEvent("evicted oldest record",
			trace.WithAttributes(attribute.String("record.id", oldest.ID)))
	}

	if _, err := s.Store.Insert(ctx, uid, rec); err != nil {
		return fmt.Errorf("%w: inserting record: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// List returns uid's full history ordered by timestamp, newest-first when
// desc is true. Read-only.
func (s *HistoryService) List(ctx context.Context, uid string, desc bool) ([]domain.HistoryRecord, error) {
	tr := otel.Tracer("services/HistoryService")
	ctx, span := tr.Start(ctx, "List",
		trace.WithAttributes(
			attribute.String("user.id", uid),
			attribute.Bool("desc", desc),
		),
	)
	defer span.End()

	records, err := s.Store.List(ctx, uid, desc)
	if err != nil {
		return nil, fmt.Errorf("%w: reading history: %v", ErrStoreUnavailable, err)
	}
	return records, nil
}

// keepValidExamples filters out partially formed example sentences without
// mutating the caller's slice.
func keepValidExamples(in []domain.ExampleSentence) []domain.ExampleSentence {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.ExampleSentence, 0, len(in))
	for _, e := range in {
		if e.Valid() {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
