// Package repo – translation history repository.
//
// Persistence for the bounded history ledger. The three operations mirror
// the narrow store contract the ledger is written against: an ordered read,
// a single-document delete, and an insert with store-assigned id and server
// timestamp. Capacity enforcement lives in the service layer, not here.
package repo

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/flipcymru/flipcymru-backend/internal/domain"
	"github.com/flipcymru/flipcymru-backend/internal/utils"
)

// ListHistory returns every history record for uid ordered by timestamp,
// ascending or descending. An empty collection yields an empty slice.
func ListHistory(ctx context.Context, fs *firestore.Client, namespace, uid string, dir firestore.Direction) ([]domain.HistoryRecord, error) {
	col := userCollection(fs, namespace, uid, colTranslationHistory)
	it := col.OrderBy("timestamp", dir).Documents(ctx)
	defer it.Stop()

	out := []domain.HistoryRecord{}
	for {
		doc, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var rec domain.HistoryRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, err
		}
		rec.ID = doc.Ref.ID
		rec.Timestamp = utils.UTC(rec.Timestamp)
		out = append(out, rec)
	}
	return out, nil
}

// DeleteHistory removes a single history record by document id.
func DeleteHistory(ctx context.Context, fs *firestore.Client, namespace, uid, id string) error {
	_, err := userCollection(fs, namespace, uid, colTranslationHistory).Doc(id).Delete(ctx)
	return err
}

// InsertHistory adds a new record with a store-assigned document id. The
// record's zero Timestamp is stamped server-side via the serverTimestamp
// mapping on domain.HistoryRecord.
func InsertHistory(ctx context.Context, fs *firestore.Client, namespace, uid string, rec domain.HistoryRecord) (string, error) {
	ref, _, err := userCollection(fs, namespace, uid, colTranslationHistory).Add(ctx, rec)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}
