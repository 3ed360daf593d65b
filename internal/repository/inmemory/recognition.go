package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	recognitiondomain "credo-app-go/internal/domain/recognition"
)

// RecognitionStore is the in-memory backend used for tests and demo runs.
// The mutex serializes inserts the way the database transaction does for the
// Postgres backend.
type RecognitionStore struct {
	mu   sync.RWMutex
	recs []recognitiondomain.Recognition
}

func NewRecognitionStore() *RecognitionStore {
	return &RecognitionStore{}
}

func (s *RecognitionStore) List(ctx context.Context) ([]recognitiondomain.Recognition, error) {
	s.mu.RLock()
	recs := make([]recognitiondomain.Recognition, len(s.recs))
	copy(recs, s.recs)
	s.mu.RUnlock()

	// Newest first; ties keep the later insertion first.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}

func (s *RecognitionStore) Create(ctx context.Context, rec *recognitiondomain.Recognition) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	s.recs = append([]recognitiondomain.Recognition{*rec}, s.recs...)
	return nil
}

func (s *RecognitionStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.recs)), nil
}
