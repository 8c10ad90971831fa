package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"dynascore/internal/model"
)

var errNotInitialized = errors.New("store is not initialized")

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	scores      map[string]model.ScoreRecord
	validations map[string]model.ValidationRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.scores = make(map[string]model.ScoreRecord)
	s.validations = make(map[string]model.ValidationRecord)
	return nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	return s.Init(ctx)
}

func (s *MemoryStore) SaveScoreRecord(_ context.Context, rec model.ScoreRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.scores[rec.SubmissionID] = rec
	return nil
}

func (s *MemoryStore) GetScoreRecord(_ context.Context, submissionID string) (model.ScoreRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.scores[submissionID]
	return rec, ok, nil
}

func (s *MemoryStore) ListScoreRecords(_ context.Context) ([]model.ScoreRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]model.ScoreRecord, 0, len(s.scores))
	for _, rec := range s.scores {
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].SubmissionID < recs[j].SubmissionID })
	return recs, nil
}

func (s *MemoryStore) SaveValidationRecord(_ context.Context, rec model.ValidationRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errNotInitialized
	}
	s.validations[rec.SubmissionID] = rec
	return nil
}

func (s *MemoryStore) GetValidationRecord(_ context.Context, submissionID string) (model.ValidationRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.validations[submissionID]
	return rec, ok, nil
}
