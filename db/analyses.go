package db

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"policyedge/models"
)

// AnalysisStore is the analysis registry. Results are append-only:
// re-analysing a policy adds a new result.
type AnalysisStore struct {
	mu      sync.RWMutex
	results []models.AnalysisResult
	nextID  int
	clock   Clock
}

// NewAnalysisStore returns an empty registry whose first id is 1.
func NewAnalysisStore(clock Clock) *AnalysisStore {
	return &AnalysisStore{nextID: 1, clock: clock}
}

// Create assigns the next id and the creation time, then stores the result.
func (s *AnalysisStore) Create(result models.AnalysisResult) models.AnalysisResult {
	result.CreatedAt = s.clock()

	s.mu.Lock()
	result.ID = s.nextID
	s.nextID++
	s.results = append(s.results, result)
	s.mu.Unlock()

	log.Info().
		Int("analysis_id", result.ID).
		Int("policy_id", result.PolicyID).
		Str("analysis_type", result.AnalysisType).
		Msg("analysis created")
	return result
}

// GetByID returns a result regardless of who owns its policy.
// Ownership is enforced by the caller.
func (s *AnalysisStore) GetByID(id int) (models.AnalysisResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.results {
		if r.ID == id {
			return r, nil
		}
	}
	return models.AnalysisResult{}, fmt.Errorf("analysis %d: %w", id, ErrNotFound)
}

// CountForPolicies counts results referencing any of the given policy ids.
func (s *AnalysisStore) CountForPolicies(policyIDs map[int]struct{}) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, r := range s.results {
		if _, ok := policyIDs[r.PolicyID]; ok {
			n++
		}
	}
	return n
}
