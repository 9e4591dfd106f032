package db

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"policyedge/models"
)

// PolicyStore is the policy registry. Every read is scoped to an owner.
type PolicyStore struct {
	mu       sync.RWMutex
	policies []models.Policy
	nextID   int
	clock    Clock
}

// NewPolicyStore returns an empty registry whose first id is 1.
func NewPolicyStore(clock Clock) *PolicyStore {
	return &PolicyStore{nextID: 1, clock: clock}
}

// NewPolicy carries the caller-supplied fields of an upload.
type NewPolicy struct {
	OwnerID int
	Name    string
	Type    string
	Content []byte
	Notes   *string
}

// Create stores an upload with status "Uploaded", today's date and a
// preview of its content. An empty upload gets an empty preview.
func (s *PolicyStore) Create(in NewPolicy) models.Policy {
	policy := models.Policy{
		Name:           in.Name,
		Type:           in.Type,
		UserID:         in.OwnerID,
		UploadDate:     s.clock(),
		Status:         models.PolicyStatusUploaded,
		ContentPreview: ContentPreview(in.Content),
		Notes:          in.Notes,
	}

	s.mu.Lock()
	policy.ID = s.nextID
	s.nextID++
	s.policies = append(s.policies, policy)
	s.mu.Unlock()

	log.Info().
		Int("policy_id", policy.ID).
		Int("owner_id", policy.UserID).
		Str("type", policy.Type).
		Int("bytes", len(in.Content)).
		Msg("policy uploaded")
	return policy
}

// GetOwned returns the policy only if it exists and belongs to ownerID.
// Both failures yield ErrNotFound.
func (s *PolicyStore) GetOwned(ownerID, policyID int) (models.Policy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.policies {
		if p.ID == policyID && p.UserID == ownerID {
			return p, nil
		}
	}
	return models.Policy{}, fmt.Errorf("policy %d: %w", policyID, ErrNotFound)
}

// ListForOwner returns the owner's policies in upload order.
func (s *PolicyStore) ListForOwner(ownerID int) []models.Policy {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Policy, 0)
	for _, p := range s.policies {
		if p.UserID == ownerID {
			out = append(out, p)
		}
	}
	return out
}

// SummariesForOwner is ListForOwner projected to PolicySummary.
func (s *PolicyStore) SummariesForOwner(ownerID int) []models.PolicySummary {
	policies := s.ListForOwner(ownerID)
	out := make([]models.PolicySummary, 0, len(policies))
	for _, p := range policies {
		out = append(out, Summarize(p))
	}
	return out
}

// Summarize builds the list projection of a policy.
func Summarize(p models.Policy) models.PolicySummary {
	summary := models.PolicySummary{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		UserID:     p.UserID,
		UploadDate: p.UploadDate.Format(models.DateLayout),
		Status:     p.Status,
	}
	if p.ContentPreview != "" {
		preview := truncateChars(p.ContentPreview, SummaryPreviewChars)
		summary.ContentPreview = &preview
	}
	return summary
}
