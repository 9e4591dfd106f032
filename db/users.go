package db

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"policyedge/models"
)

// UserStore is the user directory.
type UserStore struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int
}

// NewUserStore returns an empty directory whose first id is 1.
func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create registers a user under the next sequential id.
// The email check and the insert happen under one lock so two concurrent
// registrations of the same email cannot both succeed.
func (s *UserStore) Create(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.findByEmail(user.Email); found {
		return models.User{}, fmt.Errorf("register %q: %w", user.Email, ErrEmailTaken)
	}

	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, user)

	log.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

// GetByEmail returns the first user with exactly this email.
func (s *UserStore) GetByEmail(email string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findByEmail(email)
}

// GetByID returns the user with the given id.
func (s *UserStore) GetByID(id int) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Authenticate returns the user only if the email exists and the stored
// password equals the supplied one byte for byte.
func (s *UserStore) Authenticate(email, password string) (models.User, bool) {
	user, found := s.GetByEmail(email)
	if !found || user.Password != password {
		return models.User{}, false
	}
	return user, true
}

// findByEmail must be called with s.mu held.
func (s *UserStore) findByEmail(email string) (models.User, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}
