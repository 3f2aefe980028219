package store

import "hotelops/internal/models"

// CreateUser stores a new account and returns it with a generated id.
// Username uniqueness is the seed's and caller's concern; the store
// only guarantees id uniqueness.
func (s *Store) CreateUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = newID()
	s.users = append(s.users, u)
	return u
}

// UserByID returns a copy of the user, or nil when absent.
func (s *Store) UserByID(id string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// UserByUsername returns a copy of the user, or nil when absent.
func (s *Store) UserByUsername(username string) *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u
		}
	}
	return nil
}
