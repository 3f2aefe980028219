package store

import (
	"sort"
	"time"

	"hotelops/internal/models"
)

// CreateChatMessage stores a new exchange with a nil response and
// returns it with a generated id and creation timestamp.
func (s *Store) CreateChatMessage(m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = newID()
	m.Timestamp = time.Now()
	m.Response = nil
	s.chatMessages = append(s.chatMessages, m)
	return m
}

// ChatMessageByID returns a copy of the message, or nil when absent.
func (s *Store) ChatMessageByID(id string) *models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.chatMessages {
		if s.chatMessages[i].ID == id {
			out := s.chatMessages[i]
			return &out
		}
	}
	return nil
}

// SetChatResponse fills in the assistant response for a pending
// message. This is the only mutation a chat message sees. Returns nil
// when the id is absent.
func (s *Store) SetChatResponse(id, response string) *models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.chatMessages {
		if s.chatMessages[i].ID != id {
			continue
		}
		s.chatMessages[i].Response = &response
		out := s.chatMessages[i]
		return &out
	}
	return nil
}

// ChatHistory returns up to limit messages for one user, newest first.
func (s *Store) ChatHistory(userID string, limit int) []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.ChatMessage{}
	for _, m := range s.chatMessages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
