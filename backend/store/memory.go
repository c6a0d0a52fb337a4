package store

import (
	"sync"

	"codeprep/backend/models"
)

// Memory keeps records in a map. It backs the handler tests so they run
// without Postgres.
type Memory struct {
	mu    sync.Mutex
	users map[string]models.User
	next  uint
}

func NewMemory() *Memory {
	return &Memory{users: make(map[string]models.User)}
}

func (s *Memory) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	clone := user
	clone.Solved = append([]string(nil), user.Solved...)
	clone.SolvedDates = append([]string(nil), user.SolvedDates...)
	clone.Recent = append([]models.RecentActivity(nil), user.Recent...)
	return &clone, nil
}

func (s *Memory) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	user.ID = s.next
	s.users[user.Email] = *user
	return nil
}

func (s *Memory) Save(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Email] = *user
	return nil
}
