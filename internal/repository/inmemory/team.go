package inmemory

import (
	"context"
	"sync"

	teamdomain "credo-app-go/internal/domain/team"
)

type TeamStore struct {
	mu      sync.RWMutex
	members []teamdomain.Member
	nextID  int64
}

func NewTeamStore() *TeamStore {
	return &TeamStore{nextID: 1}
}

func (s *TeamStore) List(ctx context.Context) ([]teamdomain.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	members := make([]teamdomain.Member, len(s.members))
	copy(members, s.members)
	return members, nil
}

func (s *TeamStore) Create(ctx context.Context, member *teamdomain.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if member.ID == 0 {
		member.ID = s.nextID
		s.nextID++
	} else if member.ID >= s.nextID {
		s.nextID = member.ID + 1
	}
	s.members = append(s.members, *member)
	return nil
}

func (s *TeamStore) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.members)), nil
}
