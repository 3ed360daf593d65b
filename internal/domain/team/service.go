package team

import "context"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Member, error) {
	return s.repo.List(ctx)
}

// SeedIfEmpty inserts the given members only when the directory is empty.
func (s *Service) SeedIfEmpty(ctx context.Context, members []Member) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range members {
		member := members[i]
		member.ID = 0
		if err := s.repo.Create(ctx, &member); err != nil {
			return err
		}
	}
	return nil
}
