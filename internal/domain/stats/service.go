package stats

import "context"

// Streak is a product placeholder; no variant of the app computes it from
// recognition history.
const Streak = 7

type Counter interface {
	Count(ctx context.Context) (int64, error)
}

type Summary struct {
	TotalSent     int64 `json:"totalSent"`
	TotalReceived int64 `json:"totalReceived"`
	TeamMembers   int64 `json:"teamMembers"`
	Streak        int   `json:"streak"`
}

type Service struct {
	recognitions Counter
	members      Counter
}

func NewService(recognitions, members Counter) *Service {
	return &Service{recognitions: recognitions, members: members}
}

// Compute derives the summary fresh on every call; nothing is cached.
// TotalSent and TotalReceived are deliberately equal (the app has no
// current-user concept to split them by).
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	total, err := s.recognitions.Count(ctx)
	if err != nil {
		return nil, err
	}

	members, err := s.members.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalSent:     total,
		TotalReceived: total,
		TeamMembers:   members,
		Streak:        Streak,
	}, nil
}
