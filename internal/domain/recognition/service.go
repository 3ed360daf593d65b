package recognition

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const DefaultPoints = 25

// Notifier receives every successfully created recognition. Delivery is
// best-effort; failures never reach the create caller.
type Notifier interface {
	Publish(rec Recognition)
}

type noopNotifier struct{}

func (noopNotifier) Publish(Recognition) {}

type Service struct {
	repo     Repository
	notifier Notifier
}

func NewService(repo Repository, notifier Notifier) *Service {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	return &Service{repo: repo, notifier: notifier}
}

type CreateInput struct {
	FromUser string `json:"from_user"`
	ToUser   string `json:"to_user"`
	Message  string `json:"message"`
	Value    string `json:"value"`
	Points   *int   `json:"points"`
}

func (s *Service) List(ctx context.Context) ([]Recognition, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Recognition, error) {
	input.FromUser = strings.TrimSpace(input.FromUser)
	input.ToUser = strings.TrimSpace(input.ToUser)
	input.Message = strings.TrimSpace(input.Message)
	input.Value = strings.TrimSpace(input.Value)

	if input.FromUser == "" {
		return nil, missingField("from_user")
	}
	if input.ToUser == "" {
		return nil, missingField("to_user")
	}
	if input.Message == "" {
		return nil, missingField("message")
	}
	if input.Value == "" {
		return nil, missingField("value")
	}

	points := DefaultPoints
	if input.Points != nil {
		if *input.Points <= 0 {
			return nil, &ValidationError{Field: "points", Reason: "must be a positive integer"}
		}
		points = *input.Points
	}

	rec := Recognition{
		ID:       uuid.NewString(),
		FromUser: input.FromUser,
		ToUser:   input.ToUser,
		Message:  input.Message,
		Value:    input.Value,
		Points:   points,
	}

	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}

	s.notifier.Publish(rec)
	return &rec, nil
}

// SeedIfEmpty inserts the given records only when the store holds no rows.
// It runs once at startup, so no cross-process guard is needed.
func (s *Service) SeedIfEmpty(ctx context.Context, records []Recognition) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i := range records {
		rec := records[i]
		if rec.ID == "" {
			rec.ID = uuid.NewString()
		}
		if err := s.repo.Create(ctx, &rec); err != nil {
			return err
		}
	}
	return nil
}
