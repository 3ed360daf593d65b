package recognition

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeRecognitionRepo struct {
	recs      []Recognition
	createErr error
}

func (r *fakeRecognitionRepo) List(ctx context.Context) ([]Recognition, error) {
	out := make([]Recognition, len(r.recs))
	copy(out, r.recs)
	return out, nil
}

func (r *fakeRecognitionRepo) Create(ctx context.Context, rec *Recognition) error {
	if r.createErr != nil {
		return r.createErr
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	r.recs = append(r.recs, *rec)
	return nil
}

func (r *fakeRecognitionRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.recs)), nil
}

type captureNotifier struct {
	published []Recognition
}

func (n *captureNotifier) Publish(rec Recognition) {
	n.published = append(n.published, rec)
}

func validInput() CreateInput {
	return CreateInput{
		FromUser: "Sarah Chen",
		ToUser:   "Mike Johnson",
		Message:  "Great work on the project launch!",
		Value:    "Excellence",
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	repo := &fakeRecognitionRepo{}
	service := NewService(repo, nil)

	seen := make(map[string]bool)
	var last time.Time

	for i := 0; i < 5; i++ {
		rec, err := service.Create(context.Background(), validInput())
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if rec.ID == "" {
			t.Fatal("expected id to be assigned")
		}
		if seen[rec.ID] {
			t.Fatalf("duplicate id %q", rec.ID)
		}
		seen[rec.ID] = true

		if rec.CreatedAt.IsZero() {
			t.Fatal("expected created_at to be assigned")
		}
		if rec.CreatedAt.Before(last) {
			t.Fatalf("created_at went backwards: %v before %v", rec.CreatedAt, last)
		}
		last = rec.CreatedAt
	}
}

func TestCreateMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		input CreateInput
		field string
	}{
		{"missing from_user", CreateInput{ToUser: "B", Message: "m", Value: "v"}, "from_user"},
		{"missing to_user", CreateInput{FromUser: "A", Message: "m", Value: "v"}, "to_user"},
		{"missing message", CreateInput{FromUser: "A", ToUser: "B", Value: "v"}, "message"},
		{"missing value", CreateInput{FromUser: "A", ToUser: "B", Message: "m"}, "value"},
		{"whitespace message", CreateInput{FromUser: "A", ToUser: "B", Message: "   ", Value: "v"}, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeRecognitionRepo{}
			service := NewService(repo, nil)

			_, err := service.Create(context.Background(), tc.input)

			var validation *ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validation.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, validation.Field)
			}
			if len(repo.recs) != 0 {
				t.Fatalf("store changed on invalid input: %d rows", len(repo.recs))
			}
		})
	}
}

func TestCreateDefaultsPoints(t *testing.T) {
	repo := &fakeRecognitionRepo{}
	service := NewService(repo, nil)

	rec, err := service.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Points != DefaultPoints {
		t.Fatalf("expected default points %d, got %d", DefaultPoints, rec.Points)
	}

	input := validInput()
	points := 50
	input.Points = &points
	rec, err = service.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Points != 50 {
		t.Fatalf("expected points 50, got %d", rec.Points)
	}
}

func TestCreateRejectsNonPositivePoints(t *testing.T) {
	for _, points := range []int{0, -5} {
		repo := &fakeRecognitionRepo{}
		service := NewService(repo, nil)

		input := validInput()
		input.Points = &points

		_, err := service.Create(context.Background(), input)

		var validation *ValidationError
		if !errors.As(err, &validation) {
			t.Fatalf("points=%d: expected ValidationError, got %v", points, err)
		}
		if len(repo.recs) != 0 {
			t.Fatalf("points=%d: store changed on invalid input", points)
		}
	}
}

func TestCreatePublishesToNotifier(t *testing.T) {
	repo := &fakeRecognitionRepo{}
	notifier := &captureNotifier{}
	service := NewService(repo, notifier)

	rec, err := service.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(notifier.published) != 1 {
		t.Fatalf("expected 1 published record, got %d", len(notifier.published))
	}
	if notifier.published[0].ID != rec.ID {
		t.Fatalf("published record %q does not match returned record %q", notifier.published[0].ID, rec.ID)
	}
}

func TestCreateDoesNotPublishOnStoreError(t *testing.T) {
	repo := &fakeRecognitionRepo{createErr: errors.New("disk full")}
	notifier := &captureNotifier{}
	service := NewService(repo, notifier)

	if _, err := service.Create(context.Background(), validInput()); err == nil {
		t.Fatal("expected error")
	}
	if len(notifier.published) != 0 {
		t.Fatalf("expected no publish on store error, got %d", len(notifier.published))
	}
}

func TestSeedIfEmptyIdempotent(t *testing.T) {
	repo := &fakeRecognitionRepo{}
	service := NewService(repo, nil)

	samples := SampleRecognitions()
	if err := service.SeedIfEmpty(context.Background(), samples); err != nil {
		t.Fatalf("first seed: %v", err)
	}
	if err := service.SeedIfEmpty(context.Background(), samples); err != nil {
		t.Fatalf("second seed: %v", err)
	}

	if len(repo.recs) != len(samples) {
		t.Fatalf("expected %d rows after double seed, got %d", len(samples), len(repo.recs))
	}
	for _, rec := range repo.recs {
		if rec.ID == "" {
			t.Fatal("seeded record missing id")
		}
	}
}
