package stats

import (
	"context"
	"errors"
	"testing"
)

type fixedCounter struct {
	count int64
	err   error
}

func (c fixedCounter) Count(ctx context.Context) (int64, error) {
	return c.count, c.err
}

func TestComputeSummary(t *testing.T) {
	service := NewService(fixedCounter{count: 2}, fixedCounter{count: 5})

	summary, err := service.Compute(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if summary.TotalSent != 2 || summary.TotalReceived != 2 {
		t.Fatalf("expected totals 2/2, got %d/%d", summary.TotalSent, summary.TotalReceived)
	}
	if summary.TotalSent != summary.TotalReceived {
		t.Fatal("totalSent and totalReceived must be equal")
	}
	if summary.TeamMembers != 5 {
		t.Fatalf("expected 5 team members, got %d", summary.TeamMembers)
	}
	if summary.Streak != Streak {
		t.Fatalf("expected streak %d, got %d", Streak, summary.Streak)
	}
}

func TestComputePropagatesErrors(t *testing.T) {
	storeErr := errors.New("store down")

	if _, err := NewService(fixedCounter{err: storeErr}, fixedCounter{}).Compute(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected recognition count error, got %v", err)
	}
	if _, err := NewService(fixedCounter{}, fixedCounter{err: storeErr}).Compute(context.Background()); !errors.Is(err, storeErr) {
		t.Fatalf("expected member count error, got %v", err)
	}
}
