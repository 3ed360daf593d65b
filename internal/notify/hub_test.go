package notify

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"credo-app-go/internal/domain/recognition"
	"credo-app-go/pkg/logger"
)

func testLogger() logger.Logger {
	return logger.New(io.Discard, slog.LevelError, "text")
}

func TestPublishReachesSubscribersInOrder(t *testing.T) {
	hub := NewHub(testLogger())

	var order []string
	hub.Subscribe(func(recognition.Recognition) { order = append(order, "first") })
	hub.Subscribe(func(recognition.Recognition) { order = append(order, "second") })
	hub.Subscribe(func(recognition.Recognition) { order = append(order, "third") })

	hub.Publish(recognition.Recognition{ID: "r1"})

	if len(order) != 3 || order[0] != "first" || order[1] != "second" || order[2] != "third" {
		t.Fatalf("unexpected delivery order: %v", order)
	}
}

func TestUnsubscribedObserverReceivesNothing(t *testing.T) {
	hub := NewHub(testLogger())

	var got []recognition.Recognition
	unsubscribe := hub.Subscribe(func(rec recognition.Recognition) { got = append(got, rec) })

	hub.Publish(recognition.Recognition{ID: "before"})
	unsubscribe()
	hub.Publish(recognition.Recognition{ID: "after"})

	if len(got) != 1 || got[0].ID != "before" {
		t.Fatalf("expected only the pre-unsubscribe event, got %v", got)
	}
	if hub.Len() != 0 {
		t.Fatalf("expected empty observer set, got %d", hub.Len())
	}

	// Second call is a no-op.
	unsubscribe()
}

func TestLateSubscriberMissesEarlierEvents(t *testing.T) {
	hub := NewHub(testLogger())

	hub.Publish(recognition.Recognition{ID: "early"})

	var got []recognition.Recognition
	hub.Subscribe(func(rec recognition.Recognition) { got = append(got, rec) })

	if len(got) != 0 {
		t.Fatalf("late subscriber saw replayed events: %v", got)
	}
}

func TestObserverPanicIsIsolated(t *testing.T) {
	hub := NewHub(testLogger())

	hub.Subscribe(func(recognition.Recognition) { panic("bad observer") })

	delivered := false
	hub.Subscribe(func(recognition.Recognition) { delivered = true })

	hub.Publish(recognition.Recognition{ID: "r1"})

	if !delivered {
		t.Fatal("panic in one observer blocked delivery to the next")
	}
}

func TestConcurrentSubscribeAndPublish(t *testing.T) {
	hub := NewHub(testLogger())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unsubscribe := hub.Subscribe(func(recognition.Recognition) {})
			hub.Publish(recognition.Recognition{ID: "r"})
			unsubscribe()
		}()
	}
	wg.Wait()

	if hub.Len() != 0 {
		t.Fatalf("expected all observers removed, got %d", hub.Len())
	}
}
