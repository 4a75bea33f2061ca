package events

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBus_SubscribePublish_TypeIsolation(t *testing.T) {
	var opened int32

	cancel := Subscribe(func(ev MatchOpened) {
		atomic.AddInt32(&opened, 1)
	})
	defer cancel()

	Publish(MatchOpened{Identifier: "A"})
	Publish(MatchOpened{Identifier: "B"})
	Publish(MatchCompleted{Identifier: "A"}) // no debe afectar

	if got := atomic.LoadInt32(&opened); got != 2 {
		t.Fatalf("want 2, got %d", got)
	}
}

func TestBus_Cancel_Unsubscribe(t *testing.T) {
	var hits int32

	cancel := Subscribe(func(MatchCompleted) {
		atomic.AddInt32(&hits, 1)
	})
	cancel() // desuscribir antes de publicar

	Publish(MatchCompleted{Identifier: "A"})
	time.Sleep(10 * time.Millisecond)

	if got := atomic.LoadInt32(&hits); got != 0 {
		t.Fatalf("want 0 after cancel, got %d", got)
	}
}

func TestBus_Count(t *testing.T) {
	before := Count[TournamentCompleted]()
	cancel := Subscribe(func(TournamentCompleted) {})
	if got := Count[TournamentCompleted](); got != before+1 {
		t.Fatalf("want %d, got %d", before+1, got)
	}
	cancel()
}

func TestBus_Concurrency_NoRaces(t *testing.T) {
	var hits int32

	cancel := Subscribe(func(MatchOpened) {
		atomic.AddInt32(&hits, 1)
	})
	defer cancel()

	const G = 50
	const N = 100
	var wg sync.WaitGroup
	wg.Add(G)
	for g := 0; g < G; g++ {
		go func() {
			defer wg.Done()
			for i := 0; i < N; i++ {
				Publish(MatchOpened{Identifier: "A"})
			}
		}()
	}
	wg.Wait()

	want := int32(G * N)
	if got := atomic.LoadInt32(&hits); got != want {
		t.Fatalf("want %d, got %d", want, got)
	}
}
