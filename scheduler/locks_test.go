package scheduler

import (
	"sync"
	"testing"
)

func TestMemorySlotLocker(t *testing.T) {
	locker := NewMemorySlotLocker()
	key := "2026-03-04|10:00|staff-ava"

	if !locker.TryAcquire(key) {
		t.Fatal("first acquire should succeed")
	}
	if locker.TryAcquire(key) {
		t.Fatal("second acquire of a held lock should fail")
	}
	// A different slot is unaffected.
	if !locker.TryAcquire("2026-03-04|11:00|staff-ava") {
		t.Fatal("other keys must be independent")
	}

	locker.Release(key)
	if !locker.TryAcquire(key) {
		t.Fatal("acquire after release should succeed")
	}
}

func TestMemorySlotLocker_Race(t *testing.T) {
	locker := NewMemorySlotLocker()
	const workers = 32

	var wg sync.WaitGroup
	var mu sync.Mutex
	acquired := 0
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if locker.TryAcquire("slot") {
				mu.Lock()
				acquired++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if acquired != 1 {
		t.Fatalf("expected exactly one winner, got %d", acquired)
	}
}
