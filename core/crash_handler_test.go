package core

import (
	"sync"
	"testing"
)

func TestRestoreTerminal_RunsOnce(t *testing.T) {
	calls := 0
	SetRestore(func() { calls++ })

	restoreTerminal()
	restoreTerminal()

	if calls != 1 {
		t.Errorf("Expected restore hook to run once, got %d", calls)
	}
}

func TestHandleCrash_NilIsNoop(t *testing.T) {
	calls := 0
	SetRestore(func() { calls++ })
	defer SetRestore(nil)

	HandleCrash(nil)

	if calls != 0 {
		t.Error("Nil recover value should not restore the terminal")
	}
}

func TestGo_Runs(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)
	ran := false
	Go(func() {
		ran = true
		wg.Done()
	})
	wg.Wait()
	if !ran {
		t.Error("Expected goroutine to run")
	}
}
