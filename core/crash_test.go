package core

import (
	"strings"
	"sync"
	"testing"
)

// TestGuardAbsorbsPanic verifies a panicking function is converted to an error
func TestGuardAbsorbsPanic(t *testing.T) {
	err := Guard("step", func() {
		panic("boom")
	})
	if err == nil {
		t.Fatal("expected error from panicking guard, got nil")
	}
	if !strings.Contains(err.Error(), "step") || !strings.Contains(err.Error(), "boom") {
		t.Errorf("expected error to name the step and the panic value, got %q", err)
	}
}

// TestGuardPassesThroughSuccess verifies a clean function yields nil
func TestGuardPassesThroughSuccess(t *testing.T) {
	ran := false
	if err := Guard("step", func() { ran = true }); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if !ran {
		t.Error("expected guarded function to run")
	}
}

// TestGoRoutesPanicToHandler verifies crashed goroutines reach the installed handler
func TestGoRoutesPanicToHandler(t *testing.T) {
	var wg sync.WaitGroup
	wg.Add(1)

	var got any
	SetCrashHandler(func(r any) {
		got = r
		wg.Done()
	})
	defer SetCrashHandler(func(r any) {})

	Go(func() { panic("in goroutine") })
	wg.Wait()

	if got != "in goroutine" {
		t.Errorf("expected handler to receive panic value, got %v", got)
	}
}

// TestGoRunsFunction verifies non-panicking functions complete normally
func TestGoRunsFunction(t *testing.T) {
	done := make(chan struct{})
	Go(func() { close(done) })
	<-done
}
