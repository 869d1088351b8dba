package service

import (
	"syscall"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestManager_ListenSignal(t *testing.T) {
	t.Parallel()

	logger := zerolog.Nop()
	exitCh := make(chan int, 1)

	m := NewManager(&logger)
	m.timeout = 10 * time.Millisecond
	m.exit = func(code int) { exitCh <- code }

	ctx, interrupt := m.ListenSignal()

	if m.Interrupted() {
		t.Fatal("Interrupted() before any signal")
	}

	interrupt <- syscall.SIGINT

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("context not cancelled on interrupt")
	}

	if !m.Interrupted() {
		t.Error("Interrupted() = false after signal")
	}

	select {
	case code := <-exitCh:
		if code != 0 {
			t.Errorf("exit code = %d, want 0", code)
		}
	case <-time.After(time.Second):
		t.Fatal("no exit after shutdown timeout")
	}
}
