package gesture

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected and returns what it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = oldStderr }()

	fn()

	w.Close()
	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_LogsTransitions(t *testing.T) {
	c, _ := newTestController()
	c.SetDebugMode(true)

	output := captureStderr(t, func() {
		c.Dispatch(start(1, 0, 0))
		c.Dispatch(move(1, 20, 0))
		c.Dispatch(end(1))
	})

	if !strings.Contains(output, "[gesture] None -> Pan") {
		t.Errorf("expected None -> Pan transition in stderr, got: %q", output)
	}
	if !strings.Contains(output, "[gesture] Pan -> None") {
		t.Errorf("expected Pan -> None transition in stderr, got: %q", output)
	}
}

func TestDebugMode_OffIsSilent(t *testing.T) {
	c, _ := newTestController()

	output := captureStderr(t, func() {
		c.Dispatch(start(1, 0, 0))
		c.Dispatch(move(1, 20, 0))
		c.Dispatch(end(1))
	})

	if output != "" {
		t.Errorf("expected no stderr output without debug mode, got: %q", output)
	}
}

func TestDebugMode_PanicPrintsHistory(t *testing.T) {
	c, _ := newTestController()
	c.SetDebugMode(true)

	var recovered any
	output := captureStderr(t, func() {
		defer func() { recovered = recover() }()
		c.Dispatch(start(4, 12, 34))
		c.Dispatch(start(4, 12, 34))
	})

	if recovered == nil {
		t.Fatal("expected panic on duplicate start, got none")
	}
	if !strings.Contains(output, "[gesture] fatal:") {
		t.Errorf("expected fatal line in stderr, got: %q", output)
	}
	if strings.Count(output, "id=4") != 2 {
		t.Errorf("expected both events in history, got: %q", output)
	}
}

func TestDebugRing(t *testing.T) {
	var r debugRing
	if len(r.events()) != 0 {
		t.Fatal("empty ring returned events")
	}
	for i := 0; i < debugRingSize+3; i++ {
		r.push(TouchEvent{ID: ContactID(i)})
	}
	evs := r.events()
	if len(evs) != debugRingSize {
		t.Fatalf("len = %d, want %d", len(evs), debugRingSize)
	}
	if evs[0].ID != 3 || evs[len(evs)-1].ID != debugRingSize+2 {
		t.Errorf("oldest %d newest %d", evs[0].ID, evs[len(evs)-1].ID)
	}
}
