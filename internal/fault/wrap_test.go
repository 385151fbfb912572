package fault

import (
	"errors"
	"io/fs"
	"syscall"
	"testing"
)

func TestWrapPassesResultThrough(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)

	double := Wrap(h, func() (int, error) { return 21 * 2, nil })

	if got := double(); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if n := len(rec.all()); n != 0 {
		t.Errorf("got %d events on success, want 0", n)
	}
}

func TestWrapAbsorbsError(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)

	load := Wrap(h, func() (string, error) {
		return "", &fs.PathError{Op: "open", Path: "run/metrics.jsonl", Err: syscall.ENOENT}
	})

	if got := load(); got != "" {
		t.Errorf("got %q, want zero value", got)
	}

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Category != CategoryFilesystem {
		t.Errorf("Category = %q, want %q", events[0].Category, CategoryFilesystem)
	}
	if events[0].Severity != SeverityError {
		t.Errorf("Severity = %v, want SeverityError", events[0].Severity)
	}
}

func TestWrapAbsorbsPanic(t *testing.T) {
	tests := []struct {
		name         string
		panicWith    any
		wantCategory string
		wantSev      Severity
	}{
		{"string panic", "stale handle", CategoryException, SeverityError},
		{"error panic", errors.New("stale handle"), CategoryException, SeverityError},
		{"opaque panic", 7, CategoryUnknown, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			rec := &recordObserver{}
			h.AddObserver(rec.observe)

			boom := Wrap(h, func() (int, error) { panic(tt.panicWith) })

			if got := boom(); got != 0 {
				t.Errorf("got %d, want zero value", got)
			}

			events := rec.all()
			if len(events) != 1 {
				t.Fatalf("got %d events, want 1", len(events))
			}
			if events[0].Category != tt.wantCategory {
				t.Errorf("Category = %q, want %q", events[0].Category, tt.wantCategory)
			}
			if events[0].Severity != tt.wantSev {
				t.Errorf("Severity = %v, want %v", events[0].Severity, tt.wantSev)
			}
		})
	}
}

func TestWrapClassifiesRuntimePanic(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)

	var table map[string]int
	poke := WrapFunc(h, func() error {
		table["loss"] = 1 // nil map write
		return nil
	})
	poke()

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Category != CategoryRuntime {
		t.Errorf("Category = %q, want %q", events[0].Category, CategoryRuntime)
	}
	if events[0].Severity != SeverityError {
		t.Errorf("Severity = %v, want SeverityError", events[0].Severity)
	}
}

func TestWrapFuncAbsorbsError(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)

	sync := WrapFunc(h, func() error { return errors.New("flush failed") })
	sync() // must not panic or propagate

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Message != "flush failed" {
		t.Errorf("Message = %q, want %q", events[0].Message, "flush failed")
	}
}

func TestWrapOriginIsCallSite(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)

	fail := Wrap(h, func() (int, error) { return 0, errors.New("nope") })
	fail()

	events := rec.all()
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if got := events[0].Origin.Short(); got == "unknown" {
		t.Error("origin not captured")
	} else if want := "wrap_test.go"; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("Origin = %q, want it in %s", got, want)
	}
}

func TestPanicOnCriticalRepanics(t *testing.T) {
	h := NewHandler()
	rec := &recordObserver{}
	h.AddObserver(rec.observe)
	h.SetPanicOnCritical(true)

	boom := WrapFunc(h, func() error { panic(277) })

	defer func() {
		v := recover()
		if v == nil {
			t.Fatal("expected the critical panic to propagate")
		}
		if v != 277 {
			t.Errorf("recovered %v, want original value 277", v)
		}
		// The event is still published before re-raising.
		if n := len(rec.all()); n != 1 {
			t.Errorf("got %d events, want 1", n)
		}
	}()
	boom()
}

func TestPanicOnCriticalIgnoresNonCritical(t *testing.T) {
	h := NewHandler()
	h.SetPanicOnCritical(true)

	boom := WrapFunc(h, func() error { panic("named failure") })
	boom() // Error severity: absorbed even with escalation on

	if t.Failed() {
		t.FailNow()
	}
}
