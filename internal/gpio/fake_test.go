package gpio

import (
	"errors"
	"testing"
)

func TestFakeReaderRead(t *testing.T) {
	f := NewFakeReader([]Level{Low, High, High})

	want := []Level{Low, High, High, High}
	for i, w := range want {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("read %d: unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("read %d: expected %v, got %v", i, w, got)
		}
	}

	if f.Reads != len(want) {
		t.Errorf("Reads: expected %d, got %d", len(want), f.Reads)
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)

	_, err := f.Read()
	if err == nil {
		t.Error("expected error with no samples")
	}
}

func TestFakeReaderError(t *testing.T) {
	f := NewFakeReader([]Level{High})
	f.ReadError = errors.New("simulated error")

	_, err := f.Read()
	if err == nil {
		t.Fatal("expected error to be returned")
	}
	if err.Error() != "simulated error" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFakeReaderScriptedErrors(t *testing.T) {
	fault := errors.New("io fault")
	f := NewFakeReader([]Level{High, High, Low})
	f.Errors = []error{nil, fault}

	if lvl, err := f.Read(); err != nil || lvl != High {
		t.Errorf("read 0: got (%v, %v), want (HIGH, nil)", lvl, err)
	}
	if _, err := f.Read(); !errors.Is(err, fault) {
		t.Errorf("read 1: got %v, want %v", err, fault)
	}
	if lvl, err := f.Read(); err != nil || lvl != Low {
		t.Errorf("read 2: got (%v, %v), want (LOW, nil)", lvl, err)
	}
}

func TestFakeReaderClose(t *testing.T) {
	f := NewFakeReader([]Level{High})

	if f.Closed {
		t.Error("should not be closed initially")
	}

	if err := f.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	if !f.Closed {
		t.Error("should be closed after Close()")
	}
}

func TestFakeReaderReset(t *testing.T) {
	f := NewFakeReader([]Level{High, Low})

	f.Read()
	f.Reset()

	got, _ := f.Read()
	if got != High {
		t.Errorf("after reset: expected HIGH, got %v", got)
	}
}
