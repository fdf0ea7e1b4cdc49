package bsp

import (
	"errors"
	"testing"
)

func TestRunBringUp_MandatoryFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	var ran []string
	var guard handleGuard
	var released []string
	guard.add(func() { released = append(released, "a") })
	guard.add(func() { released = append(released, "b") })

	steps := []bringUpStep{
		{name: "one", run: func() error { ran = append(ran, "one"); return nil }},
		{name: "two", run: func() error { ran = append(ran, "two"); return boom }},
		{name: "three", run: func() error { ran = append(ran, "three"); return nil }},
	}
	err := runBringUp(Discard, "test", steps, &guard)
	if !errors.Is(err, boom) {
		t.Fatalf("runBringUp = %v; want wrapped boom", err)
	}
	if len(ran) != 2 {
		t.Fatalf("ran %v; want steps one and two only", ran)
	}
	if len(released) != 2 || released[0] != "b" || released[1] != "a" {
		t.Fatalf("released %v; want reverse order b, a", released)
	}
	// A second release must be a no-op.
	guard.release()
	if len(released) != 2 {
		t.Fatalf("released %v after second release; want unchanged", released)
	}
}

func TestRunBringUp_OptionalFailureContinues(t *testing.T) {
	var ran []string
	var guard handleGuard
	steps := []bringUpStep{
		{name: "one", optional: true, run: func() error { return errors.New("nope") }},
		{name: "two", run: func() error { ran = append(ran, "two"); return nil }},
	}
	if err := runBringUp(Discard, "test", steps, &guard); err != nil {
		t.Fatalf("runBringUp: %v", err)
	}
	if len(ran) != 1 || ran[0] != "two" {
		t.Fatalf("ran %v; want the mandatory step to run", ran)
	}
}

func TestRunBringUp_StepNameInError(t *testing.T) {
	var guard handleGuard
	steps := []bringUpStep{
		{name: "display new", run: func() error { return errors.New("refused") }},
	}
	err := runBringUp(Discard, "core s3", steps, &guard)
	if err == nil {
		t.Fatal("expected error")
	}
	if got, want := err.Error(), "core s3: display new: refused"; got != want {
		t.Fatalf("error = %q; want %q", got, want)
	}
}
