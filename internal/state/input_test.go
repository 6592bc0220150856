package state

import (
	"testing"

	"github.com/moonlitrapids/qr-app/internal/encode"
)

func TestInput_SetTextStoresAndNotifies(t *testing.T) {
	var fired int
	in := NewInput(encode.LevelDefault, func() { fired++ })

	in.SetText("HELLO")
	if in.Text() != "HELLO" {
		t.Fatalf("Text = %q, want %q", in.Text(), "HELLO")
	}
	if fired != 1 {
		t.Fatalf("onChange fired %d times, want 1", fired)
	}
}

func TestInput_EqualEditsAreNoOps(t *testing.T) {
	var fired int
	in := NewInput(encode.LevelDefault, func() { fired++ })

	in.SetText("HELLO")
	in.SetText("HELLO")
	in.SetText("HELLO")
	in.SetLevel(encode.LevelDefault)
	if fired != 1 {
		t.Fatalf("onChange fired %d times, want 1 (repeated identical edits must not trigger)", fired)
	}
}

func TestInput_LevelChangeNotifiesIndependently(t *testing.T) {
	var fired int
	in := NewInput(encode.LevelDefault, func() { fired++ })

	in.SetLevel(encode.LevelL)
	if in.Level() != encode.LevelL {
		t.Fatalf("Level = %v, want %v", in.Level(), encode.LevelL)
	}
	if fired != 1 {
		t.Fatalf("onChange fired %d times, want 1", fired)
	}
}

func TestInput_NilOnChange(t *testing.T) {
	in := NewInput(encode.LevelM, nil)
	in.SetText("no panic")
	if in.Text() != "no panic" {
		t.Fatalf("Text = %q, want %q", in.Text(), "no panic")
	}
}
