package todo

import (
	"errors"
	"testing"
)

func TestSession_ScreenFollowsGates(t *testing.T) {
	t.Parallel()

	s, err := NewSession(DemoLabels...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if s.Screen() != ScreenWelcome {
		t.Fatalf("expected welcome; got %v", s.Screen())
	}
	// The compose gate alone does not skip the welcome screen.
	s.Compose.Dismiss()
	if s.Screen() != ScreenWelcome {
		t.Fatalf("expected welcome; got %v", s.Screen())
	}
	s.Welcome.Dismiss()
	if s.Screen() != ScreenListWithForm {
		t.Fatalf("expected list+form; got %v", s.Screen())
	}
}

func TestSession_Submit(t *testing.T) {
	t.Parallel()

	s, _ := NewSession()
	if _, err := s.Submit(); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty; got %v", err)
	}

	s.Entry.SetPendingEntry("Buy milk")
	got, err := s.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Index != 0 || got.Label != "Buy milk" {
		t.Fatalf("unexpected result %#v", got)
	}
	if s.Tasks.Len() != 1 || s.Entry.PendingEntry() != "" {
		t.Fatalf("expected len 1 and cleared entry; got len=%d entry=%q", s.Tasks.Len(), s.Entry.PendingEntry())
	}
}

func TestNewSession_DoesNotSeedImplicitly(t *testing.T) {
	t.Parallel()

	s, _ := NewSession()
	if s.Tasks.Len() != 0 {
		t.Fatalf("expected empty store; got %d", s.Tasks.Len())
	}
}
