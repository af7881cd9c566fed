package history

import "testing"

func TestNewStartsAtInitialPath(t *testing.T) {
	if got := New("/profile").Location(); got != "/profile" {
		t.Errorf("Location() = %q, want /profile", got)
	}
	if got := New("").Location(); got != "/" {
		t.Errorf("empty initial path Location() = %q, want /", got)
	}
}

func TestPushDropsForwardEntries(t *testing.T) {
	h := New("/")
	h.Push("/profile")
	h.Push("/settings")
	h.Back() // at /profile
	h.Push("/")

	// /settings must be gone: forward is a no-op.
	h.Forward()
	if got := h.Location(); got != "/" {
		t.Errorf("Location() = %q, want /", got)
	}
	if h.Length() != 3 {
		t.Errorf("Length() = %d, want 3", h.Length())
	}
}

func TestBackForwardEdgesAreNoOps(t *testing.T) {
	h := New("/")
	h.Back()
	if h.Location() != "/" {
		t.Error("back at oldest entry moved the cursor")
	}
	h.Forward()
	if h.Location() != "/" {
		t.Error("forward at newest entry moved the cursor")
	}
}

func TestReplaceOverwritesInPlace(t *testing.T) {
	h := New("/")
	h.Push("/profile")
	h.Replace("/settings")

	if got := h.Location(); got != "/settings" {
		t.Errorf("Location() = %q, want /settings", got)
	}
	h.Back()
	if got := h.Location(); got != "/" {
		t.Errorf("after back Location() = %q, want /", got)
	}
}

func TestSubscribersSeeBackAndForwardOnly(t *testing.T) {
	h := New("/")
	var got []string
	id := h.Subscribe(func(path string) { got = append(got, path) })

	h.Push("/profile")
	h.Replace("/settings")
	if len(got) != 0 {
		t.Fatalf("push/replace notified subscribers: %v", got)
	}

	h.Back()
	h.Forward()
	if len(got) != 2 || got[0] != "/" || got[1] != "/settings" {
		t.Fatalf("notifications = %v, want [/ /settings]", got)
	}

	h.Unsubscribe(id)
	h.Back()
	if len(got) != 2 {
		t.Error("unsubscribed listener still notified")
	}

	// Unknown ids are ignored.
	h.Unsubscribe(99)
}
