package theme

import "testing"

type countingStore struct {
	MemoryStore
	writes []string
}

func (s *countingStore) Set(key, value string) {
	s.writes = append(s.writes, value)
	s.MemoryStore.Set(key, value)
}

func TestInitializeFromStorage(t *testing.T) {
	store := MemoryStore{StorageKey: "dark"}
	c := NewController(NewService(), store, SignalFunc(func() bool { return false }))

	if got := c.Initialize(); got != Dark {
		t.Errorf("Initialize() = %q, want %q", got, Dark)
	}
}

func TestStoredPreferenceWinsOverSignal(t *testing.T) {
	store := MemoryStore{}
	first := NewController(NewService(), store, nil)
	first.Initialize()
	first.Toggle() // light -> dark, persisted

	for _, prefersDark := range []bool{true, false} {
		pd := prefersDark
		c := NewController(NewService(), store, SignalFunc(func() bool { return pd }))
		if got := c.Initialize(); got != Dark {
			t.Errorf("signal=%v: Initialize() = %q, want %q", pd, got, Dark)
		}
	}
}

func TestInitializeFallsBackToSignal(t *testing.T) {
	c := NewController(NewService(), MemoryStore{}, SignalFunc(func() bool { return true }))
	if got := c.Initialize(); got != Dark {
		t.Errorf("Initialize() = %q, want %q", got, Dark)
	}
}

func TestInitializeMalformedStorage(t *testing.T) {
	store := MemoryStore{StorageKey: "purple"}
	c := NewController(NewService(), store, SignalFunc(func() bool { return true }))
	if got := c.Initialize(); got != Dark {
		t.Errorf("Initialize() = %q, want signal fallback %q", got, Dark)
	}

	c = NewController(NewService(), store, nil)
	if got := c.Initialize(); got != Light {
		t.Errorf("Initialize() = %q, want default %q", got, Light)
	}
}

func TestInitializeRunsOnce(t *testing.T) {
	calls := 0
	c := NewController(NewService(), nil, SignalFunc(func() bool {
		calls++
		return true
	}))
	c.Initialize()
	c.Initialize()
	if calls != 1 {
		t.Errorf("signal read %d times, want 1", calls)
	}
}

func TestInitializeDoesNotPersist(t *testing.T) {
	store := &countingStore{MemoryStore: MemoryStore{}}
	NewController(NewService(), store, SignalFunc(func() bool { return true })).Initialize()
	if len(store.writes) != 0 {
		t.Errorf("Initialize wrote %v, want no writes", store.writes)
	}
}

func TestToggleTwiceFromDark(t *testing.T) {
	store := &countingStore{MemoryStore: MemoryStore{StorageKey: "dark"}}
	c := NewController(NewService(), store, nil)
	c.Initialize()

	if got := c.Toggle(); got != Light {
		t.Fatalf("first Toggle() = %q, want %q", got, Light)
	}
	if got := c.Toggle(); got != Dark {
		t.Fatalf("second Toggle() = %q, want %q", got, Dark)
	}
	if c.Active() != Dark {
		t.Errorf("Active() = %q, want %q", c.Active(), Dark)
	}
	if v, _ := store.Get(StorageKey); v != "dark" {
		t.Errorf("persisted %q, want %q", v, "dark")
	}
	if len(store.writes) != 2 || store.writes[1] != "dark" {
		t.Errorf("writes = %v, want final write dark", store.writes)
	}
}

func TestSubscribersSeeEveryApply(t *testing.T) {
	svc := NewService()
	var applied []Preference
	unsubscribe := svc.Subscribe(func(p Preference) { applied = append(applied, p) })

	c := NewController(svc, MemoryStore{}, nil)
	c.Initialize()
	c.Toggle()
	unsubscribe()
	c.Toggle()

	want := []Preference{Light, Dark}
	if len(applied) != len(want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	for i := range want {
		if applied[i] != want[i] {
			t.Errorf("applied[%d] = %q, want %q", i, applied[i], want[i])
		}
	}
}

func TestParseAndClass(t *testing.T) {
	if _, ok := Parse("Dark"); ok {
		t.Error("Parse is case sensitive")
	}
	if p, ok := Parse("light"); !ok || p != Light {
		t.Errorf("Parse(light) = %q, %v", p, ok)
	}
	if Class(Dark) != "dark" || Class(Light) != "light" {
		t.Errorf("Class mismatch: %q %q", Class(Dark), Class(Light))
	}
}
