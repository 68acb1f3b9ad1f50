// Package theme tracks the light/dark presentation preference of a page.
package theme

// Preference is the presentation mode of the page.
type Preference string

const (
	Light Preference = "light"
	Dark  Preference = "dark"
)

// StorageKey is the key the preference is persisted under.
const StorageKey = "theme"

// Parse reports whether s names a known preference.
func Parse(s string) (Preference, bool) {
	switch Preference(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// Opposite returns the other preference.
func (p Preference) Opposite() Preference {
	if p == Dark {
		return Light
	}
	return Dark
}

func (p Preference) String() string { return string(p) }

// Class returns the class written on the root element for p.
func Class(p Preference) string {
	if p == Dark {
		return "dark"
	}
	return "light"
}

// Store persists string values under fixed keys.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
}

// Signal reports whether the platform prefers a dark presentation.
type Signal interface {
	PrefersDark() bool
}

// SignalFunc adapts a plain function to a Signal.
type SignalFunc func() bool

func (f SignalFunc) PrefersDark() bool { return f() }

// MemoryStore is a map-backed Store.
type MemoryStore map[string]string

func (m MemoryStore) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryStore) Set(key, value string) { m[key] = value }

// Service holds the active preference and notifies subscribers whenever it
// is set. Consumers read the rendering mode through it. Not safe for
// concurrent use; each page owns its own Service.
type Service struct {
	current Preference
	subs    map[int]func(Preference)
	nextID  int
}

// NewService returns a Service whose active preference is Light.
func NewService() *Service {
	return &Service{current: Light, subs: make(map[int]func(Preference))}
}

// Get returns the active preference.
func (s *Service) Get() Preference { return s.current }

// Set makes p active and notifies every subscriber, even when p is unchanged.
func (s *Service) Set(p Preference) {
	s.current = p
	for id := 0; id < s.nextID; id++ {
		if fn, ok := s.subs[id]; ok {
			fn(p)
		}
	}
}

// Subscribe registers fn to be called on every Set. The returned function
// removes the subscription.
func (s *Service) Subscribe(fn func(Preference)) func() {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

// Controller resolves the preference at page load and flips it on demand.
type Controller struct {
	svc         *Service
	store       Store
	signal      Signal
	initialized bool
}

// NewController wires a Controller. signal may be nil.
func NewController(svc *Service, store Store, signal Signal) *Controller {
	return &Controller{svc: svc, store: store, signal: signal}
}

// Initialize resolves the preference from storage, falling back to the
// platform signal and then Light, and applies it. Only the first call reads
// anything; later calls return the active preference.
func (c *Controller) Initialize() Preference {
	if c.initialized {
		return c.svc.Get()
	}
	c.initialized = true
	c.svc.Set(c.resolve())
	return c.svc.Get()
}

func (c *Controller) resolve() Preference {
	if c.store != nil {
		if raw, ok := c.store.Get(StorageKey); ok {
			if p, ok := Parse(raw); ok {
				return p
			}
		}
	}
	if c.signal != nil && c.signal.PrefersDark() {
		return Dark
	}
	return Light
}

// Toggle flips the active preference, applies it and persists it.
func (c *Controller) Toggle() Preference {
	next := c.svc.Get().Opposite()
	c.svc.Set(next)
	if c.store != nil {
		c.store.Set(StorageKey, next.String())
	}
	return next
}

// Active returns the preference currently applied.
func (c *Controller) Active() Preference { return c.svc.Get() }
