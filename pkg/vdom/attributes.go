package vdom

// Event is delivered to listeners on dispatch.
// Payload is opaque here; decoding it is up to the handler.
type Event struct {
	Name    string
	Payload string
}

// Handler is an event listener callback.
type Handler func(Event)

// Attributes is an ordered string map with concatenating merges.
// The zero value is ready to use.
type Attributes struct {
	keys   []string
	values map[string]string
}

// Merge contributes value to key. An existing value is extended, never
// replaced: merging "a" then "b" yields "ab".
func (a *Attributes) Merge(key, value string) {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	if existing, ok := a.values[key]; ok {
		a.values[key] = existing + value
		return
	}
	a.keys = append(a.keys, key)
	a.values[key] = value
}

// Get returns the value for key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attributes) Has(key string) bool {
	_, ok := a.Get(key)
	return ok
}

// Len returns the number of distinct keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the keys in first-insertion order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Each calls fn for every key/value pair in insertion order.
func (a *Attributes) Each(fn func(key, value string)) {
	if a == nil {
		return
	}
	for _, k := range a.keys {
		fn(k, a.values[k])
	}
}

func (a *Attributes) clone() *Attributes {
	out := &Attributes{}
	a.Each(out.Merge)
	return out
}

// Listeners is an ordered map from event name to the handlers registered
// for it. The zero value is ready to use.
type Listeners struct {
	names    []string
	handlers map[string][]Handler
}

// Add registers h for name after any handlers already present.
func (l *Listeners) Add(name string, h Handler) {
	if l.handlers == nil {
		l.handlers = make(map[string][]Handler)
	}
	if _, ok := l.handlers[name]; !ok {
		l.names = append(l.names, name)
	}
	l.handlers[name] = append(l.handlers[name], h)
}

// Handlers returns the handlers for name in registration order.
func (l *Listeners) Handlers(name string) []Handler {
	if l == nil {
		return nil
	}
	return l.handlers[name]
}

// Has reports whether any handler is registered for name.
func (l *Listeners) Has(name string) bool {
	return len(l.Handlers(name)) > 0
}

// Len returns the number of distinct event names.
func (l *Listeners) Len() int {
	if l == nil {
		return 0
	}
	return len(l.names)
}

// Names returns the event names in first-registration order.
func (l *Listeners) Names() []string {
	if l == nil {
		return nil
	}
	out := make([]string, len(l.names))
	copy(out, l.names)
	return out
}

// Each calls fn for every event name and its handlers.
func (l *Listeners) Each(fn func(name string, handlers []Handler)) {
	if l == nil {
		return
	}
	for _, n := range l.names {
		fn(n, l.handlers[n])
	}
}

// Dispatch invokes every handler registered for ev.Name in registration
// order and returns how many ran.
func (l *Listeners) Dispatch(ev Event) int {
	hs := l.Handlers(ev.Name)
	for _, h := range hs {
		h(ev)
	}
	return len(hs)
}

func (l *Listeners) clone() *Listeners {
	out := &Listeners{}
	l.Each(func(name string, hs []Handler) {
		for _, h := range hs {
			out.Add(name, h)
		}
	})
	return out
}
