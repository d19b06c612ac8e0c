package reconcile

import "fmt"

// Stats counts the work done by one mount or reconcile call.
type Stats struct {
	Visited        int // Node pairs compared
	Created        int // Host nodes created
	Replaced       int // ReplaceNode calls
	AttributesSet  int // SetAttribute calls
	ListenersAdded int // AddListener calls
	Appended       int // AppendChild calls
}

// Mutations returns the number of mutating host calls.
func (s Stats) Mutations() int {
	return s.Created + s.Replaced + s.AttributesSet + s.ListenersAdded + s.Appended
}

// Add returns the sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Visited:        s.Visited + o.Visited,
		Created:        s.Created + o.Created,
		Replaced:       s.Replaced + o.Replaced,
		AttributesSet:  s.AttributesSet + o.AttributesSet,
		ListenersAdded: s.ListenersAdded + o.ListenersAdded,
		Appended:       s.Appended + o.Appended,
	}
}

// String returns a compact summary.
func (s Stats) String() string {
	return fmt.Sprintf("visited=%d created=%d replaced=%d attrs=%d listeners=%d appended=%d",
		s.Visited, s.Created, s.Replaced, s.AttributesSet, s.ListenersAdded, s.Appended)
}
