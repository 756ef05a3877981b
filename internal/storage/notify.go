package storage

import "sync"

// Scope identifies which collection a change notification is about.
type Scope string

const (
	ScopeCategories Scope = "categories"
	ScopeTrackers   Scope = "trackers"
	ScopeRecords    Scope = "records"
	ScopeSettings   Scope = "settings"
)

// Event describes a completed mutation.
type Event struct {
	Scope Scope
}

// notifier is a plain observer list with explicit subscribe/unsubscribe.
// Listeners are invoked synchronously, after the mutation has committed.
type notifier struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Event)
}

func (n *notifier) subscribe(fn func(Event)) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.listeners == nil {
		n.listeners = make(map[int]func(Event))
	}
	n.nextID++
	n.listeners[n.nextID] = fn
	return n.nextID
}

func (n *notifier) unsubscribe(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.listeners, id)
}

func (n *notifier) publish(e Event) {
	n.mu.Lock()
	fns := make([]func(Event), 0, len(n.listeners))
	for _, fn := range n.listeners {
		fns = append(fns, fn)
	}
	n.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
