package decorator

import (
	"sync"

	"github.com/google/uuid"
)

// Node identifies a single component of a chain.
type Node struct {
	ID uuid.UUID
	// Name is "base" for the terminal component, otherwise the augmentation kind.
	Name string
}

// Tracker observes the lifecycle of chain nodes.
// A Tracker shared by several chains must be safe for concurrent use.
type Tracker interface {
	// Acquired is called once a node has been constructed.
	Acquired(n Node)

	// Released is called once a node has been released.
	Released(n Node)
}

type nopTracker struct{}

func (nopTracker) Acquired(Node) {}

func (nopTracker) Released(Node) {}

var _ Tracker = (*CountingTracker)(nil)

// CountingTracker counts acquisitions and releases per node.
type CountingTracker struct {
	mu       sync.Mutex
	acquired map[uuid.UUID]int
	released map[uuid.UUID]int
	order    []Node
}

func NewCountingTracker() *CountingTracker {
	return &CountingTracker{
		acquired: make(map[uuid.UUID]int),
		released: make(map[uuid.UUID]int),
	}
}

func (t *CountingTracker) Acquired(n Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.acquired[n.ID]++
}

func (t *CountingTracker) Released(n Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.released[n.ID]++
	t.order = append(t.order, n)
}

// Acquisitions returns the number of nodes constructed so far.
func (t *CountingTracker) Acquisitions() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.acquired)
}

// Live returns the number of acquired nodes that have not been released.
func (t *CountingTracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	live := 0
	for id := range t.acquired {
		if t.released[id] == 0 {
			live++
		}
	}
	return live
}

// Releases returns how many times the node with the given id was released.
func (t *CountingTracker) Releases(id uuid.UUID) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.released[id]
}

// ReleaseOrder returns released nodes in the order they were released.
func (t *CountingTracker) ReleaseOrder() []Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	order := make([]Node, len(t.order))
	copy(order, t.order)
	return order
}
