// Package registry implements the instrument registry: a
// concurrency-safe, lazily-populated lookup from instrument name to
// its Book. Entries are created on first reference and live for the
// rest of the process.
package registry

import (
	"sync"

	"auction-core/book"
)

// node is one link of a per-node-locked chain. Each node's mutex
// guards both reading its own name/book and installing its successor.
// A lookup holds one node's lock at a time, releasing it before taking
// the next; nodes are only appended at the tail and never removed, so
// a walker cannot skip one. A lookup only ever serializes against the
// prefix of the chain it has to walk, never the whole registry.
type node struct {
	mu   sync.Mutex
	name string
	book *book.Book
	next *node
}

// Registry maps instrument name to Book, building the set of
// instruments up lazily as names are first referenced.
type Registry struct {
	head    *node // dummy sentinel; never matches a real instrument name
	newBook func(name string) *book.Book
}

// New creates an empty registry. newBook is called at most once per
// distinct instrument name, the first time it is referenced, to
// construct that instrument's Book.
func New(newBook func(name string) *book.Book) *Registry {
	return &Registry{head: &node{}, newBook: newBook}
}

// GetOrCreate returns the stable Book for name, creating it if this
// is the first reference. Concurrent calls for the same name return
// the same Book; concurrent calls for different names make progress
// independently once their paths through the chain diverge.
func (r *Registry) GetOrCreate(name string) *book.Book {
	curr := r.head
	for {
		curr.mu.Lock()
		if curr.book != nil && curr.name == name {
			b := curr.book
			curr.mu.Unlock()
			return b
		}
		if curr.next == nil {
			successor := &node{name: name, book: r.newBook(name)}
			curr.next = successor
			b := successor.book
			curr.mu.Unlock()
			return b
		}
		next := curr.next
		curr.mu.Unlock()
		curr = next
	}
}
