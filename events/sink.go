// Package events defines the event sink contract the matching core
// calls out to, plus two reference sinks: one that logs through
// zerolog, one that collects records in memory for tests. The core
// never holds a lock while calling into a Sink.
package events

import "auction-core/domain"

// Sink receives the three event kinds the matching core ever emits.
// Implementations must serialize their own output; the core invokes
// Sink methods from multiple goroutines concurrently (several per
// instrument, since same-side orders and cancels run in parallel, and
// across instruments) and never while holding a book lock.
type Sink interface {
	// Added reports that an order rested on the book.
	Added(id uint32, instrument string, price, count int64, side domain.Side, timestamp int64)

	// Executed reports a trade against a resting order. executionCounter
	// is the resting order's counter value at the moment of this fill.
	Executed(restingID, incomingID uint32, executionCounter uint64, price, count int64, timestamp int64)

	// Deleted reports the outcome of a cancel attempt.
	Deleted(id uint32, success bool, timestamp int64)
}
