package events

import (
	"sync"

	"auction-core/domain"
)

// Kind identifies which of the three event shapes a Record carries.
type Kind int

const (
	KindAdded Kind = iota
	KindExecuted
	KindDeleted
)

// Record is a single captured event, fields populated according to Kind.
type Record struct {
	Kind Kind

	// Added
	ID         uint32
	Instrument string
	Price      int64
	Count      int64
	Side       domain.Side

	// Executed
	RestingID        uint32
	IncomingID       uint32
	ExecutionCounter uint64

	// Deleted
	Success bool

	Timestamp int64
}

// CollectingSink records every event in arrival order, guarded by a
// mutex so concurrent instrument workers can share one sink in tests.
type CollectingSink struct {
	mu      sync.Mutex
	Records []Record
}

// NewCollectingSink returns an empty in-memory sink.
func NewCollectingSink() *CollectingSink {
	return &CollectingSink{}
}

func (s *CollectingSink) Added(id uint32, instrument string, price, count int64, side domain.Side, timestamp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append(s.Records, Record{
		Kind: KindAdded, ID: id, Instrument: instrument, Price: price, Count: count,
		Side: side, Timestamp: timestamp,
	})
}

func (s *CollectingSink) Executed(restingID, incomingID uint32, executionCounter uint64, price, count int64, timestamp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append(s.Records, Record{
		Kind: KindExecuted, RestingID: restingID, IncomingID: incomingID,
		ExecutionCounter: executionCounter, Price: price, Count: count, Timestamp: timestamp,
	})
}

func (s *CollectingSink) Deleted(id uint32, success bool, timestamp int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Records = append(s.Records, Record{Kind: KindDeleted, ID: id, Success: success, Timestamp: timestamp})
}

// Snapshot returns a copy of the records captured so far, safe to
// range over without racing further writers.
func (s *CollectingSink) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Record, len(s.Records))
	copy(out, s.Records)
	return out
}
