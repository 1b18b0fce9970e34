// Package book implements the per-instrument matching engine: two
// price-ordered queues (one per side), the matching algorithm, and
// the opposite-side exclusion protocol that lets many buys or many
// sells run concurrently on one instrument while never letting a buy
// and a sell execute at the same time.
package book

import "sync"

// Order is a resting limit order. Count is the remaining (unfilled)
// quantity; an Order is only ever present in a side's queue while
// Count > 0. ExecutionCounter starts at 1 and is incremented each
// time a partial fill leaves the order still resting.
type Order struct {
	ID               uint32
	Price            int64
	Count            int64
	ExecutionCounter uint64
	Timestamp        int64
}

// Orders churn constantly as they fill or get cancelled; pooling them
// avoids a heap allocation on every submission.
var orderPool = sync.Pool{
	New: func() any { return &Order{} },
}

func newOrder(id uint32, price, count, timestamp int64) *Order {
	o := orderPool.Get().(*Order)
	o.ID = id
	o.Price = price
	o.Count = count
	o.ExecutionCounter = 1
	o.Timestamp = timestamp
	return o
}

func releaseOrder(o *Order) {
	*o = Order{}
	orderPool.Put(o)
}

// Command is the payload of a limit buy or sell request: an order id
// plus the order's price and quantity. The side is implied by which
// of SubmitBuy/SubmitSell it is passed to.
type Command struct {
	ID    uint32
	Price int64
	Count int64
}
