package book

import (
	"sync"

	"auction-core/clock"
	"auction-core/domain"
	"auction-core/events"
)

// Book is one instrument's matching engine: a buy queue, a sell
// queue, and the opposite-side exclusion protocol described in the
// concurrency model. Name is immutable after construction; a Book is
// created once by the registry and shared by reference with every
// connection that targets it.
type Book struct {
	name string

	buyMu  sync.Mutex
	buy    *priceLevels
	sellMu sync.Mutex
	sell   *priceLevels

	coordMu    sync.Mutex
	buyCond    *sync.Cond
	sellCond   *sync.Cond
	buyActive  int
	sellActive int

	clock clock.Source
	sink  events.Sink
}

// New creates the book for one instrument. clk stamps resting orders
// and emitted events; sink receives Added/Executed/Deleted records.
func New(name string, clk clock.Source, sink events.Sink) *Book {
	b := &Book{
		name:  name,
		buy:   newPriceLevels(true),
		sell:  newPriceLevels(false),
		clock: clk,
		sink:  sink,
	}
	b.buyCond = sync.NewCond(&b.coordMu)
	b.sellCond = sync.NewCond(&b.coordMu)
	return b
}

// Name returns the instrument this book matches.
func (b *Book) Name() string { return b.name }

func (b *Book) enterBuy() {
	b.coordMu.Lock()
	for b.sellActive > 0 {
		b.buyCond.Wait()
	}
	b.buyActive++
	b.coordMu.Unlock()
}

func (b *Book) exitBuy() {
	b.coordMu.Lock()
	b.buyActive--
	if b.buyActive == 0 {
		b.sellCond.Broadcast()
	}
	b.coordMu.Unlock()
}

func (b *Book) enterSell() {
	b.coordMu.Lock()
	for b.buyActive > 0 {
		b.sellCond.Wait()
	}
	b.sellActive++
	b.coordMu.Unlock()
}

func (b *Book) exitSell() {
	b.coordMu.Lock()
	b.sellActive--
	if b.sellActive == 0 {
		b.buyCond.Broadcast()
	}
	b.coordMu.Unlock()
}

// SubmitBuy matches cmd against resting sells and rests whatever
// quantity remains. Returns true iff an order was left resting.
func (b *Book) SubmitBuy(cmd Command) bool {
	b.enterBuy()
	defer b.exitBuy()

	remaining := cmd.Count
	for remaining > 0 {
		restingID, execCounter, tradePrice, tradeQty, matched := b.matchSellHead(cmd.Price, remaining)
		if !matched {
			break
		}
		remaining -= tradeQty
		now := b.clock.Now()
		b.sink.Executed(restingID, cmd.ID, execCounter, tradePrice, tradeQty, now)
	}

	if remaining > 0 {
		b.buyMu.Lock()
		now := b.clock.Now()
		b.buy.insert(newOrder(cmd.ID, cmd.Price, remaining, now))
		b.buyMu.Unlock()
		b.sink.Added(cmd.ID, b.name, cmd.Price, remaining, domain.Buy, now)
		return true
	}
	return false
}

// SubmitSell is the mirror image of SubmitBuy.
func (b *Book) SubmitSell(cmd Command) bool {
	b.enterSell()
	defer b.exitSell()

	remaining := cmd.Count
	for remaining > 0 {
		restingID, execCounter, tradePrice, tradeQty, matched := b.matchBuyHead(cmd.Price, remaining)
		if !matched {
			break
		}
		remaining -= tradeQty
		now := b.clock.Now()
		b.sink.Executed(restingID, cmd.ID, execCounter, tradePrice, tradeQty, now)
	}

	if remaining > 0 {
		b.sellMu.Lock()
		now := b.clock.Now()
		b.sell.insert(newOrder(cmd.ID, cmd.Price, remaining, now))
		b.sellMu.Unlock()
		b.sink.Added(cmd.ID, b.name, cmd.Price, remaining, domain.Sell, now)
		return true
	}
	return false
}

// matchSellHead executes one trade against the best resting sell for
// an incoming buy at buyPrice, if the head crosses. The side mutex is
// held only for this one critical section; the event is emitted
// after it is released.
func (b *Book) matchSellHead(buyPrice, remaining int64) (restingID uint32, execCounter uint64, tradePrice, tradeQty int64, matched bool) {
	b.sellMu.Lock()
	defer b.sellMu.Unlock()

	head, ok := b.sell.best()
	if !ok || head.Price > buyPrice {
		return 0, 0, 0, 0, false
	}

	tradeQty = min(head.Count, remaining)
	tradePrice = head.Price
	restingID = head.ID
	execCounter = head.ExecutionCounter

	head.Count -= tradeQty
	if head.Count == 0 {
		b.sell.removeBest()
	} else {
		head.ExecutionCounter++
	}
	return restingID, execCounter, tradePrice, tradeQty, true
}

// matchBuyHead is the mirror image of matchSellHead.
func (b *Book) matchBuyHead(sellPrice, remaining int64) (restingID uint32, execCounter uint64, tradePrice, tradeQty int64, matched bool) {
	b.buyMu.Lock()
	defer b.buyMu.Unlock()

	head, ok := b.buy.best()
	if !ok || head.Price < sellPrice {
		return 0, 0, 0, 0, false
	}

	tradeQty = min(head.Count, remaining)
	tradePrice = head.Price
	restingID = head.ID
	execCounter = head.ExecutionCounter

	head.Count -= tradeQty
	if head.Count == 0 {
		b.buy.removeBest()
	} else {
		head.ExecutionCounter++
	}
	return restingID, execCounter, tradePrice, tradeQty, true
}

// Cancel removes the resting order with id from the named side's
// queue, if present. It takes only that side's queue mutex and does
// not participate in the opposite-side exclusion protocol, since a
// cancel never matches and touches one side only.
func (b *Book) Cancel(id uint32, side domain.Side) bool {
	if side == domain.Buy {
		b.buyMu.Lock()
		defer b.buyMu.Unlock()
		return b.buy.remove(id)
	}
	b.sellMu.Lock()
	defer b.sellMu.Unlock()
	return b.sell.remove(id)
}
