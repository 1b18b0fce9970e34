package book

import (
	"container/list"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
)

// priceLevel holds every resting order at one price, earliest first.
type priceLevel struct {
	price  int64
	orders *list.List
}

// priceLevels is one side's queue: a red-black tree of priceLevel
// keyed by price, ordered so that the best price for this side is
// always the tree's leftmost node, plus an id index so cancel finds an
// order without walking the queue (its level is still looked up in
// the tree by price).
// The comparator direction is the only difference between a bid queue
// and an ask queue: bids want the tree walkable from highest price,
// asks from lowest.
type priceLevels struct {
	tree  *rbt.Tree[int64, *priceLevel]
	index map[uint32]*list.Element
	at    map[uint32]int64 // order id -> price, to find its level on remove
}

func newPriceLevels(buySide bool) *priceLevels {
	cmp := ascending
	if buySide {
		cmp = descending
	}
	return &priceLevels{
		tree:  rbt.NewWith[int64, *priceLevel](cmp),
		index: make(map[uint32]*list.Element),
		at:    make(map[uint32]int64),
	}
}

func ascending(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func descending(a, b int64) int {
	return ascending(b, a)
}

// insert rests order in its price level, creating the level if this
// is the first order at that price. The level index is kept sorted
// by construction (red-black tree insert), satisfying the ordering
// invariant without a separate sort step.
func (p *priceLevels) insert(o *Order) {
	level, found := p.tree.Get(o.Price)
	if !found {
		level = &priceLevel{price: o.Price, orders: list.New()}
		p.tree.Put(o.Price, level)
	}
	elem := level.orders.PushBack(o)
	p.index[o.ID] = elem
	p.at[o.ID] = o.Price
}

// best returns the head of the best price level: the order that any
// incoming opposite-side order must be checked against first.
func (p *priceLevels) best() (*Order, bool) {
	node := p.tree.Left()
	if node == nil {
		return nil, false
	}
	front := node.Value.orders.Front()
	if front == nil {
		return nil, false
	}
	return front.Value.(*Order), true
}

// removeBest erases the current head order (used once its Count has
// reached zero) and returns it to the pool.
func (p *priceLevels) removeBest() {
	node := p.tree.Left()
	if node == nil {
		return
	}
	level := node.Value
	front := level.orders.Front()
	if front == nil {
		return
	}
	o := front.Value.(*Order)
	level.orders.Remove(front)
	delete(p.index, o.ID)
	delete(p.at, o.ID)
	if level.orders.Len() == 0 {
		p.tree.Remove(level.price)
	}
	releaseOrder(o)
}

// remove erases the order with the given id from anywhere in the
// queue (used by Cancel). Reports whether it was found.
func (p *priceLevels) remove(id uint32) bool {
	elem, ok := p.index[id]
	if !ok {
		return false
	}
	price := p.at[id]
	level, found := p.tree.Get(price)
	if !found {
		return false
	}
	o := elem.Value.(*Order)
	level.orders.Remove(elem)
	delete(p.index, id)
	delete(p.at, id)
	if level.orders.Len() == 0 {
		p.tree.Remove(price)
	}
	releaseOrder(o)
	return true
}

// orderedIDs walks the queue best-to-worst, used by tests to assert
// the (price, timestamp) ordering invariant.
func (p *priceLevels) orderedIDs() []uint32 {
	var ids []uint32
	it := p.tree.Iterator()
	for it.Next() {
		for e := it.Value().orders.Front(); e != nil; e = e.Next() {
			ids = append(ids, e.Value.(*Order).ID)
		}
	}
	return ids
}
