// Package domain holds the small set of value types shared across the
// matching core's packages (book, events), so that events does not
// have to import book to name a side (book already imports events).
package domain

// Side identifies which side of the book an order or event belongs to.
type Side uint8

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "buy"
	}
	return "sell"
}
