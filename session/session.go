// Package session implements the per-connection command loop: read a
// command, resolve its instrument in the registry, dispatch to the
// book, and maintain the per-connection cancel-ownership table that
// keeps clients from cancelling one another's orders.
package session

import (
	"auction-core/book"
	"auction-core/clock"
	"auction-core/domain"
	"auction-core/events"
	"auction-core/protocol"

	"github.com/rs/zerolog"
)

// ownership records which instrument and side an order id was
// accepted on, so a later cancel from the same connection can be
// routed without trusting the client to repeat that information.
type ownership struct {
	instrument string
	side       domain.Side
}

// Books is the subset of the registry a Handler needs: resolve an
// instrument name to its book, creating it on first reference.
type Books interface {
	GetOrCreate(name string) *book.Book
}

// Handler runs one connection's command loop to completion.
type Handler struct {
	books Books
	clock clock.Source
	sink  events.Sink
	log   zerolog.Logger
}

// New builds a Handler shared read-only state: the instrument
// registry, the timestamp source, and the event sink every dispatched
// command reports through.
func New(books Books, clk clock.Source, sink events.Sink, log zerolog.Logger) *Handler {
	return &Handler{books: books, clock: clk, sink: sink, log: log}
}

// Run drives r to completion, dispatching every command it yields.
// connID is only used to tag log lines for this connection. Run
// returns once the reader reports end of file or a read error; a read
// error is logged once before returning.
func (h *Handler) Run(connID string, r protocol.Reader) {
	log := h.log.With().Str("conn", connID).Logger()
	owned := make(map[uint32]ownership)

	for {
		cmd, status, err := r.ReadNext()
		switch status {
		case protocol.EndOfFile:
			log.Debug().Msg("connection closed")
			return
		case protocol.ReadErr:
			log.Error().Err(err).Msg("read error, terminating connection")
			return
		}

		switch cmd.Type {
		case protocol.CommandCancel:
			h.handleCancel(cmd, owned)
		case protocol.CommandBuy:
			h.handleSubmit(cmd, domain.Buy, owned)
		case protocol.CommandSell:
			h.handleSubmit(cmd, domain.Sell, owned)
		}
	}
}

func (h *Handler) handleCancel(cmd protocol.Command, owned map[uint32]ownership) {
	own, known := owned[cmd.ID]
	success := false
	if known {
		b := h.books.GetOrCreate(own.instrument)
		success = b.Cancel(cmd.ID, own.side)
		if success {
			delete(owned, cmd.ID)
		}
	}
	h.sink.Deleted(cmd.ID, success, h.clock.Now())
}

func (h *Handler) handleSubmit(cmd protocol.Command, side domain.Side, owned map[uint32]ownership) {
	b := h.books.GetOrCreate(cmd.Instrument)
	bookCmd := book.Command{ID: cmd.ID, Price: cmd.Price, Count: cmd.Count}

	var rested bool
	if side == domain.Buy {
		rested = b.SubmitBuy(bookCmd)
	} else {
		rested = b.SubmitSell(bookCmd)
	}
	if rested {
		owned[cmd.ID] = ownership{instrument: cmd.Instrument, side: side}
	}
}
