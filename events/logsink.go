package events

import (
	"auction-core/domain"

	"github.com/rs/zerolog"
)

// LogSink emits event records as structured log lines. It holds no
// lock of its own: zerolog.Logger is safe for concurrent use, and
// that's the only shared state here.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink wraps a zerolog.Logger as an events.Sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log.With().Str("component", "events").Logger()}
}

func (s *LogSink) Added(id uint32, instrument string, price, count int64, side domain.Side, timestamp int64) {
	s.log.Info().
		Str("event", "added").
		Uint32("id", id).
		Str("instrument", instrument).
		Int64("price", price).
		Int64("count", count).
		Str("side", side.String()).
		Int64("ts", timestamp).
		Msg("order rested")
}

func (s *LogSink) Executed(restingID, incomingID uint32, executionCounter uint64, price, count int64, timestamp int64) {
	s.log.Info().
		Str("event", "executed").
		Uint32("resting_id", restingID).
		Uint32("incoming_id", incomingID).
		Uint64("execution_counter", executionCounter).
		Int64("price", price).
		Int64("count", count).
		Int64("ts", timestamp).
		Msg("trade executed")
}

func (s *LogSink) Deleted(id uint32, success bool, timestamp int64) {
	s.log.Info().
		Str("event", "deleted").
		Uint32("id", id).
		Bool("success", success).
		Int64("ts", timestamp).
		Msg("cancel processed")
}
