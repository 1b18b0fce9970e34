// Command exchange is a reference wiring of the matching core over
// plain TCP: one goroutine per accepted connection, each running an
// independent session.Handler against a shared instrument registry.
package main

import (
	"net"

	"auction-core/book"
	"auction-core/clock"
	"auction-core/config"
	"auction-core/events"
	"auction-core/logging"
	"auction-core/protocol"
	"auction-core/registry"
	"auction-core/session"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadExchange()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.LogLevel)

	clk := clock.NewMonotonic()
	sink := events.NewLogSink(log)
	reg := registry.New(func(name string) *book.Book {
		log.Info().Str("instrument", name).Msg("instrument book created")
		return book.New(name, clk, sink)
	})
	handler := session.New(reg, clk, sink, log)

	listener, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.ListenAddr).Msg("failed to listen")
	}
	log.Info().Str("addr", cfg.ListenAddr).Msg("exchange listening")

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Error().Err(err).Msg("accept failed")
			continue
		}
		connID := uuid.NewString()
		go func() {
			defer conn.Close()
			handler.Run(connID, protocol.NewLineReader(conn))
		}()
	}
}
