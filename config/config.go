// Package config loads the process-level settings for the demo
// binaries (cmd/exchange, cmd/loadgen). The matching core itself is a
// library and takes no configuration; these knobs only govern how the
// demo wires it up.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Exchange configures cmd/exchange.
type Exchange struct {
	ListenAddr string
	LogLevel   string
}

// LoadExchange reads Exchange settings from the environment, loading
// a .env file first if one is present in the working directory.
func LoadExchange() (Exchange, error) {
	loadDotenv()
	return Exchange{
		ListenAddr: getenv("EXCHANGE_LISTEN_ADDR", ":7777"),
		LogLevel:   getenv("EXCHANGE_LOG_LEVEL", "info"),
	}, nil
}

// Loadgen configures cmd/loadgen.
type Loadgen struct {
	DialAddr    string
	LogLevel    string
	Instruments []string
	OrdersTotal int
}

// LoadLoadgen reads Loadgen settings from the environment.
func LoadLoadgen() (Loadgen, error) {
	loadDotenv()

	total, err := strconv.Atoi(getenv("LOADGEN_ORDERS_TOTAL", "100"))
	if err != nil {
		return Loadgen{}, fmt.Errorf("config: LOADGEN_ORDERS_TOTAL: %w", err)
	}

	return Loadgen{
		DialAddr:    getenv("LOADGEN_DIAL_ADDR", "localhost:7777"),
		LogLevel:    getenv("LOADGEN_LOG_LEVEL", "info"),
		Instruments: splitCSV(getenv("LOADGEN_INSTRUMENTS", "GOOG,IBM,AAPL")),
		OrdersTotal: total,
	}, nil
}

func loadDotenv() {
	// Best-effort: absence of a .env file is the common case outside
	// local development and is not an error.
	_ = godotenv.Load()
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
