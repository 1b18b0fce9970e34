// Command loadgen is a synthetic client: it dials cmd/exchange and
// submits a stream of buy/sell/cancel commands across a small set of
// instruments, exercising same-side parallelism (many connections
// trading the same instrument at once) and cross-instrument isolation.
package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"net"
	"sync"
	"sync/atomic"

	"auction-core/config"
	"auction-core/logging"

	"github.com/google/uuid"
)

func main() {
	cfg, err := config.LoadLoadgen()
	if err != nil {
		panic(err)
	}
	log := logging.New(cfg.LogLevel)

	var nextID atomic.Uint32
	var wg sync.WaitGroup

	const connections = 8
	perConnection := cfg.OrdersTotal / connections
	if perConnection < 1 {
		perConnection = 1
	}

	for c := 0; c < connections; c++ {
		wg.Add(1)
		go func(connNum int) {
			defer wg.Done()
			connID := uuid.NewString()
			conn, err := net.Dial("tcp", cfg.DialAddr)
			if err != nil {
				log.Error().Err(err).Str("conn", connID).Msg("dial failed")
				return
			}
			defer conn.Close()

			w := bufio.NewWriter(conn)
			rng := rand.New(rand.NewSource(int64(connNum) + 1))
			resting := make([]uint32, 0, perConnection)

			for i := 0; i < perConnection; i++ {
				instrument := cfg.Instruments[rng.Intn(len(cfg.Instruments))]
				id := nextID.Add(1)

				if len(resting) > 0 && rng.Intn(5) == 0 {
					cancelID := resting[rng.Intn(len(resting))]
					fmt.Fprintf(w, "CANCEL %d\n", cancelID)
					continue
				}

				side := "BUY"
				if rng.Intn(2) == 0 {
					side = "SELL"
				}
				price := 90 + rng.Intn(20)
				count := 1 + rng.Intn(10)
				fmt.Fprintf(w, "%s %d %s %d %d\n", side, id, instrument, price, count)
				resting = append(resting, id)
			}
			if err := w.Flush(); err != nil {
				log.Error().Err(err).Str("conn", connID).Msg("write failed")
			}
			log.Info().Str("conn", connID).Int("orders", perConnection).Msg("load generation complete")
		}(c)
	}

	wg.Wait()
}
