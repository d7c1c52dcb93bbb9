package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/joripage/matching-engine/config"
	"github.com/joripage/matching-engine/pkg/logging"
	"github.com/joripage/matching-engine/pkg/orderbook"
	"go.uber.org/zap"
)

func main() {
	var configFile string
	flag.StringVar(&configFile, "config-file", "config/config.yaml", "Specify config file path")
	flag.Parse()

	cfg, err := config.Load(configFile)
	if err != nil {
		panic(err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	logger, err := logging.NewLogger(level)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // nolint

	ctx := logging.WithLogger(logging.WithRequestID(context.Background(), ""), logger)
	log := logging.FromContext(ctx).With(zap.String("symbol", cfg.Instrument.Symbol))

	tick, err := cfg.Instrument.Tick()
	if err != nil {
		panic(err)
	}
	price, err := orderbook.ParsePrice("100", tick)
	if err != nil {
		panic(err)
	}

	book := orderbook.New(
		orderbook.WithLogger(log),
		orderbook.WithCapacity(cfg.Instrument.InitialCapacity),
	)

	const orderID orderbook.OrderID = 1
	res := book.AddOrder(orderbook.NewOrder(orderbook.GoodTillCancel, orderID, orderbook.BUY, price, 10))
	log.Info("order added", zap.Stringer("status", res.Status), zap.Int("size", book.Size()))
	fmt.Println(book.Size())

	book.CancelOrder(orderID)
	log.Info("order cancelled", zap.Int("size", book.Size()))
	fmt.Println(book.Size())
}
