package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/joripage/matching-engine/pkg/logging"
	"github.com/joripage/matching-engine/pkg/orderbook"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minPrice = 100.0
	maxPrice = 200.0
	minQty   = 1
	maxQty   = 100
)

var tickSize = decimal.RequireFromString("0.01")

func randomOrder(r *rand.Rand, id int) orderbook.Order {
	side := orderbook.BUY
	if r.Intn(2) == 0 {
		side = orderbook.SELL
	}
	orderType := orderbook.GoodTillCancel
	if r.Intn(10) == 0 {
		orderType = orderbook.FillAndKill
	}

	// round to 2 decimals, one tick
	price := decimal.NewFromFloat(minPrice + r.Float64()*(maxPrice-minPrice)).Truncate(2)
	ticks, err := orderbook.PriceFromDecimal(price, tickSize)
	if err != nil {
		panic(err)
	}
	qty := orderbook.Quantity(r.Intn(maxQty-minQty+1) + minQty)

	return orderbook.NewOrder(orderType, orderbook.OrderID(id), side, ticks, qty)
}

func main() {
	var numOrders int
	var cancelEvery int
	flag.IntVar(&numOrders, "orders", 1_000_000, "number of orders to submit")
	flag.IntVar(&cancelEvery, "cancel-every", 5, "cancel an earlier order every n orders, 0 disables")
	flag.Parse()

	logger, err := logging.NewLogger(logging.INFO)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // nolint

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	book := orderbook.NewLocked(orderbook.WithCapacity(numOrders / 4))

	totalMatched := 0
	totalQty := orderbook.Quantity(0)
	book.RegisterTradeCallback(func(trades []orderbook.Trade) {
		for _, t := range trades {
			totalMatched++
			totalQty += t.Bid.Quantity
			if totalMatched <= 5 {
				logger.Info("match",
					zap.Uint64("bid_order_id", uint64(t.Bid.OrderID)),
					zap.Uint64("ask_order_id", uint64(t.Ask.OrderID)),
					zap.String("ask_price", t.Ask.Price.Decimal(tickSize).String()),
					zap.Uint64("qty", uint64(t.Bid.Quantity)),
				)
			}
		}
	})

	rejected := map[orderbook.Status]int{}
	start := time.Now()
	for i := 0; i < numOrders; i++ {
		res := book.AddOrder(randomOrder(r, i+1))
		if !res.Accepted() {
			rejected[res.Status]++
		}
		if cancelEvery > 0 && i%cancelEvery == 0 && i > 0 {
			book.CancelOrder(orderbook.OrderID(r.Intn(i) + 1))
		}
	}
	elapsed := time.Since(start)

	depth := book.Depth()

	fmt.Println("--------")
	fmt.Printf("Total Orders     : %d\n", numOrders)
	fmt.Printf("Total Matches    : %d\n", totalMatched)
	fmt.Printf("Total Matched Qty: %d\n", totalQty)
	fmt.Printf("Rejected         : %v\n", rejected)
	fmt.Printf("Resting Orders   : %d (%d bid / %d ask levels)\n", book.Size(), len(depth.Bids), len(depth.Asks))
	fmt.Printf("Time Taken       : %s\n", elapsed)
}
