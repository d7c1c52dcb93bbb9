package orderbook

import "testing"

func TestModifyOrder_DecreaseQty(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))

	if res := ob.ModifyOrder(OrderModify{ID: 1, Side: BUY, Price: 100, Qty: 5}); !res.Accepted() {
		t.Fatalf("expected modify success, got %s", res.Status)
	}

	modified, err := ob.Order(1)
	if err != nil {
		t.Fatalf("modified order should rest: %v", err)
	}
	if modified.RemainingQuantity() != 5 || modified.InitialQuantity() != 5 {
		t.Fatalf("expected Qty=5, got %d/%d", modified.RemainingQuantity(), modified.InitialQuantity())
	}
	if modified.Price != 100 {
		t.Fatalf("expected Price=100, got %d", modified.Price)
	}
}

func TestModifyOrder_IncreaseQty(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))

	if res := ob.ModifyOrder(OrderModify{ID: 1, Side: BUY, Price: 100, Qty: 20}); !res.Accepted() {
		t.Fatalf("expected modify success, got %s", res.Status)
	}

	modified, _ := ob.Order(1)
	if modified.RemainingQuantity() != 20 {
		t.Fatalf("expected Qty=20, got %d", modified.RemainingQuantity())
	}
}

func TestModifyOrder_ChangePrice(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))

	if res := ob.ModifyOrder(OrderModify{ID: 1, Side: BUY, Price: 105, Qty: 10}); !res.Accepted() {
		t.Fatalf("expected modify success, got %s", res.Status)
	}

	modified, _ := ob.Order(1)
	if modified.Price != 105 {
		t.Fatalf("expected Price=105, got %d", modified.Price)
	}
	depth := ob.Depth()
	if len(depth.Bids) != 1 || depth.Bids[0].Price != 105 {
		t.Fatalf("old level should be gone, got %+v", depth.Bids)
	}
}

func TestModifyOrder_LosesTimePriority(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, SELL, 100, 5))
	ob.AddOrder(gtc(2, SELL, 100, 5))

	ob.ModifyOrder(OrderModify{ID: 1, Side: SELL, Price: 100, Qty: 5})

	res := ob.AddOrder(gtc(3, BUY, 100, 5))
	if len(res.Trades) != 1 || res.Trades[0].Ask.OrderID != 2 {
		t.Fatalf("order 2 should now be first in line, got %+v", res.Trades)
	}
}

func TestModifyOrder_ChangeSideCrosses(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))
	ob.AddOrder(gtc(2, BUY, 99, 4))

	res := ob.ModifyOrder(OrderModify{ID: 1, Side: SELL, Price: 99, Qty: 4})
	if !res.Accepted() || len(res.Trades) != 1 {
		t.Fatalf("expected one trade, got %+v", res)
	}
	want := Trade{
		Bid: TradeInfo{OrderID: 2, Price: 99, Quantity: 4},
		Ask: TradeInfo{OrderID: 1, Price: 99, Quantity: 4},
	}
	if res.Trades[0] != want {
		t.Fatalf("expected %+v, got %+v", want, res.Trades[0])
	}
	if ob.Size() != 0 {
		t.Fatalf("expected empty book, got %d", ob.Size())
	}
}

func TestModifyOrder_UnknownID(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))

	res := ob.ModifyOrder(OrderModify{ID: 7, Side: SELL, Price: 90, Qty: 1})
	if res.Status != StatusUnknownID || len(res.Trades) != 0 {
		t.Fatalf("expected UnknownID, got %+v", res)
	}
	if ob.Size() != 1 {
		t.Fatalf("expected size 1, got %d", ob.Size())
	}
}

func TestModifyOrder_ZeroQtyCancels(t *testing.T) {
	ob := New()
	ob.AddOrder(gtc(1, BUY, 100, 10))

	res := ob.ModifyOrder(OrderModify{ID: 1, Side: BUY, Price: 100, Qty: 0})
	if res.Status != StatusInvalidQuantity {
		t.Fatalf("expected InvalidQuantity, got %s", res.Status)
	}
	if ob.Size() != 0 {
		t.Fatalf("original order should be cancelled, size %d", ob.Size())
	}
}

func TestModifyOrder_CallbackFired(t *testing.T) {
	ob := New()
	calls := 0
	ob.RegisterTradeCallback(func(trades []Trade) { calls++ })

	ob.AddOrder(gtc(1, SELL, 101, 5))
	ob.AddOrder(gtc(2, BUY, 100, 5))
	ob.ModifyOrder(OrderModify{ID: 2, Side: BUY, Price: 101, Qty: 5})

	if calls != 1 {
		t.Fatalf("expected one callback, got %d", calls)
	}
}
