package orderbook

// priceLevel is the FIFO of resting orders at one price on one side. The
// queue is threaded through the slot table, so appending, popping the front
// and unlinking any order are all O(1).
type priceLevel struct {
	price Price
	head  slotID
	tail  slotID
	count int
}

func newPriceLevel(price Price) *priceLevel {
	return &priceLevel{price: price, head: noSlot, tail: noSlot}
}

func (l *priceLevel) empty() bool {
	return l.count == 0
}

func (l *priceLevel) front() slotID {
	return l.head
}

func (l *priceLevel) pushBack(t *slotTable, id slotID) {
	s := t.get(id)
	s.prev, s.next = l.tail, noSlot
	if l.tail == noSlot {
		l.head = id
	} else {
		t.get(l.tail).next = id
	}
	l.tail = id
	l.count++
}

func (l *priceLevel) unlink(t *slotTable, id slotID) {
	s := t.get(id)
	if s.prev == noSlot {
		l.head = s.next
	} else {
		t.get(s.prev).next = s.next
	}
	if s.next == noSlot {
		l.tail = s.prev
	} else {
		t.get(s.next).prev = s.prev
	}
	s.prev, s.next = noSlot, noSlot
	l.count--
}

// totalQuantity sums the remaining quantity of every order in the queue.
func (l *priceLevel) totalQuantity(t *slotTable) Quantity {
	var total Quantity
	for id := l.head; id != noSlot; id = t.get(id).next {
		total += t.get(id).order.remainingQty
	}
	return total
}

// each walks the queue front to back.
func (l *priceLevel) each(t *slotTable, fn func(o *Order)) {
	for id := l.head; id != noSlot; id = t.get(id).next {
		fn(&t.get(id).order)
	}
}
