package orderbook

import "github.com/gammazero/deque"

// slotID addresses an order in the slot table. Levels and the index hold
// slot ids, never pointers, so an order has exactly one owner.
type slotID int32

const noSlot slotID = -1

type slot struct {
	order Order

	// neighbours inside the price level queue
	prev slotID
	next slotID

	// gen is bumped every time the slot is released so stale handles are
	// detected instead of silently addressing a recycled order.
	gen  uint32
	used bool
}

type slotTable struct {
	slots []slot
	free  deque.Deque[slotID]
}

func newSlotTable(capacity int) *slotTable {
	return &slotTable{
		slots: make([]slot, 0, capacity),
	}
}

// acquire stores order in a free slot, reusing released slots first.
func (t *slotTable) acquire(order Order) (slotID, uint32) {
	var id slotID
	if t.free.Len() > 0 {
		id = t.free.PopBack()
	} else {
		t.slots = append(t.slots, slot{})
		id = slotID(len(t.slots) - 1)
	}

	s := &t.slots[id]
	s.order = order
	s.prev, s.next = noSlot, noSlot
	s.used = true
	return id, s.gen
}

func (t *slotTable) release(id slotID) {
	s := &t.slots[id]
	if !s.used {
		panic(invariantViolation("slot %d released twice", id))
	}
	*s = slot{gen: s.gen + 1, prev: noSlot, next: noSlot}
	t.free.PushBack(id)
}

func (t *slotTable) get(id slotID) *slot {
	return &t.slots[id]
}

func (t *slotTable) order(id slotID) *Order {
	return &t.slots[id].order
}

// live returns the number of occupied slots.
func (t *slotTable) live() int {
	return len(t.slots) - t.free.Len()
}
