package orderbook

// orderHandle locates a resting order: its side and level, and its position
// in the level queue as a generation checked slot.
type orderHandle struct {
	side  Side
	price Price
	slot  slotID
	gen   uint32
}

type orderIndex map[OrderID]orderHandle

func (ix orderIndex) insert(id OrderID, h orderHandle) {
	ix[id] = h
}

func (ix orderIndex) lookup(id OrderID) (orderHandle, bool) {
	h, ok := ix[id]
	return h, ok
}

func (ix orderIndex) contains(id OrderID) bool {
	_, ok := ix[id]
	return ok
}

func (ix orderIndex) remove(id OrderID) {
	delete(ix, id)
}
