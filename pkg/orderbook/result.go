package orderbook

import "fmt"

// Status tells why an operation did or did not change the book.
type Status uint8

const (
	StatusAccepted Status = iota
	StatusDuplicateID
	StatusUnmatchable
	StatusUnknownID
	StatusInvalidQuantity
)

func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "Accepted"
	case StatusDuplicateID:
		return "DuplicateID"
	case StatusUnmatchable:
		return "Unmatchable"
	case StatusUnknownID:
		return "UnknownID"
	case StatusInvalidQuantity:
		return "InvalidQuantity"
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Result of AddOrder and ModifyOrder. Trades is empty unless Status is
// StatusAccepted.
type Result struct {
	Status Status
	Trades []Trade
}

func (r Result) Accepted() bool {
	return r.Status == StatusAccepted
}

func rejected(status Status) Result {
	return Result{Status: status}
}
