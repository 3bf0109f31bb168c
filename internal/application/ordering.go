// The reorder protocol used by FAQs, gallery photos and specialties: a move
// swaps the order values of two neighbors in the sorted list, the new state
// is applied optimistically, the whole batch is persisted upstream, and a
// failed persist is rolled back by re-fetching the authoritative list.
package application

import (
	"sort"

	"github.com/egemed/clinic_backend/internal/domain"
)

// Direction of a single-step move in the displayed list.
type Direction int

const (
	MoveUp Direction = iota
	MoveDown
)

// ReorderStatus is the terminal state of one reorder attempt.
type ReorderStatus int

const (
	// ReorderNoop: the move hit a list boundary; nothing changed and no
	// request was issued.
	ReorderNoop ReorderStatus = iota
	// ReorderConfirmed: the optimistic order was persisted upstream.
	ReorderConfirmed
	// ReorderRolledBack: persisting failed; the list was re-fetched and the
	// optimistic change discarded.
	ReorderRolledBack
)

// OrderRef is the id/order projection of an ordered item that the protocol
// operates on; callers map their typed lists in and out of it.
type OrderRef struct {
	ID    int
	Order int
}

// sortRefs orders by Order with id as a stable tie-break, so duplicate
// order values left behind by concurrent edits cannot wedge a move.
func sortRefs(refs []OrderRef) []OrderRef {
	out := make([]OrderRef, len(refs))
	copy(out, refs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Move swaps the order values of the item at the given position in the
// sorted sequence with its neighbor in the requested direction. Moving the
// first item up or the last item down is a no-op: the input is returned
// unchanged and moved is false.
func Move(refs []OrderRef, index int, dir Direction) (result []OrderRef, moved bool) {
	sorted := sortRefs(refs)
	if index < 0 || index >= len(sorted) {
		return sorted, false
	}
	neighbor := index - 1
	if dir == MoveDown {
		neighbor = index + 1
	}
	if neighbor < 0 || neighbor >= len(sorted) {
		return sorted, false
	}
	sorted[index].Order, sorted[neighbor].Order = sorted[neighbor].Order, sorted[index].Order
	return sortRefs(sorted), true
}

// Payload builds the batch body persisted upstream: the new order value for
// every item of the list.
func Payload(refs []OrderRef) domain.ReorderRequest {
	items := make([]domain.OrderUpdate, len(refs))
	for i, ref := range refs {
		items[i] = domain.OrderUpdate{ID: ref.ID, Order: ref.Order}
	}
	return domain.ReorderRequest{Items: items}
}

// indexOf locates an item by id within the sorted sequence, -1 when absent.
func indexOf(refs []OrderRef, id int) int {
	for i, ref := range refs {
		if ref.ID == id {
			return i
		}
	}
	return -1
}
