package domain

// List is the normalized shape for every upstream collection read. Some
// upstream endpoints answer a bare JSON array, others a {data, total}
// envelope; the client decodes both into this one type so nothing past the
// API boundary sniffs response shapes.
type List[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// EmptyList is the neutral default public fetchers fall back to.
func EmptyList[T any]() List[T] {
	return List[T]{Data: []T{}, Total: 0}
}

// ListQuery carries the list-view controls shared by the admin screens.
type ListQuery struct {
	Search string
	Page   int
	Limit  int
}

// Normalize applies the page/limit defaults. A request that carries a
// search filter but no page lands on page 1 through the default; an
// explicit page wins, so filtered results stay paginable.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 20
	}
	return q
}

// OrderUpdate is one entry of a batch reorder payload.
type OrderUpdate struct {
	ID    int `json:"id"`
	Order int `json:"order"`
}

// ReorderRequest is the batch body sent upstream after a move: the new order
// values for the whole list (or the whole page, when paginated).
type ReorderRequest struct {
	Items []OrderUpdate `json:"items"`
}
