package models

// OrderLine is the snapshot of one cart entry taken at checkout. It is not
// a reference to the MenuItem; later menu edits never change it.
type OrderLine struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

func (l OrderLine) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}
