package models

// CartItem is one entry of the customer's cart. ID is the string form of the
// MenuItem id.
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}
