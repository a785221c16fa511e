package entity

// Cart is a snapshot of the remote commerce cart. Snapshots are treated as
// immutable once published; every accepted change replaces the whole value.
type Cart struct {
	ID          string     `json:"id"`
	CheckoutURL string     `json:"checkout_url"`
	Lines       []CartLine `json:"lines"`
	Cost        CartCost   `json:"cost"`
}

// CartLine is one line of a cart with a denormalized merchandise snapshot.
type CartLine struct {
	ID          string      `json:"id"`
	Quantity    int         `json:"quantity"`
	Merchandise Merchandise `json:"merchandise"`
}

// Merchandise is the variant a cart line refers to.
type Merchandise struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Price   Money           `json:"price"`
	Product ProductSnapshot `json:"product"`
}

// ProductSnapshot is the product data carried on a cart line.
type ProductSnapshot struct {
	Title  string `json:"title"`
	Handle string `json:"handle"`
	Image  *Image `json:"image,omitempty"`
}

// CartCost is the server-computed cost summary.
type CartCost struct {
	TotalAmount    Money `json:"total_amount"`
	SubtotalAmount Money `json:"subtotal_amount"`
}

// CartLineInput adds merchandise to a cart.
type CartLineInput struct {
	MerchandiseID string `json:"merchandise_id"`
	Quantity      int    `json:"quantity"`
}

// CartLineUpdate sets the quantity of an existing line.
type CartLineUpdate struct {
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}

// TotalQuantity sums the quantities of all lines.
func (c *Cart) TotalQuantity() int {
	if c == nil {
		return 0
	}

	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// Line finds a line by its identifier.
func (c *Cart) Line(lineID string) (CartLine, bool) {
	if c == nil {
		return CartLine{}, false
	}

	for _, line := range c.Lines {
		if line.ID == lineID {
			return line, true
		}
	}

	return CartLine{}, false
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Lines) == 0
}
