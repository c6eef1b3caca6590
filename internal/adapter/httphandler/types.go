package httphandler

type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Sizes       []string `json:"sizes"`
	InStock     bool     `json:"in_stock"`
	Images      []string `json:"images"`
}

type PriceBounds struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type CatalogResponse struct {
	Products    []Product   `json:"products"`
	PriceBounds PriceBounds `json:"price_bounds"`
}

type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Subtotal  string  `json:"subtotal"`
}

type CartResponse struct {
	Items     []CartItem `json:"items"`
	Total     string     `json:"total"`
	ItemCount int        `json:"item_count"`
}

type AddCartItem struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
}

type UpdateCartItem struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

type RemoveCartItem struct {
	ProductID int64  `json:"product_id"`
	Size      string `json:"size"`
}

type CheckoutRequest struct {
	Locale string `json:"locale"`
}

type CheckoutResponse struct {
	Message   string `json:"message"`
	Recipient string `json:"recipient"`
	Link      string `json:"link"`
	Total     string `json:"total"`
}

type ProductStatus struct {
	ProductID    int64 `json:"product_id"`
	Discontinued bool  `json:"discontinued"`
}

type SalesReport struct {
	SessionID string `json:"session_id"`
	Orders    int    `json:"orders"`
}
