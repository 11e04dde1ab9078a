package structs

// SaleRequest is the payload for POST /sales and PUT /sales/{sale_id}.
// PUT has full-replace semantics, so the same complete payload is
// required for both.
type SaleRequest struct {
	ProductID    int64   `json:"product_id" validate:"required,gt=0"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	SaleDate     Date    `json:"sale_date" validate:"required,notfuture"`
	CustomerName string  `json:"customer_name" validate:"required,min=1,max=100"`
	Remarks      *string `json:"remarks" validate:"omitempty,max=255"`
}
