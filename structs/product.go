package structs

// ProductSummary is the catalog listing projection. The unit price is
// deliberately not exposed here; it only surfaces through derived sale
// amounts.
type ProductSummary struct {
	ProductID     int64  `json:"product_id"`
	ProductName   string `json:"product_name"`
	ProductTypeID int    `json:"product_type_id"`
}
