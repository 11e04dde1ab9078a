package tables

import "github.com/uptrace/bun"

// Product mirrors the externally owned catalog table. This service
// only ever reads it.
type Product struct {
	bun.BaseModel `bun:"table:products,alias:p"`

	ProductID     int64    `bun:"product_id,pk" json:"product_id"`
	ProductName   string   `bun:"product_name,notnull" json:"product_name"`
	ProductTypeID int      `bun:"product_type_id,notnull" json:"product_type_id"`
	UnitPrice     float64  `bun:"unit_price,notnull" json:"unit_price"`
}
