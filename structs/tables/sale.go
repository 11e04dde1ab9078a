package tables

import (
	"salesledger_server/structs"
	"time"

	"github.com/uptrace/bun"
)

// Sale is one recorded transaction. Amount is derived from the catalog
// unit price when the row is written and is never settable by callers.
type Sale struct {
	bun.BaseModel `bun:"table:sales,alias:s"`

	SaleID       int64        `bun:"sale_id,pk,autoincrement" json:"sale_id"`
	ProductID    int64        `bun:"product_id,notnull" json:"product_id"`
	Quantity     int          `bun:"quantity,notnull" json:"quantity"`
	Amount       float64      `bun:"amount,notnull" json:"amount"`
	SaleDate     structs.Date `bun:"sale_date,notnull" json:"sale_date"`
	CustomerName string       `bun:"customer_name,notnull" json:"customer_name"`
	Remarks      *string      `bun:"remarks,nullzero" json:"remarks"`
	CreatedAt    time.Time    `bun:"created_at,notnull" json:"created_at"`
}
