package database

import (
	"context"
	"salesledger_server/lib"
	"salesledger_server/structs/tables"

	"github.com/uptrace/bun"
)

// ProductStore reads the externally owned product catalog. There are
// no write paths on purpose.
type ProductStore struct {
	db *DB
}

func NewProductStore(db *DB) *ProductStore {
	return &ProductStore{db: db}
}

func (st *ProductStore) unitPriceQuery(product *tables.Product, productID int64) *bun.SelectQuery {
	return st.db.NewSelect().
		Model(product).
		Column("p.unit_price").
		Where("p.product_id = ?", productID)
}

func (st *ProductStore) listQuery(products *[]tables.Product) *bun.SelectQuery {
	return st.db.NewSelect().
		Model(products).
		Column("p.product_id", "p.product_name", "p.product_type_id").
		OrderExpr("p.product_id ASC")
}

// UnitPrice is the point read used to derive sale amounts. Returns
// lib.ErrNotFound when the product does not exist.
func (st *ProductStore) UnitPrice(ctx context.Context, productID int64) (float64, error) {
	product := new(tables.Product)
	if err := st.unitPriceQuery(product, productID).Scan(ctx); err != nil {
		return 0, lib.MapPgError(err)
	}
	return product.UnitPrice, nil
}

// List returns the full catalog with the unit price column left out of
// the selection entirely.
func (st *ProductStore) List(ctx context.Context) ([]tables.Product, error) {
	products := make([]tables.Product, 0)
	if err := st.listQuery(&products).Scan(ctx); err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}
