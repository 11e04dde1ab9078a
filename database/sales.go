package database

import (
	"context"
	"salesledger_server/lib"
	"salesledger_server/structs/tables"

	"github.com/uptrace/bun"
)

// SaleStore runs the fixed set of sale statements against Postgres.
// Each call is a single statement on a pooled connection; isolation
// between concurrent requests is left to the database.
type SaleStore struct {
	db *DB
}

func NewSaleStore(db *DB) *SaleStore {
	return &SaleStore{db: db}
}

func (st *SaleStore) listQuery(sales *[]tables.Sale) *bun.SelectQuery {
	return st.db.NewSelect().
		Model(sales).
		OrderExpr("s.created_at DESC")
}

func (st *SaleStore) getQuery(sale *tables.Sale, saleID int64) *bun.SelectQuery {
	return st.db.NewSelect().
		Model(sale).
		Where("s.sale_id = ?", saleID)
}

func (st *SaleStore) insertQuery(sale *tables.Sale) *bun.InsertQuery {
	return st.db.NewInsert().
		Model(sale).
		ExcludeColumn("sale_id").
		Returning("?", bun.Ident("sale_id"))
}

func (st *SaleStore) updateQuery(sale *tables.Sale) *bun.UpdateQuery {
	return st.db.NewUpdate().
		Model(sale).
		WherePK().
		ExcludeColumn("created_at")
}

func (st *SaleStore) deleteQuery(saleID int64) *bun.DeleteQuery {
	return st.db.NewDelete().
		Model((*tables.Sale)(nil)).
		Where("s.sale_id = ?", saleID)
}

// List returns every sale, newest first.
func (st *SaleStore) List(ctx context.Context) ([]tables.Sale, error) {
	sales := make([]tables.Sale, 0)
	if err := st.listQuery(&sales).Scan(ctx); err != nil {
		return nil, lib.MapPgError(err)
	}
	return sales, nil
}

// Get returns the sale with the given id, or lib.ErrNotFound.
func (st *SaleStore) Get(ctx context.Context, saleID int64) (*tables.Sale, error) {
	sale := new(tables.Sale)
	if err := st.getQuery(sale, saleID).Scan(ctx); err != nil {
		return nil, lib.MapPgError(err)
	}
	return sale, nil
}

// Insert persists a new sale and fills in the generated sale_id.
func (st *SaleStore) Insert(ctx context.Context, sale *tables.Sale) error {
	_, err := st.insertQuery(sale).Exec(ctx)
	return lib.MapPgError(err)
}

// Update overwrites every column of an existing sale except the
// immutable created_at. Returns the number of rows touched.
func (st *SaleStore) Update(ctx context.Context, sale *tables.Sale) (int64, error) {
	res, err := st.updateQuery(sale).Exec(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}

// Delete removes the sale with the given id and reports how many rows
// were removed (zero means the sale did not exist).
func (st *SaleStore) Delete(ctx context.Context, saleID int64) (int64, error) {
	res, err := st.deleteQuery(saleID).Exec(ctx)
	if err != nil {
		return 0, lib.MapPgError(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return rows, nil
}
