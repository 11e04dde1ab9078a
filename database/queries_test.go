package database

import (
	"database/sql"
	"salesledger_server/structs"
	"salesledger_server/structs/tables"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// newQueryDB builds a handle for rendering SQL. Nothing here ever
// dials: sql.OpenDB is lazy and String() only formats.
func newQueryDB() *DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithInsecure(true)))
	return &DB{bun.NewDB(sqldb, pgdialect.New())}
}

func TestSaleStore_ListSQL(t *testing.T) {
	st := NewSaleStore(newQueryDB())

	var sales []tables.Sale
	query := st.listQuery(&sales).String()

	assert.Contains(t, query, `FROM "sales" AS "s"`, "raw fragments rely on the s alias being defined")
	assert.Contains(t, query, "ORDER BY s.created_at DESC", "listing is newest first")
}

func TestSaleStore_GetSQL(t *testing.T) {
	st := NewSaleStore(newQueryDB())

	query := st.getQuery(new(tables.Sale), 1).String()

	assert.Contains(t, query, `FROM "sales" AS "s"`)
	assert.Contains(t, query, "s.sale_id = 1")
}

func TestSaleStore_InsertSQL(t *testing.T) {
	st := NewSaleStore(newQueryDB())

	sale := &tables.Sale{
		ProductID:    1,
		Quantity:     3,
		Amount:       30.00,
		SaleDate:     structs.NewDate(2025, time.March, 14),
		CustomerName: "Jane Doe",
		CreatedAt:    time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
	}
	query := st.insertQuery(sale).String()

	assert.Contains(t, query, `INSERT INTO "sales"`)
	assert.Contains(t, query, `RETURNING "sale_id"`, "the generated id must come back with the insert")

	stmt, _, found := strings.Cut(query, "RETURNING")
	require.True(t, found)
	assert.NotContains(t, stmt, `"sale_id"`, "sale_id is generated, never written")
}

func TestSaleStore_UpdateSQL(t *testing.T) {
	st := NewSaleStore(newQueryDB())

	sale := &tables.Sale{
		SaleID:       7,
		ProductID:    1,
		Quantity:     5,
		Amount:       50.00,
		SaleDate:     structs.NewDate(2025, time.March, 14),
		CustomerName: "Jane Doe",
		CreatedAt:    time.Date(2025, time.March, 14, 12, 0, 0, 0, time.UTC),
	}
	query := st.updateQuery(sale).String()

	assert.Contains(t, query, `UPDATE "sales"`)
	assert.Contains(t, query, `"sale_id" = 7`, "update is keyed on the primary key")
	assert.NotContains(t, query, `"created_at" =`, "created_at is immutable")
}

func TestSaleStore_DeleteSQL(t *testing.T) {
	st := NewSaleStore(newQueryDB())

	query := st.deleteQuery(9).String()

	assert.Contains(t, query, `DELETE FROM "sales" AS "s"`)
	assert.Contains(t, query, "s.sale_id = 9")
}

func TestProductStore_UnitPriceSQL(t *testing.T) {
	st := NewProductStore(newQueryDB())

	query := st.unitPriceQuery(new(tables.Product), 2).String()

	assert.Contains(t, query, `"p"."unit_price"`)
	assert.Contains(t, query, `FROM "products" AS "p"`, "raw fragments rely on the p alias being defined")
	assert.Contains(t, query, "p.product_id = 2")
}

func TestProductStore_ListSQL(t *testing.T) {
	st := NewProductStore(newQueryDB())

	var products []tables.Product
	query := st.listQuery(&products).String()

	assert.Contains(t, query, `FROM "products" AS "p"`)
	assert.Contains(t, query, `"p"."product_id"`)
	assert.Contains(t, query, `"p"."product_name"`)
	assert.Contains(t, query, `"p"."product_type_id"`)
	assert.Contains(t, query, "ORDER BY p.product_id ASC")
	assert.NotContains(t, query, "unit_price", "the price column never enters the listing")
}
