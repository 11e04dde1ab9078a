package services

import (
	"context"
	"errors"
	"fmt"
	"salesledger_server/lib"
	"salesledger_server/structs"
	"salesledger_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
)

var (
	ErrSaleNotFound    = errors.New("sale not found")
	ErrProductNotFound = errors.New("product not found")
)

// SaleStore is the persistence surface the sale service needs.
type SaleStore interface {
	List(ctx context.Context) ([]tables.Sale, error)
	Get(ctx context.Context, saleID int64) (*tables.Sale, error)
	Insert(ctx context.Context, sale *tables.Sale) error
	Update(ctx context.Context, sale *tables.Sale) (int64, error)
	Delete(ctx context.Context, saleID int64) (int64, error)
}

// ProductReader resolves catalog unit prices.
type ProductReader interface {
	UnitPrice(ctx context.Context, productID int64) (float64, error)
}

// SaleService owns the sale lifecycle: amounts are always derived from
// the catalog price at write time, never taken from the caller.
type SaleService struct {
	logger   *gecho.Logger
	store    SaleStore
	products ProductReader
}

func NewSaleService(logger *gecho.Logger, store SaleStore, products ProductReader) *SaleService {
	return &SaleService{
		logger:   logger,
		store:    store,
		products: products,
	}
}

// ListSales returns every sale, newest first.
func (ss *SaleService) ListSales(ctx context.Context) ([]tables.Sale, error) {
	sales, err := ss.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	return sales, nil
}

// GetSale returns one sale or ErrSaleNotFound.
func (ss *SaleService) GetSale(ctx context.Context, saleID int64) (*tables.Sale, error) {
	sale, err := ss.store.Get(ctx, saleID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("failed to fetch sale %d: %w", saleID, err)
	}
	return sale, nil
}

// CreateSale looks up the current unit price, derives the amount and
// persists the new sale. ErrProductNotFound when the product is absent.
func (ss *SaleService) CreateSale(ctx context.Context, req *structs.SaleRequest) (*tables.Sale, error) {
	unitPrice, err := ss.products.UnitPrice(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, lib.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to look up unit price for product %d: %w", req.ProductID, err)
	}

	sale := &tables.Sale{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Amount:       unitPrice * float64(req.Quantity),
		SaleDate:     req.SaleDate,
		CustomerName: req.CustomerName,
		Remarks:      req.Remarks,
		CreatedAt:    time.Now().UTC(),
	}

	if err := ss.store.Insert(ctx, sale); err != nil {
		// The product can vanish between the price read and the insert.
		if errors.Is(err, lib.ErrForeignKey) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	ss.logger.Info("Sale created",
		gecho.Field("sale_id", sale.SaleID),
		gecho.Field("product_id", sale.ProductID),
		gecho.Field("quantity", sale.Quantity),
		gecho.Field("amount", sale.Amount),
	)

	return sale, nil
}

// UpdateSale replaces every caller-settable field of an existing sale.
// The amount is recomputed from the current unit price only when
// product_id or quantity differ from the stored row; otherwise the
// historical amount is preserved even if the catalog price moved.
func (ss *SaleService) UpdateSale(ctx context.Context, saleID int64, req *structs.SaleRequest) (*tables.Sale, error) {
	existing, err := ss.GetSale(ctx, saleID)
	if err != nil {
		return nil, err
	}

	amount := existing.Amount
	if req.ProductID != existing.ProductID || req.Quantity != existing.Quantity {
		unitPrice, err := ss.products.UnitPrice(ctx, req.ProductID)
		if err != nil {
			if errors.Is(err, lib.ErrNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to look up unit price for product %d: %w", req.ProductID, err)
		}
		amount = unitPrice * float64(req.Quantity)
	}

	updated := &tables.Sale{
		SaleID:       saleID,
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		Amount:       amount,
		SaleDate:     req.SaleDate,
		CustomerName: req.CustomerName,
		Remarks:      req.Remarks,
		CreatedAt:    existing.CreatedAt,
	}

	rows, err := ss.store.Update(ctx, updated)
	if err != nil {
		if errors.Is(err, lib.ErrForeignKey) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update sale %d: %w", saleID, err)
	}
	if rows == 0 {
		return nil, ErrSaleNotFound
	}

	ss.logger.Info("Sale updated",
		gecho.Field("sale_id", saleID),
		gecho.Field("amount", updated.Amount),
		gecho.Field("repriced", amount != existing.Amount),
	)

	return updated, nil
}

// DeleteSale removes a sale. ErrSaleNotFound when no row matched.
func (ss *SaleService) DeleteSale(ctx context.Context, saleID int64) error {
	rows, err := ss.store.Delete(ctx, saleID)
	if err != nil {
		return fmt.Errorf("failed to delete sale %d: %w", saleID, err)
	}
	if rows == 0 {
		return ErrSaleNotFound
	}

	ss.logger.Info("Sale deleted", gecho.Field("sale_id", saleID))
	return nil
}
