package services

import (
	"context"
	"fmt"
	"salesledger_server/structs"
	"salesledger_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

// ProductLister reads the catalog listing columns.
type ProductLister interface {
	List(ctx context.Context) ([]tables.Product, error)
}

type ProductService struct {
	logger *gecho.Logger
	store  ProductLister
}

func NewProductService(logger *gecho.Logger, store ProductLister) *ProductService {
	return &ProductService{
		logger: logger,
		store:  store,
	}
}

// ListProducts returns the catalog projection. Unit prices stay out of
// the listing; they only surface through derived sale amounts.
func (ps *ProductService) ListProducts(ctx context.Context) ([]structs.ProductSummary, error) {
	products, err := ps.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	summaries := make([]structs.ProductSummary, 0, len(products))
	for _, p := range products {
		summaries = append(summaries, structs.ProductSummary{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			ProductTypeID: p.ProductTypeID,
		})
	}
	return summaries, nil
}
