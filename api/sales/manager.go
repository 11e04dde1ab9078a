package sales

import (
	"salesledger_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type SalesRoutesManager struct {
	logger      *gecho.Logger
	saleService *services.SaleService
}

func NewSalesRoutesManager(
	logger *gecho.Logger,
	saleService *services.SaleService,
) *SalesRoutesManager {
	return &SalesRoutesManager{
		logger:      logger,
		saleService: saleService,
	}
}

func (srm *SalesRoutesManager) RegisterRoutes(r chi.Router) {
	r.Get("/sales", srm.FetchAllSales)
	r.Get("/sales/{sale_id}", srm.FetchSaleByID)
	r.Post("/sales", srm.CreateSale)
	r.Put("/sales/{sale_id}", srm.UpdateSale)
	r.Delete("/sales/{sale_id}", srm.DeleteSale)
}
