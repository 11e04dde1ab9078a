package api

import (
	"salesledger_server/api/health"
	"salesledger_server/api/products"
	"salesledger_server/api/sales"

	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	salesRoutes   *sales.SalesRoutesManager
	productRoutes *products.ProductRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	salesRoutes *sales.SalesRoutesManager,
	productRoutes *products.ProductRoutesManager,
	healthRoutes *health.HealthRoutesManager,
) *routerManager {
	return &routerManager{
		salesRoutes:   salesRoutes,
		productRoutes: productRoutes,
		healthRoutes:  healthRoutes,
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.salesRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
