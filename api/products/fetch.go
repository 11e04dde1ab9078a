package products

import (
	"net/http"
	"salesledger_server/handling"
	"salesledger_server/lib"

	"github.com/MonkyMars/gecho"
)

// FetchAllProducts handles GET /products: the catalog projection
// without unit prices.
func (prm *ProductRoutesManager) FetchAllProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := prm.productService.ListProducts(ctx)
	if err != nil {
		handling.HandleError(err, "failed to fetch products", prm.logger, w)
		return
	}

	prm.logger.Debug("Products fetched", gecho.Field("count", len(products)))
	lib.WriteJSON(w, http.StatusOK, products)
}
