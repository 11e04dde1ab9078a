package sales

import (
	"errors"
	"net/http"
	"salesledger_server/handling"
	"salesledger_server/lib"
	"salesledger_server/services"

	"github.com/MonkyMars/gecho"
)

// FetchAllSales handles GET /sales. The result set is unbounded and
// ordered newest first.
func (srm *SalesRoutesManager) FetchAllSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sales, err := srm.saleService.ListSales(ctx)
	if err != nil {
		handling.HandleError(err, "failed to fetch sales", srm.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, sales)
}

// FetchSaleByID handles GET /sales/{sale_id}.
func (srm *SalesRoutesManager) FetchSaleByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := handling.ParseIDParam(r, "sale_id")
	if err != nil {
		lib.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	sale, err := srm.saleService.GetSale(ctx, saleID)
	if err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			lib.WriteError(w, http.StatusNotFound, "Sale not found")
			return
		}
		handling.HandleError(err, "failed to fetch sale", srm.logger, w)
		return
	}

	srm.logger.Debug("Sale fetched", gecho.Field("sale_id", saleID))
	lib.WriteJSON(w, http.StatusOK, sale)
}
