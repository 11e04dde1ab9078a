package sales

import (
	"errors"
	"fmt"
	"net/http"
	"salesledger_server/handling"
	"salesledger_server/lib"
	"salesledger_server/services"
)

// DeleteSale handles DELETE /sales/{sale_id}. Deleting a sale never
// touches the product catalog.
func (srm *SalesRoutesManager) DeleteSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := handling.ParseIDParam(r, "sale_id")
	if err != nil {
		lib.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := srm.saleService.DeleteSale(ctx, saleID); err != nil {
		if errors.Is(err, services.ErrSaleNotFound) {
			lib.WriteError(w, http.StatusNotFound, "Sale not found")
			return
		}
		handling.HandleError(err, "failed to delete sale", srm.logger, w)
		return
	}

	lib.WriteMessage(w, http.StatusOK, fmt.Sprintf("Sale %d deleted successfully", saleID))
}
