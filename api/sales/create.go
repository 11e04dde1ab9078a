package sales

import (
	"errors"
	"net/http"
	"salesledger_server/handling"
	"salesledger_server/lib"
	"salesledger_server/services"
	"salesledger_server/structs"

	"github.com/MonkyMars/gecho"
)

// CreateSale handles POST /sales: validate, derive the amount from the
// current unit price, persist, echo the stored representation.
func (srm *SalesRoutesManager) CreateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := lib.ExtractAndValidateBody[structs.SaleRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			srm.logger.Warn("Sale payload failed validation", gecho.Field("errors", ve.Errors))
			lib.WriteValidationError(w, ve)
			return
		}
		srm.logger.Warn("Failed to decode sale payload", gecho.Field("error", err))
		lib.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sale, err := srm.saleService.CreateSale(ctx, req)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			lib.WriteError(w, http.StatusNotFound, "Product not found")
			return
		}
		handling.HandleError(err, "failed to create sale", srm.logger, w)
		return
	}

	lib.WriteJSON(w, http.StatusOK, sale)
}
