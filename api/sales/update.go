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

// UpdateSale handles PUT /sales/{sale_id} with full-replace semantics:
// the complete payload is required and every caller-settable field is
// overwritten. The amount is recomputed only on a product or quantity
// delta.
func (srm *SalesRoutesManager) UpdateSale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	saleID, err := handling.ParseIDParam(r, "sale_id")
	if err != nil {
		lib.WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	req, err := lib.ExtractAndValidateBody[structs.SaleRequest](r)
	if err != nil {
		var ve *lib.ValidationError
		if errors.As(err, &ve) {
			srm.logger.Warn("Sale payload failed validation",
				gecho.Field("sale_id", saleID),
				gecho.Field("errors", ve.Errors),
			)
			lib.WriteValidationError(w, ve)
			return
		}
		srm.logger.Warn("Failed to decode sale payload", gecho.Field("error", err))
		lib.WriteError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	sale, err := srm.saleService.UpdateSale(ctx, saleID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSaleNotFound):
			lib.WriteError(w, http.StatusNotFound, "Sale not found")
		case errors.Is(err, services.ErrProductNotFound):
			lib.WriteError(w, http.StatusNotFound, "Product not found")
		default:
			handling.HandleError(err, "failed to update sale", srm.logger, w)
		}
		return
	}

	lib.WriteJSON(w, http.StatusOK, sale)
}
