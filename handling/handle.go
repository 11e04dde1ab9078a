package handling

import (
	"net/http"
	"salesledger_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleError is the funnel for unclassified failures: log with caller
// context, answer with a generic 500.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))

	lib.WriteError(w, http.StatusInternalServerError, "internal server error")
}
