package health

import (
	"net/http"
	"salesledger_server/lib"
)

func (hrm *HealthRoutesManager) GetServerHealth(w http.ResponseWriter, r *http.Request) {
	lib.WriteJSON(w, http.StatusOK, hrm.healthService.GetServerHealthStatus())
}

func (hrm *HealthRoutesManager) GetDatabaseHealth(w http.ResponseWriter, r *http.Request) {
	dbHealthStatus, err := hrm.healthService.GetDatabaseHealthStatus(r.Context())
	if err != nil {
		lib.WriteJSON(w, http.StatusInternalServerError, dbHealthStatus)
		return
	}
	lib.WriteJSON(w, http.StatusOK, dbHealthStatus)
}
