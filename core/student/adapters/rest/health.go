package rest

import (
	"net/http"

	"studentapi/modules/api/envelope"
)

func healthz(w http.ResponseWriter, r *http.Request) {
	envelope.Write(w, http.StatusOK, map[string]string{"status": "up"})
}
