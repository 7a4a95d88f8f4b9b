package rest

import (
	"net/http"

	"studentapi/modules/api/serde"
)

// getAddress proxies the collaborator's envelope to the caller
// verbatim; no local transformation of the payload happens here.
func (a *StudentAPI) getAddress(w http.ResponseWriter, r *http.Request) {
	env, err := a.app.FetchAddress(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	serde.WriteJSON(w, http.StatusOK, env)
}
