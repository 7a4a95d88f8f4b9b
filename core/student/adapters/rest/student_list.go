package rest

import (
	"net/http"

	"studentapi/modules/api/envelope"
)

// listStudents returns every student as a DTO array. An empty store
// yields an empty array, not an error.
func (a *StudentAPI) listStudents(w http.ResponseWriter, r *http.Request) {
	students, err := a.app.ListStudents(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	envelope.Write(w, http.StatusOK, toDTOs(students))
}
