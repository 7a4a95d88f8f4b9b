// Copyright 2025 Nguyen Nhat Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rest

import (
	"net/http"

	"studentapi/modules/api/envelope"

	"github.com/gofrs/uuid/v5"
)

// deleteStudent removes a student.
// Success responds 200 with data null, not 204; existing clients
// depend on the envelope being present.
func (a *StudentAPI) deleteStudent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.FromString(r.PathValue("id"))
	if err != nil {
		writeValidationError(w, map[string]string{"id": "Invalid id"})
		return
	}

	if err := a.app.DeleteStudent(r.Context(), id); err != nil {
		writeDomainError(w, err)
		return
	}
	envelope.Write(w, http.StatusOK, nil)
}
