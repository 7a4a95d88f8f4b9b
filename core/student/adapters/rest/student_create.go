// Copyright 2025 Nhat-Nguyen Nguyen
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
	"studentapi/modules/api/serde"
)

// createStudent creates a new student.
// Returns 201 on success, 409 on duplicate email, 400 on validation failure.
func (a *StudentAPI) createStudent(w http.ResponseWriter, r *http.Request) {
	var dto StudentDTO
	if err := serde.ParseJsonBody(r.Body, &dto); err != nil {
		envelope.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fields := dto.Validate(); fields != nil {
		writeValidationError(w, fields)
		return
	}

	created, err := a.app.CreateStudent(r.Context(), dto.Name, dto.Email)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	envelope.Write(w, http.StatusCreated, toDTO(*created))
}
