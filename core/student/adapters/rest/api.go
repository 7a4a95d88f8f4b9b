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

	"studentapi/core/student/domain"
	"studentapi/modules/server"
)

// StudentAPI implements the HTTP handlers for the profile surface.
// It acts as the REST adapter in the hexagonal architecture,
// translating HTTP requests into domain operations and domain errors
// into envelope responses.
type StudentAPI struct {
	app *domain.Application
}

var _ server.RegistrableService = (*StudentAPI)(nil)

// NewStudentAPI creates a StudentAPI instance with all dependencies.
func NewStudentAPI(reader domain.StudentReadStore, writer domain.StudentWriteStore, address domain.AddressFetcher) *StudentAPI {
	return &StudentAPI{
		app: domain.NewApp(reader, writer, address),
	}
}

// Register mounts the profile routes.
//
// Route table:
//
//	GET    /api/profile/        → list all students
//	POST   /api/profile/        → create a student
//	PATCH  /api/profile/{id}    → replace a student's fields
//	DELETE /api/profile/{id}    → delete a student
//	GET    /api/profile/address → proxy the address collaborator
func (a *StudentAPI) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/profile/{$}", a.listStudents)
	mux.HandleFunc("POST /api/profile/{$}", a.createStudent)
	mux.HandleFunc("PATCH /api/profile/{id}", a.updateStudent)
	mux.HandleFunc("DELETE /api/profile/{id}", a.deleteStudent)
	mux.HandleFunc("GET /api/profile/address", a.getAddress)
	mux.HandleFunc("GET /healthz", healthz)
}

// Middlewares returns global middlewares required by the profile API.
func (a *StudentAPI) Middlewares() []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		RecoverHTTPMiddleware(),
	}
}
