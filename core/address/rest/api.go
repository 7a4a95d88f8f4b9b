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
	"studentapi/modules/server"

	"github.com/gofrs/uuid/v5"
)

var _ server.RegistrableService = (*AddressAPI)(nil)

// AddressAPI is the standalone address collaborator. It serves
// synthetic addresses; there is no backing store.
type AddressAPI struct{}

func NewAddressAPI() *AddressAPI {
	return &AddressAPI{}
}

type Address struct {
	ID      uuid.UUID `json:"id"`
	Address string    `json:"address"`
}

func (a *AddressAPI) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/address/{$}", a.getAddress)
	mux.HandleFunc("GET /healthz", a.healthz)
}

func (a *AddressAPI) Middlewares() []func(http.Handler) http.Handler {
	return nil
}

// getAddress returns a fresh synthetic address on every call.
func (a *AddressAPI) getAddress(w http.ResponseWriter, r *http.Request) {
	envelope.Write(w, http.StatusOK, Address{
		ID:      uuid.Must(uuid.NewV4()),
		Address: "1234 Random St",
	})
}

func (a *AddressAPI) healthz(w http.ResponseWriter, r *http.Request) {
	envelope.Write(w, http.StatusOK, map[string]string{"status": "up"})
}
