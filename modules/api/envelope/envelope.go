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

package envelope

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response wrapper both services speak. The
// status field mirrors the HTTP status; data and error are mutually
// exclusive and always serialized, null when absent.
type Envelope struct {
	Status int     `json:"status"`
	Data   any     `json:"data"`
	Error  *string `json:"error"`
}

// Write sends a success envelope with the given HTTP status and payload.
func Write(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Status: status, Data: data})
}

// WriteError sends a failure envelope carrying only a message.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Status: status, Error: &msg})
}

// WriteFailure sends a failure envelope carrying both a message and a
// payload. Used for validation failures, where data holds the
// field-to-message mapping.
func WriteFailure(w http.ResponseWriter, status int, msg string, data any) {
	writeJSON(w, status, Envelope{Status: status, Data: data, Error: &msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
