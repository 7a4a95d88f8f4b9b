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

package address

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"studentapi/core/student/domain"
)

var _ domain.AddressFetcher = (*Client)(nil)

// Client is the outbound HTTP adapter for the address collaborator.
// The request timeout is explicit; without it a slow collaborator
// would hold the handling goroutine for an unbounded time.
type Client struct {
	baseURL string
	hc      *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: timeout},
	}
}

// FetchAddress implements domain.AddressFetcher. The collaborator's
// envelope is returned as-is; any transport or deserialization failure
// collapses into ErrAddressUnavailable.
func (c *Client) FetchAddress(ctx context.Context) (*domain.AddressEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/address/", nil)
	if err != nil {
		return nil, domain.ErrAddressUnavailable
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "address request failed", slog.Any("error", err))
		return nil, domain.ErrAddressUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.ErrorContext(ctx, "address service returned non-2xx", slog.Int("status", resp.StatusCode))
		return nil, domain.ErrAddressUnavailable
	}

	var env domain.AddressEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		slog.ErrorContext(ctx, "malformed address payload", slog.Any("error", err))
		return nil, domain.ErrAddressUnavailable
	}

	return &env, nil
}
