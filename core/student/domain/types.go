package domain

import (
	"encoding/json"
	"time"

	"github.com/gofrs/uuid/v5"
)

type (
	Application struct {
		reader  StudentReadStore
		writer  StudentWriteStore
		address AddressFetcher
	}

	// Student is the domain model used by the application layer.
	// The identifier is assigned by the store on creation and never
	// changes afterwards.
	Student struct {
		ID        uuid.UUID
		Name      string
		Email     string
		CreatedAt time.Time
	}

	// AddressEnvelope is the address collaborator's response wrapper.
	// The payload is kept raw because the proxy endpoint passes it
	// through to the caller without interpreting it.
	AddressEnvelope struct {
		Status int             `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *string         `json:"error"`
	}
)
