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

package domain

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// StudentReadStore defines the port for read operations on students.
//
// It is separated from StudentWriteStore so implementations can route
// reads to replica databases while writes stay on the primary.
type StudentReadStore interface {
	// GetStudents returns every stored student. An empty store yields
	// an empty slice, not an error. Results come back in insertion
	// order (created_at, id ascending).
	GetStudents(ctx context.Context) ([]Student, error)

	// GetStudentByID retrieves a single student by its identifier.
	// Returns ErrStudentNotFound if no such record exists.
	GetStudentByID(ctx context.Context, id uuid.UUID) (*Student, error)
}

// StudentWriteStore defines the port for write operations on students.
//
// All methods execute without an implicit transaction; to group
// operations atomically use WithTx, which provides a StudentWriteTx
// scoped to the transaction lifetime.
//
// The email uniqueness constraint is enforced by the backing store;
// any pre-check in the application layer is advisory only.
type StudentWriteStore interface {
	// CreateStudent inserts a new student. The identifier is assigned
	// by the store. Returns ErrDuplicateEmail if a student with the
	// same email already exists.
	CreateStudent(ctx context.Context, name, email string) (*Student, error)

	// UpdateStudent performs a full replacement of the student's
	// mutable fields. Returns ErrStudentNotFound if the id is unknown
	// and ErrDuplicateEmail if the new email collides with a different
	// record. Updating a record with its own unchanged email succeeds.
	UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*Student, error)

	// DeleteStudent removes the record permanently. Returns
	// ErrStudentNotFound if the id is unknown.
	DeleteStudent(ctx context.Context, id uuid.UUID) error

	// WithTx executes fn within a database transaction. If fn returns
	// an error the transaction is rolled back, otherwise committed.
	// Do not nest WithTx calls; StudentWriteTx intentionally does not
	// expose it.
	WithTx(ctx context.Context, fn func(ctx context.Context, tx StudentWriteTx) error) error

	// WithTimeoutTx is WithTx with a context timeout applied before
	// the transaction starts.
	WithTimeoutTx(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, tx StudentWriteTx) error) error
}

// StudentWriteTx is a transaction-scoped StudentWriteStore. Instances
// are bound to a single transaction and must not be shared across
// goroutines.
type StudentWriteTx interface {
	CreateStudent(ctx context.Context, name, email string) (*Student, error)
	UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*Student, error)
	DeleteStudent(ctx context.Context, id uuid.UUID) error
}

// AddressFetcher is the port to the external address collaborator.
type AddressFetcher interface {
	// FetchAddress performs a single request against the collaborator
	// and returns its response envelope unmodified. Any transport or
	// deserialization failure surfaces as ErrAddressUnavailable.
	FetchAddress(ctx context.Context) (*AddressEnvelope, error)
}
