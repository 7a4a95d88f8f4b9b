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

package pg

import (
	"context"
	"fmt"
	"time"

	"studentapi/core/student/domain"
	"studentapi/modules/db"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ domain.StudentWriteStore = (*PostgresStudentWriter)(nil)

type (
	PostgresStudentWriter struct {
		table string
		db    *bob.DB // for prepared statements on primary
		txm   db.TxManager

		createStmt bob.QueryStmt[createStudentArgs, StudentRow, []StudentRow]
		updateStmt bob.QueryStmt[updateStudentArgs, StudentRow, []StudentRow]
		deleteStmt bob.QueryStmt[deleteStudentArgs, uuid.UUID, []uuid.UUID]
	}

	// Arg types for write operations
	createStudentArgs struct {
		Name  string `db:"name"`
		Email string `db:"email"`
	}

	updateStudentArgs struct {
		ID    uuid.UUID `db:"id"`
		Name  string    `db:"name"`
		Email string    `db:"email"`
	}

	deleteStudentArgs struct {
		ID uuid.UUID `db:"id"`
	}
)

// NewPostgresStudentWriter creates a writer with prepared statements
// bound to the primary. The id column default assigns identifiers, so
// the insert never carries one.
func NewPostgresStudentWriter(ctx context.Context, pool db.ConnectionPool, table string) (*PostgresStudentWriter, error) {
	primary := pool.Writer().(bob.DB)

	w := &PostgresStudentWriter{
		table: table,
		db:    &primary,
		txm:   pool,
	}

	// INSERT INTO ... RETURNING ...
	insertQuery := psql.Insert(
		im.Into(table, "name", "email"),
		im.Values(
			bob.Named("name"),
			bob.Named("email"),
		),
		im.Returning("id", "name", "email", "created_at"),
	)

	createStmt, err := bob.PrepareQuery[createStudentArgs](ctx, primary, insertQuery, scan.StructMapper[StudentRow]())
	if err != nil {
		return nil, fmt.Errorf("prepare create student: %w", err)
	}
	w.createStmt = createStmt

	// Full replacement of all mutable fields.
	updateQuery := psql.Update(
		um.Table(table),
		um.SetCol("name").To(bob.Named("name")),
		um.SetCol("email").To(bob.Named("email")),
		um.Where(psql.Quote("id").EQ(bob.Named("id"))),
		um.Returning("id", "name", "email", "created_at"),
	)

	updateStmt, err := bob.PrepareQuery[updateStudentArgs](ctx, primary, updateQuery, scan.StructMapper[StudentRow]())
	if err != nil {
		return nil, fmt.Errorf("prepare update student: %w", err)
	}
	w.updateStmt = updateStmt

	// Hard delete. Students are never soft-deleted.
	deleteQuery := psql.Delete(
		dm.From(table),
		dm.Where(psql.Quote("id").EQ(bob.Named("id"))),
		dm.Returning("id"),
	)

	deleteStmt, err := bob.PrepareQuery[deleteStudentArgs](ctx, primary, deleteQuery, scan.SingleColumnMapper[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("prepare delete student: %w", err)
	}
	w.deleteStmt = deleteStmt

	return w, nil
}

// CreateStudent implements StudentWriteStore (non-transactional).
func (w *PostgresStudentWriter) CreateStudent(ctx context.Context, name, email string) (*domain.Student, error) {
	row, err := w.createStmt.One(ctx, createStudentArgs{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return nil, wrapStudentError(err)
	}
	s := toStudent(row)
	return &s, nil
}

// UpdateStudent implements StudentWriteStore (non-transactional).
func (w *PostgresStudentWriter) UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*domain.Student, error) {
	row, err := w.updateStmt.One(ctx, updateStudentArgs{
		ID:    id,
		Name:  name,
		Email: email,
	})
	if err != nil {
		return nil, wrapStudentError(err)
	}
	s := toStudent(row)
	return &s, nil
}

// DeleteStudent implements StudentWriteStore (non-transactional).
func (w *PostgresStudentWriter) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	_, err := w.deleteStmt.One(ctx, deleteStudentArgs{ID: id})
	if err != nil {
		return wrapStudentError(err)
	}
	return nil
}

// WithTx implements StudentWriteStore transaction support.
func (w *PostgresStudentWriter) WithTx(
	ctx context.Context,
	fn func(ctx context.Context, tx domain.StudentWriteTx) error,
) error {
	return w.txm.WithTx(ctx, func(ctx context.Context, q db.Querier) error {
		tx, ok := q.(bob.Tx)
		if !ok {
			return fmt.Errorf("querier is not a transaction")
		}

		return fn(ctx, &studentWriterTx{parent: w, tx: tx})
	})
}

// WithTimeoutTx implements StudentWriteStore transaction support with timeout.
func (w *PostgresStudentWriter) WithTimeoutTx(
	ctx context.Context,
	timeout time.Duration,
	fn func(ctx context.Context, tx domain.StudentWriteTx) error,
) error {
	return w.txm.WithTimeoutTx(ctx, timeout, func(ctx context.Context, q db.Querier) error {
		tx, ok := q.(bob.Tx)
		if !ok {
			return fmt.Errorf("querier is not a transaction")
		}

		return fn(ctx, &studentWriterTx{parent: w, tx: tx})
	})
}

// studentWriterTx is a transaction-scoped writer that reuses the
// parent's prepared statements rebound to the transaction connection.
type studentWriterTx struct {
	parent *PostgresStudentWriter
	tx     bob.Tx
}

var _ domain.StudentWriteTx = (*studentWriterTx)(nil)

func (t *studentWriterTx) CreateStudent(ctx context.Context, name, email string) (*domain.Student, error) {
	stmt := inTxQueryStmt(ctx, t.parent.createStmt, t.tx)

	row, err := stmt.One(ctx, createStudentArgs{
		Name:  name,
		Email: email,
	})
	if err != nil {
		return nil, wrapStudentError(err)
	}

	s := toStudent(row)
	return &s, nil
}

func (t *studentWriterTx) UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*domain.Student, error) {
	stmt := inTxQueryStmt(ctx, t.parent.updateStmt, t.tx)

	row, err := stmt.One(ctx, updateStudentArgs{
		ID:    id,
		Name:  name,
		Email: email,
	})
	if err != nil {
		return nil, wrapStudentError(err)
	}

	s := toStudent(row)
	return &s, nil
}

func (t *studentWriterTx) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	stmt := inTxQueryStmt(ctx, t.parent.deleteStmt, t.tx)

	if _, err := stmt.One(ctx, deleteStudentArgs{ID: id}); err != nil {
		return wrapStudentError(err)
	}
	return nil
}
