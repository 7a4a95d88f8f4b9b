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
	"log/slog"

	"studentapi/core/student/domain"
	"studentapi/modules/db"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

var _ domain.StudentReadStore = (*PostgresStudentReader)(nil)

// PostgresStudentReader uses dynamic queries and calls Reader() per
// query so replica selection happens at runtime. Read queries here are
// small enough that prepared statements buy little.
type PostgresStudentReader struct {
	table string
	pool  db.ReaderConnectionManager
}

func NewPostgresStudentReader(pool db.ReaderConnectionManager, table string) *PostgresStudentReader {
	return &PostgresStudentReader{
		table: table,
		pool:  pool,
	}
}

// GetStudents implements StudentReadStore. Ordering by (created_at, id)
// keeps insertion order stable across calls.
func (r *PostgresStudentReader) GetStudents(ctx context.Context) ([]domain.Student, error) {
	query := psql.Select(
		sm.Columns("id", "name", "email", "created_at"),
		sm.From(r.table),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("id").Asc(),
	)

	students, err := bob.Allx[studentTransformer](ctx, r.pool.Reader(), query, scan.StructMapper[StudentRow]())
	if err != nil {
		slog.ErrorContext(ctx, "GetStudents query error", slog.Any("err", err))
		return nil, wrapStudentError(err)
	}
	return students, nil
}

// GetStudentByID implements StudentReadStore.
func (r *PostgresStudentReader) GetStudentByID(ctx context.Context, id uuid.UUID) (*domain.Student, error) {
	query := psql.Select(
		sm.Columns("id", "name", "email", "created_at"),
		sm.From(r.table),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)

	row, err := bob.One(ctx, r.pool.Reader(), query, scan.StructMapper[StudentRow]())
	if err != nil {
		return nil, wrapStudentError(err)
	}
	s := toStudent(row)
	return &s, nil
}
