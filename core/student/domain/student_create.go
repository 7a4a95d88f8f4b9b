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
	"errors"
	"log/slog"
)

func (app *Application) CreateStudent(ctx context.Context, name, email string) (*Student, error) {
	if len(name) == 0 || len(email) == 0 {
		slog.ErrorContext(ctx, "invalid student data", slog.String("name", name))
		return nil, ErrInvalidData
	}
	var created *Student
	err := app.writer.WithTx(ctx, func(ctx context.Context, tx StudentWriteTx) error {
		s, err := tx.CreateStudent(ctx, name, email)
		if err != nil {
			return err
		}
		created = s
		return nil
	})
	if err == nil {
		slog.DebugContext(ctx, "created student", slog.String("id", created.ID.String()))
		return created, nil
	}
	if errors.Is(err, ErrDuplicateEmail) {
		slog.ErrorContext(ctx, "duplicate email", slog.String("email", email))
		return nil, ErrDuplicateEmail
	}

	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
