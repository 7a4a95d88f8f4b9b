package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
)

// UpdateStudent replaces all mutable fields of an existing student.
// This is a full overwrite, not a merge.
func (app *Application) UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*Student, error) {
	if id.IsNil() || len(name) == 0 || len(email) == 0 {
		return nil, ErrInvalidData
	}
	var updated *Student
	err := app.writer.WithTimeoutTx(ctx, 1*time.Second, func(ctx context.Context, tx StudentWriteTx) error {
		s, err := tx.UpdateStudent(ctx, id, name, email)
		if err != nil {
			return err
		}
		updated = s
		return nil
	})
	if err == nil {
		return updated, nil
	}
	if errors.Is(err, ErrStudentNotFound) {
		return nil, ErrStudentNotFound
	}
	if errors.Is(err, ErrDuplicateEmail) {
		return nil, ErrDuplicateEmail
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
