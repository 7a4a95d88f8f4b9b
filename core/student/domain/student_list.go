package domain

import (
	"context"
	"log/slog"
)

func (app *Application) ListStudents(ctx context.Context) ([]Student, error) {
	students, err := app.reader.GetStudents(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
		return nil, ErrUnhandled
	}
	return students, nil
}
