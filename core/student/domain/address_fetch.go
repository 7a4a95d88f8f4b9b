package domain

import (
	"context"
	"errors"
	"log/slog"
)

// FetchAddress asks the address collaborator for a record and returns
// its envelope verbatim. No local transformation is applied.
func (app *Application) FetchAddress(ctx context.Context) (*AddressEnvelope, error) {
	env, err := app.address.FetchAddress(ctx)
	if err == nil {
		return env, nil
	}
	if errors.Is(err, ErrAddressUnavailable) {
		slog.ErrorContext(ctx, "address service unavailable", slog.Any("error", err))
		return nil, ErrAddressUnavailable
	}
	slog.ErrorContext(ctx, "unexpected error", slog.Any("error", err))
	return nil, ErrUnhandled
}
