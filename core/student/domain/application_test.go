package domain

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	students []Student
	byID     map[uuid.UUID]*Student
	err      error
}

func (f *fakeReader) GetStudents(ctx context.Context) ([]Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.students, nil
}

func (f *fakeReader) GetStudentByID(ctx context.Context, id uuid.UUID) (*Student, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.byID[id]
	if !ok {
		return nil, ErrStudentNotFound
	}
	return s, nil
}

// fakeWriter serves canned results and satisfies both the store and
// its transaction-scoped view.
type fakeWriter struct {
	created *Student
	updated *Student

	createErr error
	updateErr error
	deleteErr error

	txCount int
}

func (f *fakeWriter) CreateStudent(ctx context.Context, name, email string) (*Student, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeWriter) UpdateStudent(ctx context.Context, id uuid.UUID, name, email string) (*Student, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updated, nil
}

func (f *fakeWriter) DeleteStudent(ctx context.Context, id uuid.UUID) error {
	return f.deleteErr
}

func (f *fakeWriter) WithTx(ctx context.Context, fn func(ctx context.Context, tx StudentWriteTx) error) error {
	f.txCount++
	return fn(ctx, f)
}

func (f *fakeWriter) WithTimeoutTx(ctx context.Context, timeout time.Duration, fn func(ctx context.Context, tx StudentWriteTx) error) error {
	f.txCount++
	return fn(ctx, f)
}

type fakeFetcher struct {
	env *AddressEnvelope
	err error
}

func (f *fakeFetcher) FetchAddress(ctx context.Context) (*AddressEnvelope, error) {
	return f.env, f.err
}

func newStudent(name, email string) *Student {
	return &Student{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("success runs in a transaction", func(t *testing.T) {
		w := &fakeWriter{created: newStudent("Alice", "alice@example.com")}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		got, err := app.CreateStudent(ctx, "Alice", "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.Name)
		assert.False(t, got.ID.IsNil())
		assert.Equal(t, 1, w.txCount)
	})

	t.Run("duplicate email passes through", func(t *testing.T) {
		w := &fakeWriter{createErr: ErrDuplicateEmail}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		_, err := app.CreateStudent(ctx, "Alice", "alice@example.com")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("empty fields rejected before hitting the store", func(t *testing.T) {
		w := &fakeWriter{}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		_, err := app.CreateStudent(ctx, "", "alice@example.com")
		assert.ErrorIs(t, err, ErrInvalidData)

		_, err = app.CreateStudent(ctx, "Alice", "")
		assert.ErrorIs(t, err, ErrInvalidData)

		assert.Equal(t, 0, w.txCount)
	})

	t.Run("unexpected store error is masked", func(t *testing.T) {
		w := &fakeWriter{createErr: errors.New("connection reset")}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		_, err := app.CreateStudent(ctx, "Alice", "alice@example.com")
		assert.ErrorIs(t, err, ErrUnhandled)
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	t.Run("success", func(t *testing.T) {
		w := &fakeWriter{updated: newStudent("Bob", "bob@example.com")}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		got, err := app.UpdateStudent(ctx, id, "Bob", "bob@example.com")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", got.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := &fakeWriter{updateErr: ErrStudentNotFound}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		_, err := app.UpdateStudent(ctx, id, "Bob", "bob@example.com")
		assert.ErrorIs(t, err, ErrStudentNotFound)
	})

	t.Run("email collision", func(t *testing.T) {
		w := &fakeWriter{updateErr: ErrDuplicateEmail}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		_, err := app.UpdateStudent(ctx, id, "Bob", "taken@example.com")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("nil id rejected", func(t *testing.T) {
		app := NewApp(&fakeReader{}, &fakeWriter{}, &fakeFetcher{})

		_, err := app.UpdateStudent(ctx, uuid.Nil, "Bob", "bob@example.com")
		assert.ErrorIs(t, err, ErrInvalidData)
	})
}

func TestDeleteStudent(t *testing.T) {
	ctx := context.Background()
	id := uuid.Must(uuid.NewV4())

	t.Run("success", func(t *testing.T) {
		app := NewApp(&fakeReader{}, &fakeWriter{}, &fakeFetcher{})
		assert.NoError(t, app.DeleteStudent(ctx, id))
	})

	t.Run("unknown id", func(t *testing.T) {
		w := &fakeWriter{deleteErr: ErrStudentNotFound}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		assert.ErrorIs(t, app.DeleteStudent(ctx, id), ErrStudentNotFound)
	})

	t.Run("unexpected store error is masked", func(t *testing.T) {
		w := &fakeWriter{deleteErr: errors.New("connection reset")}
		app := NewApp(&fakeReader{}, w, &fakeFetcher{})

		assert.ErrorIs(t, app.DeleteStudent(ctx, id), ErrUnhandled)
	})
}

func TestListStudents(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store yields empty slice", func(t *testing.T) {
		app := NewApp(&fakeReader{students: []Student{}}, &fakeWriter{}, &fakeFetcher{})

		got, err := app.ListStudents(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("reader error is masked", func(t *testing.T) {
		app := NewApp(&fakeReader{err: errors.New("replica down")}, &fakeWriter{}, &fakeFetcher{})

		_, err := app.ListStudents(ctx)
		assert.ErrorIs(t, err, ErrUnhandled)
	})
}

func TestFetchAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("envelope passes through untouched", func(t *testing.T) {
		env := &AddressEnvelope{
			Status: 200,
			Data:   json.RawMessage(`{"id":"x","address":"1234 Random St"}`),
		}
		app := NewApp(&fakeReader{}, &fakeWriter{}, &fakeFetcher{env: env})

		got, err := app.FetchAddress(ctx)
		require.NoError(t, err)
		assert.Equal(t, env, got)
	})

	t.Run("unavailable collaborator", func(t *testing.T) {
		app := NewApp(&fakeReader{}, &fakeWriter{}, &fakeFetcher{err: ErrAddressUnavailable})

		_, err := app.FetchAddress(ctx)
		assert.ErrorIs(t, err, ErrAddressUnavailable)
	})

	t.Run("unexpected error is masked", func(t *testing.T) {
		app := NewApp(&fakeReader{}, &fakeWriter{}, &fakeFetcher{err: errors.New("boom")})

		_, err := app.FetchAddress(ctx)
		assert.ErrorIs(t, err, ErrUnhandled)
	})
}
