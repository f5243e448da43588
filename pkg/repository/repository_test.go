package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/manyara-labs/aerolens/pkg/repository"
)

type fakeResult struct {
	rows int64
	err  error
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rows, r.err }

type fakeExecutor struct {
	result sql.Result
	err    error
}

func (e fakeExecutor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return e.result, e.err
}

func TestExecExpectOne(t *testing.T) {
	tests := []struct {
		name     string
		executor fakeExecutor
		wantErr  error
	}{
		{
			name:     "one row affected",
			executor: fakeExecutor{result: fakeResult{rows: 1}},
			wantErr:  nil,
		},
		{
			name:     "zero rows affected",
			executor: fakeExecutor{result: fakeResult{rows: 0}},
			wantErr:  sql.ErrNoRows,
		},
		{
			name:     "exec failure",
			executor: fakeExecutor{err: driver.ErrBadConn},
			wantErr:  driver.ErrBadConn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repository.ExecExpectOne(context.Background(), tt.executor,
				"UPDATE t SET status = 'complete' WHERE id = $1 AND status = 'pending'", 1)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ExecExpectOne failed: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMapError(t *testing.T) {
	notFound := errors.New("not found")
	duplicate := errors.New("duplicate")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "nil passes through",
			err:  nil,
			want: nil,
		},
		{
			name: "no rows maps to not found",
			err:  sql.ErrNoRows,
			want: notFound,
		},
		{
			name: "wrapped no rows maps to not found",
			err:  fmt.Errorf("query: %w", sql.ErrNoRows),
			want: notFound,
		},
		{
			name: "unique violation maps to duplicate",
			err:  &pgconn.PgError{Code: "23505"},
			want: duplicate,
		},
		{
			name: "other pg error unchanged",
			err:  &pgconn.PgError{Code: "57P01"},
			want: &pgconn.PgError{Code: "57P01"},
		},
		{
			name: "unrelated error unchanged",
			err:  driver.ErrBadConn,
			want: driver.ErrBadConn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := repository.MapError(tt.err, notFound, duplicate)

			if tt.want == nil {
				if got != nil {
					t.Errorf("MapError = %v, want nil", got)
				}
				return
			}

			var wantPg *pgconn.PgError
			if errors.As(tt.want, &wantPg) {
				var gotPg *pgconn.PgError
				if !errors.As(got, &gotPg) || gotPg.Code != wantPg.Code {
					t.Errorf("MapError = %v, want pg error %s", got, wantPg.Code)
				}
				return
			}

			if !errors.Is(got, tt.want) {
				t.Errorf("MapError = %v, want %v", got, tt.want)
			}
		})
	}
}
