package sources

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a source record repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "sources"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Fetch resolves the identifier to its source table and returns the record
// in canonical shape. The caller cannot tell which kind served the record
// except through the identifier prefix itself.
func (r *repo) Fetch(ctx context.Context, uid string) (*Record, error) {
	_, projection, err := Resolve(uid)
	if err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection).BuildSingle("uid", uid)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &rec, nil
}

func scanRecord(s repository.Scanner) (Record, error) {
	var rec Record
	err := s.Scan(
		&rec.UID,
		&rec.Date,
		&rec.Phase,
		&rec.AircraftType,
		&rec.Location,
		&rec.Operator,
		&rec.Narrative,
	)
	return rec, err
}
