package airports

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "airport_location", "a").
	Project("icao_code", "icao_code").
	Project("iata_code", "iata_code").
	Project("name", "name").
	Project("city", "city").
	Project("country", "country").
	Project("lat", "lat").
	Project("lon", "lon")

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates an airport lookup repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "airports"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

// Lookup returns airport details for the given codes, keyed by normalized
// (lower-case) code. Codes without a matching row are absent from the result.
func (r *repo) Lookup(ctx context.Context, codes []string) (map[string]Airport, error) {
	normalized := normalize(codes)
	if len(normalized) == 0 {
		return map[string]Airport{}, nil
	}

	b := query.NewBuilder(projection)
	b.WhereInStrings("icao_code", normalized)
	q, args := b.Build()

	rows, err := repository.QueryMany(ctx, r.db, q, args, scanAirport)
	if err != nil {
		return nil, fmt.Errorf("lookup airports: %w", err)
	}

	result := make(map[string]Airport, len(rows))
	for _, a := range rows {
		result[a.ICAOCode] = a
	}
	return result, nil
}

// Find returns a single airport by code, or ErrNotFound.
func (r *repo) Find(ctx context.Context, code string) (*Airport, error) {
	q, args := query.NewBuilder(projection).BuildSingle("icao_code", strings.ToLower(code))

	a, err := repository.QueryOne(ctx, r.db, q, args, scanAirport)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &a, nil
}

func normalize(codes []string) []string {
	seen := make(map[string]bool, len(codes))
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		c := strings.ToLower(strings.TrimSpace(code))
		if c == "" || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

func scanAirport(s repository.Scanner) (Airport, error) {
	var a Airport
	err := s.Scan(
		&a.ICAOCode,
		&a.IATACode,
		&a.Name,
		&a.City,
		&a.Country,
		&a.Lat,
		&a.Lon,
	)
	return a, err
}
