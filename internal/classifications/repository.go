package classifications

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/manyara-labs/aerolens/internal/sources"
	"github.com/manyara-labs/aerolens/pkg/pagination"
	"github.com/manyara-labs/aerolens/pkg/query"
	"github.com/manyara-labs/aerolens/pkg/repository"
)

type repo struct {
	db     *sql.DB
	srcs   sources.System
	pager  pagination.Config
	logger *slog.Logger
}

// New creates a classification result repository implementing the System
// interface. Full retrieval joins back to the source record system.
func New(db *sql.DB, srcs sources.System, pager pagination.Config, logger *slog.Logger) System {
	return &repo{
		db:     db,
		srcs:   srcs,
		pager:  pager,
		logger: logger.With("system", "classifications"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.pager, r.logger)
}

// List returns a page of classification results, most recently processed
// first unless the request specifies a sort.
func (r *repo) List(ctx context.Context, req pagination.PageRequest, filter ListFilter) (pagination.PageResult[ClassificationResult], error) {
	var zero pagination.PageResult[ClassificationResult]

	b := query.
		NewBuilder(projection, query.SortField{Field: "processed_at", Descending: true}).
		WhereEquals("evaluator_id", filter.EvaluatorID).
		WhereEquals("predicted_category", filter.Category).
		WhereEquals("is_complete", filter.Complete).
		WhereSearch(req.Search, "source_uid", "predicted_category")

	if len(req.Sort) > 0 {
		b.OrderByFields(req.Sort)
	}

	countQuery, countArgs := b.BuildCount()
	total, err := repository.QueryOne(ctx, r.db, countQuery, countArgs, func(s repository.Scanner) (int, error) {
		var n int
		err := s.Scan(&n)
		return n, err
	})
	if err != nil {
		return zero, fmt.Errorf("count classifications: %w", err)
	}

	pageQuery, pageArgs := b.BuildPage(req.Page, req.PageSize)
	results, err := repository.QueryMany(ctx, r.db, pageQuery, pageArgs, scanResult)
	if err != nil {
		return zero, fmt.Errorf("list classifications: %w", err)
	}

	return pagination.NewPageResult(results, total, req.Page, req.PageSize), nil
}

// Find returns a single classification result by id, or ErrNotFound.
func (r *repo) Find(ctx context.Context, id int) (*ClassificationResult, error) {
	q, args := query.NewBuilder(projection).BuildSingle("id", id)

	cr, err := repository.QueryOne(ctx, r.db, q, args, scanResult)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}
	return &cr, nil
}

// FullByUID returns the classification for a source identifier together with
// the origin record in canonical shape.
func (r *repo) FullByUID(ctx context.Context, uid string) (*FullResult, error) {
	rec, err := r.srcs.Fetch(ctx, uid)
	if err != nil {
		return nil, err
	}

	q, args := query.NewBuilder(projection).BuildSingle("source_uid", uid)
	cr, err := repository.QueryOne(ctx, r.db, q, args, scanResult)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrNotFound)
	}

	return &FullResult{
		Classification: cr,
		Record:         *rec,
	}, nil
}

// BulkRetrieve joins classifications with their origin records for a set of
// identifiers, fanning out one query per source kind. Identifiers with an
// unknown prefix or without a classified row are omitted from the result
// rather than failing the batch.
func (r *repo) BulkRetrieve(ctx context.Context, uids []string) (*BulkReport, error) {
	records := make(map[string]BulkRecord)

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for kind, kindUIDs := range sources.Partition(uids) {
		g.Go(func() error {
			rows, err := r.retrieveKind(ctx, kind, kindUIDs)
			if err != nil {
				return fmt.Errorf("bulk retrieve %s: %w", kind, err)
			}

			mu.Lock()
			defer mu.Unlock()
			for _, row := range rows {
				records[row.UID] = row
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &BulkReport{
		Records:    records,
		Statistics: Summarize(records),
	}, nil
}

func (r *repo) retrieveKind(ctx context.Context, kind sources.Kind, uids []string) ([]BulkRecord, error) {
	p := sources.Projection(kind)

	b := query.NewBuilder(p)
	b.Join(fmt.Sprintf(
		"JOIN %s ON %s = %s",
		projection.From(),
		projection.Column("source_uid"),
		p.Column("uid"),
	))
	b.WhereInStrings("uid", uids)

	stmt, args := b.BuildSelect(fmt.Sprintf(
		"%s, %s AS predicted_category, %s AS final_category",
		p.Select(sources.CanonicalFields...),
		projection.Column("predicted_category"),
		projection.Column("final_category"),
	))

	return repository.QueryMany(ctx, r.db, stmt, args, scanBulkRecord)
}
