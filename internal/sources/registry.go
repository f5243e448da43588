package sources

import (
	"fmt"
	"strings"

	"github.com/manyara-labs/aerolens/pkg/query"
)

// Separator splits the source prefix from the rest of a record identifier.
const Separator = "_"

var projections = map[Kind]*query.ProjectionMap{
	KindASN: query.
		NewProjectionMap("public", "asn_scraped_accidents", "s").
		Project("uid", "uid").
		Project("sanitized_date", "date").
		Project("phase", "phase").
		Project("aircraft_type", "aircraft_type").
		Project("location", "location").
		Project("operator", "operator").
		Project("narrative", "narrative"),
	KindASRS: query.
		NewProjectionMap("public", "asrs_records", "s").
		Project("uid", "uid").
		Project("sanitized_date", "date").
		Project("phase", "phase").
		Project("aircraft_type", "aircraft_type").
		Project("place", "location").
		Project("operator", "operator").
		Project("synopsis", "narrative"),
	KindPCI: query.
		NewProjectionMap("public", "pci_scraped_accidents", "s").
		Project("uid", "uid").
		Project("sanitized_date", "date").
		ProjectExpr("NULL", "phase").
		Project("aircraft_type", "aircraft_type").
		Project("location", "location").
		Project("operator", "operator").
		Project("summary", "narrative"),
}

// Kinds returns all registered source kinds in stable order.
func Kinds() []Kind {
	return []Kind{KindASN, KindASRS, KindPCI}
}

// Resolve maps a record identifier to its source kind and canonical column
// projection. The prefix is the substring before the first separator; an
// identifier without a separator or with an unregistered prefix fails with
// ErrUnknownSource.
func Resolve(uid string) (Kind, *query.ProjectionMap, error) {
	prefix, _, found := strings.Cut(uid, Separator)
	if !found {
		return "", nil, fmt.Errorf("%w: %q has no %q separator", ErrUnknownSource, uid, Separator)
	}

	kind := Kind(prefix)
	p, ok := projections[kind]
	if !ok {
		return "", nil, fmt.Errorf("%w: prefix %q", ErrUnknownSource, prefix)
	}

	return kind, p, nil
}

// Projection returns the canonical column projection for a registered kind,
// or nil for an unknown kind.
func Projection(kind Kind) *query.ProjectionMap {
	return projections[kind]
}

// Partition groups identifiers by source kind. Identifiers with an unknown
// prefix are dropped rather than failing the batch; bulk callers tolerate
// partial misses by omission.
func Partition(uids []string) map[Kind][]string {
	parts := make(map[Kind][]string)
	for _, uid := range uids {
		kind, _, err := Resolve(uid)
		if err != nil {
			continue
		}
		parts[kind] = append(parts[kind], uid)
	}
	return parts
}

// UnionAll returns a canonical SELECT spanning every source table, suitable
// as a CTE body for cross-source aggregation queries. Column names and order
// follow CanonicalFields for every arm.
func UnionAll() string {
	arms := make([]string, 0, len(projections))
	for _, kind := range Kinds() {
		p := projections[kind]
		arms = append(arms, fmt.Sprintf(
			"SELECT %s FROM %s",
			p.Select(CanonicalFields...),
			p.From(),
		))
	}
	return strings.Join(arms, " UNION ALL ")
}
