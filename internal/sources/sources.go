// Package sources implements the source registry for aviation incident records.
// Incident records live in one of several source tables, each with its own
// native schema; the registry resolves a record identifier's prefix to the
// owning table and the projection that renames its native columns onto the
// canonical field set.
package sources

import "time"

// Kind identifies one of the fixed record source schemas.
type Kind string

const (
	KindASN  Kind = "asn"
	KindASRS Kind = "asrs"
	KindPCI  Kind = "pci"
)

// CanonicalFields is the source-independent field set every kind's native
// columns are mapped onto, in projection order.
var CanonicalFields = []string{
	"uid",
	"date",
	"phase",
	"aircraft_type",
	"location",
	"operator",
	"narrative",
}

// Record is an incident record in canonical shape, regardless of source kind.
// Fields a source does not carry are nil.
type Record struct {
	UID          string     `json:"uid"`
	Date         *time.Time `json:"date"`
	Phase        *string    `json:"phase"`
	AircraftType *string    `json:"aircraft_type"`
	Location     *string    `json:"location"`
	Operator     *string    `json:"operator"`
	Narrative    *string    `json:"narrative"`
}
