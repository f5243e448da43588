// Package airports implements the static airport reference lookup.
// The table is read-only; codes are normalized to lower case and missing
// codes are simply absent from lookup results, never an error.
package airports

// Airport is one row of the static reference table, keyed by ICAO code.
type Airport struct {
	ICAOCode string   `json:"icao_code"`
	IATACode *string  `json:"iata_code"`
	Name     *string  `json:"name"`
	City     *string  `json:"city"`
	Country  *string  `json:"country"`
	Lat      *float64 `json:"lat"`
	Lon      *float64 `json:"lon"`
}

// HasCoordinates reports whether the airport resolves to a map location.
func (a Airport) HasCoordinates() bool {
	return a.Lat != nil && a.Lon != nil
}
