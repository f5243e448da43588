package airports_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/manyara-labs/aerolens/internal/airports"
)

type stubSystem struct {
	byCode map[string]airports.Airport
}

func (s *stubSystem) Handler() *airports.Handler { return nil }

func (s *stubSystem) Lookup(ctx context.Context, codes []string) (map[string]airports.Airport, error) {
	result := make(map[string]airports.Airport)
	for _, code := range codes {
		if a, ok := s.byCode[code]; ok {
			result[code] = a
		}
	}
	return result, nil
}

func (s *stubSystem) Find(ctx context.Context, code string) (*airports.Airport, error) {
	if a, ok := s.byCode[code]; ok {
		return &a, nil
	}
	return nil, airports.ErrNotFound
}

func testHandler() *airports.Handler {
	lat, lon := 40.6413, -73.7781
	sys := &stubSystem{
		byCode: map[string]airports.Airport{
			"kjfk": {ICAOCode: "kjfk", Lat: &lat, Lon: &lon},
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return airports.NewHandler(sys, logger)
}

func TestHandlerLookup(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest("GET", "/airports?codes=kjfk&codes=zzzz", nil)
	rec := httptest.NewRecorder()
	h.Lookup(rec, req)

	res := rec.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}

	var parsed map[string]airports.Airport
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if len(parsed) != 1 {
		t.Errorf("result has %d entries, want 1", len(parsed))
	}
	if _, ok := parsed["kjfk"]; !ok {
		t.Error("result missing kjfk")
	}
}

func TestHandlerFindNotFound(t *testing.T) {
	h := testHandler()

	req := httptest.NewRequest("GET", "/airports/zzzz", nil)
	req.SetPathValue("code", "zzzz")
	rec := httptest.NewRecorder()
	h.Find(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestAirportHasCoordinates(t *testing.T) {
	lat, lon := 1.0, 2.0

	tests := []struct {
		name string
		a    airports.Airport
		want bool
	}{
		{"both set", airports.Airport{Lat: &lat, Lon: &lon}, true},
		{"missing lon", airports.Airport{Lat: &lat}, false},
		{"missing both", airports.Airport{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.HasCoordinates(); got != tt.want {
				t.Errorf("HasCoordinates() = %v, want %v", got, tt.want)
			}
		})
	}
}
