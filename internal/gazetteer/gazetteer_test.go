package gazetteer

import (
	"os"
	"path/filepath"
	"route-optimization-service/internal/domain"
	"sync"
	"testing"
)

func TestResolveKnownCities(t *testing.T) {
	g := Default()

	cases := []struct {
		input string
		lat   float64
	}{
		{"Mumbai", 19.0760},
		{"  DELHI ", 28.7041},
		{"Andheri East, Mumbai", 19.0760},
		{"pun", 18.5204},
		{"Surat Textile Market", 21.1702},
	}

	for _, tc := range cases {
		loc, ok := g.Resolve(tc.input)
		if !ok || !loc.Resolved {
			t.Errorf("Resolve(%q) not resolved", tc.input)
			continue
		}
		if loc.Coords.Lat != tc.lat {
			t.Errorf("Resolve(%q) lat = %v, want %v", tc.input, loc.Coords.Lat, tc.lat)
		}
		if loc.Name != tc.input {
			t.Errorf("Resolve(%q) name = %q, want original input", tc.input, loc.Name)
		}
	}
}

func TestResolveUnknownReturnsSentinel(t *testing.T) {
	g := Default()

	for _, input := range []string{"Atlantis", "", "   "} {
		loc, ok := g.Resolve(input)
		if ok || loc.Resolved {
			t.Errorf("Resolve(%q) should not resolve", input)
		}
		if !loc.Coords.IsSentinel() {
			t.Errorf("Resolve(%q) coords = %+v, want sentinel", input, loc.Coords)
		}
		if loc.Name != input {
			t.Errorf("Resolve(%q) name = %q", input, loc.Name)
		}
	}
}

func TestNewRejectsInvalidPlaces(t *testing.T) {
	if _, err := New([]Place{{Name: "", Lat: 1, Lon: 1}}); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := New([]Place{{Name: "Nowhere", Lat: 91, Lon: 0}}); err == nil {
		t.Error("expected error for latitude out of range")
	}
	if _, err := New([]Place{{Name: "Nowhere", Lat: 0, Lon: -181}}); err == nil {
		t.Error("expected error for longitude out of range")
	}
	if _, err := New([]Place{{Name: "Null Island", Lat: 0, Lon: 0}}); err == nil {
		t.Error("expected error for the unresolved placeholder coordinate")
	}
	if _, err := New(nil); err == nil {
		t.Error("expected error for empty table")
	}
}

func TestWithOverridesAndExtends(t *testing.T) {
	base := Default()

	g, err := base.With([]Place{
		{Name: "Nagpur", Lat: 21.1458, Lon: 79.0882},
		{Name: "mumbai", Lat: 19.0, Lon: 72.8},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if g.Len() != base.Len()+1 {
		t.Fatalf("Len = %d, want %d", g.Len(), base.Len()+1)
	}

	loc, ok := g.Resolve("Nagpur")
	if !ok || loc.Coords != (domain.Coordinates{Lat: 21.1458, Lon: 79.0882}) {
		t.Fatalf("Nagpur resolved to %+v ok=%v", loc, ok)
	}

	loc, _ = g.Resolve("Mumbai")
	if loc.Coords.Lat != 19.0 {
		t.Fatalf("override not applied: %+v", loc.Coords)
	}

	// base is untouched
	loc, _ = base.Resolve("Mumbai")
	if loc.Coords.Lat != 19.0760 {
		t.Fatalf("base gazetteer mutated: %+v", loc.Coords)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "places.yaml")
	data := []byte("places:\n  - name: Nagpur\n    lat: 21.1458\n    lon: 79.0882\n  - name: Indore\n    lat: 22.7196\n    lon: 75.8577\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	places, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(places) != 2 || places[1].Name != "Indore" || places[1].Lon != 75.8577 {
		t.Fatalf("places = %+v", places)
	}

	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, err := ParseYAML([]byte("places: [")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestResolveConcurrent(t *testing.T) {
	g := Default()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := g.Resolve("Chennai"); !ok {
					t.Error("Chennai not resolved")
					return
				}
			}
		}()
	}
	wg.Wait()
}
