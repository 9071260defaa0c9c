package scene

import (
	"errors"
	"testing"
)

func TestDefaultCatalogValid(t *testing.T) {
	c := DefaultCatalog()
	if err := c.Validate(); err != nil {
		t.Fatalf("default catalog invalid: %v", err)
	}

	want := []string{"frontend", "backend", "devops", "tools"}
	keys := c.Keys()
	if len(keys) != len(want) {
		t.Fatalf("got %d bodies, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("body %d key %q, want %q", i, keys[i], want[i])
		}
	}

	for _, b := range c {
		if len(b.Skills) == 0 {
			t.Errorf("body %s has no skills", b.Key)
		}
		for _, s := range b.Skills {
			if s.Colors == ([2]uint32{}) {
				t.Errorf("skill %s of %s has no colors", s.Name, b.Key)
			}
		}
	}
}

func TestCatalogValidateErrors(t *testing.T) {
	if err := (Catalog{}).Validate(); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("empty: got %v, want ErrEmptyCatalog", err)
	}

	dup := append(singleBodyCatalog(), singleBodyCatalog()...)
	if err := dup.Validate(); !errors.Is(err, ErrDuplicateBody) {
		t.Errorf("duplicate: got %v, want ErrDuplicateBody", err)
	}

	reserved := singleBodyCatalog()
	reserved[0].Key = ViewSolar.String()
	if err := reserved.Validate(); err == nil {
		t.Error("reserved key accepted")
	}

	flat := singleBodyCatalog()
	flat[0].Orbit = 0
	if err := flat.Validate(); err == nil {
		t.Error("zero orbit accepted")
	}
}

func TestSatelliteLayout(t *testing.T) {
	s := newSoloScene(t)
	b := s.Body("solo")

	if len(b.Satellites) != 3 {
		t.Fatalf("got %d satellites, want 3", len(b.Satellites))
	}
	wantRadii := []float64{3, 4, 5}
	for i, sat := range b.Satellites {
		if sat.OrbitRadius != wantRadii[i] {
			t.Errorf("moon %d orbit %v, want %v", i, sat.OrbitRadius, wantRadii[i])
		}
		if sat.Visible {
			t.Errorf("moon %d visible before selection", i)
		}
		// Missing skill colors fall back to body colors
		if sat.Colors != [2]uint32{0xff0000, 0x00ff00} {
			t.Errorf("moon %d colors %06x, want body fallback", i, sat.Colors)
		}
	}
	// Level drives size
	if !(b.Satellites[0].Size > b.Satellites[1].Size && b.Satellites[1].Size > b.Satellites[2].Size) {
		t.Error("satellite size not ordered by level")
	}
}
