package preset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	egg "Ovoid/internal/calc/egg"
)

// Store is the immutable species→parameters table, loaded once at startup.
type Store struct {
	presets map[string]egg.Input
	names   []string
}

// Load reads a CSV with columns species,B,L,D_L4,n (header required,
// dimensions in mm). Any malformed row fails the whole load.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presets: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("presets file %s has no data rows", path)
	}
	header := rows[0]
	if len(header) < 5 || !strings.EqualFold(header[0], "species") {
		return nil, fmt.Errorf("presets file %s: want header species,B,L,D_L4,n", path)
	}

	s := &Store{presets: make(map[string]egg.Input, len(rows)-1)}
	for i, row := range rows[1:] {
		if len(row) < 5 {
			return nil, fmt.Errorf("presets row %d: want 5 columns, got %d", i+2, len(row))
		}
		name := strings.TrimSpace(row[0])
		if name == "" {
			return nil, fmt.Errorf("presets row %d: empty species name", i+2)
		}
		vals := make([]float64, 4)
		for c := 1; c < 5; c++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
			if err != nil {
				return nil, fmt.Errorf("presets row %d column %q: %w", i+2, header[c], err)
			}
			vals[c-1] = v
		}
		s.presets[strings.ToLower(name)] = egg.Input{
			WidthMM:      vals[0],
			LengthMM:     vals[1],
			DiameterL4MM: vals[2],
			ShapeN:       vals[3],
		}
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
	return s, nil
}

// Get looks a species up case-insensitively.
func (s *Store) Get(species string) (egg.Input, bool) {
	in, ok := s.presets[strings.ToLower(strings.TrimSpace(species))]
	return in, ok
}

// Names returns the species names in sorted order.
func (s *Store) Names() []string { return s.names }
