package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	egg "Ovoid/internal/calc/egg"
	batch "Ovoid/internal/calc/premium/batch"

	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type EggImportResult struct {
	Count   int                  `json:"count"`
	Results []batch.EggBatchItem `json:"results"`
}

// Eggs accepts an xlsx upload with one shape-parameter set per row and
// returns the computed volume and mass for every parseable row.
// Expected columns: label, length_mm, width_mm, d_l4_mm, n, density(optional).
func (h *Handler) Eggs(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []batch.EggBatchItem
	for i := 1; i < len(rows); i++ {
		input, density, err := parseEggRow(rows[i])
		if err != nil {
			continue
		}
		v, err := egg.VolumeCM3(input)
		if err != nil {
			continue
		}
		results = append(results, batch.EggBatchItem{
			Egg:       input,
			VolumeCM3: v,
			MassG:     v * density,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EggImportResult{Count: len(results), Results: results})
}

func parseEggRow(row []string) (egg.Input, float64, error) {
	if len(row) < 5 {
		return egg.Input{}, 0, fmt.Errorf("bad row")
	}
	length, err := toFloat(row[1])
	if err != nil {
		return egg.Input{}, 0, err
	}
	width, err := toFloat(row[2])
	if err != nil {
		return egg.Input{}, 0, err
	}
	dl4, err := toFloat(row[3])
	if err != nil {
		return egg.Input{}, 0, err
	}
	n, err := toFloat(row[4])
	if err != nil {
		return egg.Input{}, 0, err
	}
	density := 1.031
	if len(row) > 5 && row[5] != "" {
		if d, err := toFloat(row[5]); err == nil && d > 0 {
			density = d
		}
	}
	return egg.Input{
		LengthMM:     length,
		WidthMM:      width,
		DiameterL4MM: dl4,
		ShapeN:       n,
	}, density, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
