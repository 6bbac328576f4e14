package egg

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
)

type Handler struct{}

type PreviewRequest struct {
	Input
	Points int `json:"points"`
}

type MassRequest struct {
	Input
	DensityGCM3 float64 `json:"density_g_cm3"`
}

type MassResult struct {
	VolumeCM3 float64 `json:"volume_cm3"`
	MassG     float64 `json:"mass_g"`
}

type MeshInfoResult struct {
	VertexCount   int     `json:"vertex_count"`
	FaceCount     int     `json:"face_count"`
	NX            int     `json:"n_x"`
	NTheta        int     `json:"n_theta"`
	LengthMM      float64 `json:"length_mm"`
	MaxDiameterMM float64 `json:"max_diameter_mm"`
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	curve, err := SampleCurve(req.Input, req.Points)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(curve)
}

func (h *Handler) Volume(w http.ResponseWriter, r *http.Request) {
	var req MassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.DensityGCM3 <= 0 {
		req.DensityGCM3 = 1.031 // whole-egg average
	}
	v, err := VolumeCM3(req.Input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MassResult{
		VolumeCM3: round2(v),
		MassG:     round2(v * req.DensityGCM3),
	})
}

func (h *Handler) MeshInfo(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	m, err := BuildMesh(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MeshInfoResult{
		VertexCount:   m.VertexCount(),
		FaceCount:     m.FaceCount(),
		NX:            m.NX,
		NTheta:        m.NTheta,
		LengthMM:      input.LengthMM,
		MaxDiameterMM: round2(m.MaxDiameter()),
	})
}

// STL builds the mesh and streams it as a binary STL download. The mesh is
// fully encoded into memory before the first byte is sent, so a failed build
// never leaves the client with a truncated model.
func (h *Handler) STL(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	m, err := BuildMesh(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var buf bytes.Buffer
	if err := WriteSTL(&buf, m); err != nil {
		http.Error(w, "STL encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", "attachment; filename=\"egg_model.stl\"")
	w.Write(buf.Bytes())
}
