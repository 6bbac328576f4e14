package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	egg "Ovoid/internal/calc/egg"

	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project     string    `json:"project"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Notes       string    `json:"notes"`
	Egg         egg.Input `json:"egg"`
	DensityGCM3 float64   `json:"density_g_cm3"`
}

type Handler struct{}

// Generate renders a one-page datasheet: parameters, derived volume and
// mass, and the profile cross-section drawn as a polyline.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Egg Model Datasheet"
	}
	if input.DensityGCM3 <= 0 {
		input.DensityGCM3 = 1.031
	}

	volume, err := egg.VolumeCM3(input.Egg)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	curve, err := egg.SampleCurve(input.Egg, 400)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Shape parameters")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Length L: %.1f mm", input.Egg.LengthMM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Width B: %.1f mm", input.Egg.WidthMM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Diameter at L/4: %.1f mm", input.Egg.DiameterL4MM))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Shape parameter n: %.2f", input.Egg.ShapeN))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Derived quantities")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Volume: %.2f cm3", volume))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Mass at %.3f g/cm3: %.2f g", input.DensityGCM3, volume*input.DensityGCM3))
	pdf.Ln(10)

	drawProfile(pdf, curve, input.Egg)

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"egg_datasheet.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

// drawProfile fits the cross-section into a 150×80 mm box below the cursor.
func drawProfile(pdf *gofpdf.Fpdf, c egg.Curve, in egg.Input) {
	const boxW, boxH = 150.0, 80.0
	left := 30.0
	top := pdf.GetY() + 4

	s := boxW / in.LengthMM
	if v := boxH / in.WidthMM; v < s {
		s = v
	}
	cx := left + boxW/2
	cy := top + boxH/2

	pdf.SetDrawColor(190, 30, 45)
	for i := 1; i < len(c.X); i++ {
		x0, x1 := cx+c.X[i-1]*s, cx+c.X[i]*s
		pdf.Line(x0, cy-c.Upper[i-1]*s, x1, cy-c.Upper[i]*s)
		pdf.Line(x0, cy-c.Lower[i-1]*s, x1, cy-c.Lower[i]*s)
	}
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetY(top + boxH + 4)
}
