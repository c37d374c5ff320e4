package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	airship "Aerostat/internal/calc/airship"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project   string           `json:"project"`
	Author    string           `json:"author"`
	Title     string           `json:"title"`
	LengthM   float64          `json:"length_m"`
	DiameterM float64          `json:"diameter_m"`
	AltitudeM float64          `json:"altitude_m"`
	Options   []airship.Option `json:"options"` // empty means all five
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Airship Lifting Capacity Report"
	}
	options := input.Options
	if len(options) == 0 {
		options = airship.Options
	}

	results := make([]airship.Result, 0, len(options))
	for _, opt := range options {
		res, err := airship.Evaluate(airship.Input{
			LengthM:   input.LengthM,
			DiameterM: input.DiameterM,
			AltitudeM: input.AltitudeM,
			Option:    opt,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		results = append(results, res)
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
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Hull: length %.1f m, diameter %.1f m, altitude %.0f m",
		input.LengthM, input.DiameterM, input.AltitudeM))
	pdf.Ln(10)

	for _, res := range results {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, string(res.Option))
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Volume: %.2f m3    Surface area: %.2f m2", res.TotalVolumeM3, res.TotalSurfaceAreaM2))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Air density: %.4f kg/m3    Lifting capacity: %.2f kg", res.AirDensityKgM3, res.LiftingCapacityKg))
		pdf.Ln(6)
		thickness := "Not applicable"
		if res.RequiredThicknessM != nil {
			thickness = fmt.Sprintf("%.2f mm", *res.RequiredThicknessM*1000)
		}
		pdf.Cell(0, 6, fmt.Sprintf("Wall thickness: %s    Structural mass: %.2f kg", thickness, res.StructuralMassKg))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("Net payload: %.2f kg", res.NetPayloadKg))
		pdf.Ln(10)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"airship-report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
