package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	airship "Aerostat/internal/calc/airship"
	"github.com/xuri/excelize/v2"
)

type Handler struct{}

type AirshipImportResult struct {
	Count   int              `json:"count"`
	Results []airship.Result `json:"results"`
}

func (h *Handler) Airship(w http.ResponseWriter, r *http.Request) {
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

	var results []airship.Result
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		input, err := parseAirshipRow(row)
		if err != nil {
			continue
		}
		res, err := airship.Evaluate(input)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AirshipImportResult{Count: len(results), Results: results})
}

func parseAirshipRow(row []string) (airship.Input, error) {
	// expected: length_m, diameter_m, altitude_m, option(optional, defaults to monocoque)
	if len(row) < 3 {
		return airship.Input{}, fmt.Errorf("bad row")
	}
	length, err := toFloat(row[0])
	if err != nil {
		return airship.Input{}, err
	}
	diameter, err := toFloat(row[1])
	if err != nil {
		return airship.Input{}, err
	}
	altitude, err := toFloat(row[2])
	if err != nil {
		return airship.Input{}, err
	}
	option := airship.MonocoqueShell
	if len(row) > 3 && row[3] != "" {
		option = airship.Option(row[3])
	}
	return airship.Input{
		LengthM:   length,
		DiameterM: diameter,
		AltitudeM: altitude,
		Option:    option,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
