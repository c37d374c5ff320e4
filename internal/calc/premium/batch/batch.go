package batch

import (
	"fmt"

	airship "Aerostat/internal/calc/airship"
)

type AirshipBatchInput struct {
	Items []airship.Input `json:"items"`
}

type AirshipBatchResult struct {
	Results []airship.Result `json:"results"`
}

func CalculateAirship(in AirshipBatchInput) (AirshipBatchResult, error) {
	if len(in.Items) == 0 {
		return AirshipBatchResult{}, fmt.Errorf("no items")
	}
	out := AirshipBatchResult{Results: make([]airship.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res, err := airship.Evaluate(item)
		if err != nil {
			return AirshipBatchResult{}, err
		}
		out.Results = append(out.Results, res)
	}
	return out, nil
}
