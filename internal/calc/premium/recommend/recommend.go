package recommend

import (
	airship "Aerostat/internal/calc/airship"
)

type OptionRecommendInput struct {
	LengthM   float64 `json:"length_m"`
	DiameterM float64 `json:"diameter_m"`
	AltitudeM float64 `json:"altitude_m"`
}

type OptionRecommendResult struct {
	Option       airship.Option   `json:"option"`
	NetPayloadKg float64          `json:"net_payload_kg"`
	Results      []airship.Result `json:"results"`
	Notes        string           `json:"notes"`
}

// Best evaluates all five construction options and recommends the one
// with the highest net payload.
func Best(in OptionRecommendInput) (OptionRecommendResult, error) {
	results, err := airship.EvaluateAll(in.LengthM, in.DiameterM, in.AltitudeM)
	if err != nil {
		return OptionRecommendResult{}, err
	}
	best := results[0]
	for _, res := range results[1:] {
		if res.NetPayloadKg > best.NetPayloadKg {
			best = res
		}
	}
	return OptionRecommendResult{
		Option:       best.Option,
		NetPayloadKg: best.NetPayloadKg,
		Results:      results,
		Notes:        "Option with the highest net payload at the given altitude.",
	}, nil
}
