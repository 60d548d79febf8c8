package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/warp/daycount/basis"
)

// =============================================================================
// COMMON MARKET BASES
// =============================================================================
//
// Starting points for the usual money-market and swap legs. Desks with a
// dated ISDA leg register their own basis with its termination date.

var presets = []BasisJSON{
	{ID: "usd-sofr", Name: "USD SOFR OIS", Convention: "ACT/360", Description: "USD overnight-indexed swaps"},
	{ID: "eur-estr", Name: "EUR €STR OIS", Convention: "ACT/360", Description: "EUR overnight-indexed swaps"},
	{ID: "eur-euribor", Name: "EUR EURIBOR floating", Convention: "ACT/360", Description: "EURIBOR floating legs"},
	{ID: "gbp-sonia", Name: "GBP SONIA OIS", Convention: "ACT/365F", Description: "GBP overnight-indexed swaps"},
	{ID: "jpy-tona", Name: "JPY TONA OIS", Convention: "ACT/365F", Description: "JPY overnight-indexed swaps"},
	{ID: "krw-cd", Name: "KRW CD 91D IRS", Convention: "ACT/365F", Description: "KRW CD-linked swaps"},
	{ID: "usd-fixed", Name: "USD fixed leg", Convention: "30/360", Description: "USD swap fixed legs, bond basis"},
	{ID: "eur-fixed", Name: "EUR fixed leg", Convention: "30E/360", Description: "EUR swap fixed legs, Eurobond basis"},
	{ID: "cad-corra", Name: "CAD CORRA OIS", Convention: "ACT/365F", Description: "CAD overnight-indexed swaps"},
	{ID: "nl-365", Name: "No-leap 365", Convention: "NL/365", Description: "Leap-day excluded accruals"},
	{ID: "one-one", Name: "1/1", Convention: "1/1", Description: "Whole-period accrual"},
}

// Presets returns the built-in market bases.
func Presets() []BasisJSON {
	out := make([]BasisJSON, len(presets))
	copy(out, presets)
	return out
}

// PresetJSON returns the JSON definition of a preset by ID.
func PresetJSON(id string) (string, error) {
	for _, p := range presets {
		if strings.EqualFold(p.ID, id) {
			b, err := json.Marshal(p)
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
	}
	return "", fmt.Errorf("%w: no preset %q", basis.ErrBasisNotFound, id)
}

// PresetBases builds every preset as a validated Basis.
func (f *BasisFactory) PresetBases() ([]basis.Basis, error) {
	out := make([]basis.Basis, 0, len(presets))
	for _, p := range presets {
		b, _, err := f.FromJSON(p)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
