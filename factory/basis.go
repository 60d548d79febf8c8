/*
Package factory provides JSON/YAML to Go basis conversion.

PURPOSE:
  Converts basis definitions into basis.Basis values and ready-to-use
  daycount.Convention instances. Desks can declare their bases in a YAML
  seed file or POST them as JSON; the factory validates the convention code
  and the ISDA termination date and builds the convention.

JSON SCHEMA:
  {
    "id": "eur-irs-2029",
    "name": "EUR IRS fixed leg, matures 2029-02-28",
    "convention": "30E/360 (ISDA)",
    "termination_date": "2029-02-28",
    "description": "Fixed leg of the 5y EUR swap"
  }

YAML SEED FILE:
  bases:
    - id: usd-sofr
      name: USD SOFR OIS
      convention: ACT/360
    - id: eur-irs-2029
      convention: 30E/360-ISDA
      termination_date: 2029-02-28

KEY FEATURES:
  - Accepts codes, display names and aliases for the convention
  - Stores the canonical code
  - Rejects a termination date on conventions that do not use one

USAGE:
  f := factory.NewBasisFactory()
  b, conv, err := f.ParseBasis(jsonString)
  frac := conv.YearFraction(start, end)

SEE ALSO:
  - basis/basis.go: Basis type definition
  - factory/presets.go: Common market bases
*/
package factory

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/warp/daycount/basis"
	"github.com/warp/daycount/daycount"
)

// =============================================================================
// JSON/YAML SCHEMA TYPES
// =============================================================================

// BasisJSON is the JSON (and YAML) representation of a basis.
type BasisJSON struct {
	ID              string `json:"id"                         yaml:"id"`
	Name            string `json:"name,omitempty"             yaml:"name,omitempty"`
	Convention      string `json:"convention"                 yaml:"convention"`
	TerminationDate string `json:"termination_date,omitempty" yaml:"termination_date,omitempty"` // YYYY-MM-DD
	Description     string `json:"description,omitempty"      yaml:"description,omitempty"`
}

// SeedFile is the YAML document loaded at startup.
type SeedFile struct {
	Bases []BasisJSON `yaml:"bases"`
}

// =============================================================================
// BASIS FACTORY
// =============================================================================

// BasisFactory converts definitions to bases and conventions.
type BasisFactory struct{}

// NewBasisFactory creates a new basis factory.
func NewBasisFactory() *BasisFactory {
	return &BasisFactory{}
}

// ParseBasis parses a JSON string into a Basis and its Convention.
func (f *BasisFactory) ParseBasis(jsonStr string) (basis.Basis, daycount.Convention, error) {
	var bj BasisJSON
	if err := json.Unmarshal([]byte(jsonStr), &bj); err != nil {
		return basis.Basis{}, nil, fmt.Errorf("failed to parse basis JSON: %w", err)
	}
	return f.FromJSON(bj)
}

// FromJSON converts BasisJSON to a validated Basis and its Convention.
func (f *BasisFactory) FromJSON(bj BasisJSON) (basis.Basis, daycount.Convention, error) {
	b := basis.Basis{
		ID:          basis.ID(bj.ID),
		Name:        bj.Name,
		Code:        daycount.Code(bj.Convention),
		Description: bj.Description,
	}

	if bj.TerminationDate != "" {
		td, err := daycount.ParseDate(bj.TerminationDate)
		if err != nil {
			return basis.Basis{}, nil, fmt.Errorf("basis %q: termination_date: %w", bj.ID, err)
		}
		b.TerminationDate = &td
	}

	b, err := b.Canonical()
	if err != nil {
		return basis.Basis{}, nil, fmt.Errorf("basis %q: %w", bj.ID, err)
	}

	conv, err := b.Convention()
	if err != nil {
		return basis.Basis{}, nil, fmt.Errorf("basis %q: %w", bj.ID, err)
	}
	return b, conv, nil
}

// ParseYAML parses a seed file. Every entry must be valid; the first error
// aborts the whole file.
func (f *BasisFactory) ParseYAML(data []byte) ([]basis.Basis, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}

	seen := make(map[string]bool, len(seed.Bases))
	bases := make([]basis.Basis, 0, len(seed.Bases))
	for _, bj := range seed.Bases {
		if seen[bj.ID] {
			return nil, fmt.Errorf("%w: duplicate id %q in seed file", basis.ErrInvalidBasis, bj.ID)
		}
		seen[bj.ID] = true

		b, _, err := f.FromJSON(bj)
		if err != nil {
			return nil, err
		}
		bases = append(bases, b)
	}
	return bases, nil
}

// ToJSON converts a Basis to BasisJSON.
func (f *BasisFactory) ToJSON(b basis.Basis) BasisJSON {
	bj := BasisJSON{
		ID:          string(b.ID),
		Name:        b.Name,
		Convention:  string(b.Code),
		Description: b.Description,
	}
	if b.TerminationDate != nil {
		bj.TerminationDate = b.TerminationDate.String()
	}
	return bj
}

// ToYAML renders bases as a seed file.
func (f *BasisFactory) ToYAML(bases []basis.Basis) ([]byte, error) {
	seed := SeedFile{Bases: make([]BasisJSON, len(bases))}
	for i, b := range bases {
		seed.Bases[i] = f.ToJSON(b)
	}
	return yaml.Marshal(seed)
}
