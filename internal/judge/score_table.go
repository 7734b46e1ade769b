package judge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// scoreTableFile is the on-disk shape of a scoring table:
//
//	variants:
//	  aggressive-ai-first:
//	    Market Viability: 0.95
//	    ...
type scoreTableFile struct {
	Variants map[string]map[string]float64 `yaml:"variants"`
}

// LoadScoreTable reads a variant-id × category raw-score table from a YAML
// file. Values must lie in [0,1].
func LoadScoreTable(path string) (map[string]map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.SCORE_TABLE_LOAD_FAILED,
			fmt.Sprintf("reading score table %q", path), err)
	}

	var file scoreTableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, types.WrapError(types.SCORE_TABLE_LOAD_FAILED,
			fmt.Sprintf("parsing score table %q", path), err)
	}

	if len(file.Variants) == 0 {
		return nil, types.NewErrorf(types.SCORE_TABLE_LOAD_FAILED,
			"score table %q defines no variants", path)
	}

	for variantID, byCategory := range file.Variants {
		for category, raw := range byCategory {
			if raw < 0 || raw > 1 {
				return nil, types.NewErrorf(types.SCORE_TABLE_LOAD_FAILED,
					"score table %q: variant %q category %q value %v outside [0,1]",
					path, variantID, category, raw)
			}
		}
	}

	return file.Variants, nil
}

// NewTableScorerFromFile loads a YAML score table and wraps it in a
// TableScorer.
func NewTableScorerFromFile(path string) (*TableScorer, error) {
	table, err := LoadScoreTable(path)
	if err != nil {
		return nil, err
	}
	return NewTableScorerFromTable(table), nil
}
