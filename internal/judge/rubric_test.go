package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

func TestDefaultRubric_WeightsSumToOne(t *testing.T) {
	rubric := DefaultRubric()

	require.Len(t, rubric.Categories, 6)

	var sum float64
	for _, c := range rubric.Categories {
		sum += c.Weight
		assert.NotEmpty(t, c.ScoringMethod, "category %s needs an audit description", c.Name)
	}
	assert.InDelta(t, 1.0, sum, weightTolerance)
}

func TestDefaultRubric_FixedWeights(t *testing.T) {
	rubric := DefaultRubric()

	want := map[string]float64{
		CategoryMarketViability:      0.25,
		CategoryTechnicalFeasibility: 0.20,
		CategoryCompetitiveAdvantage: 0.20,
		CategoryResourceEfficiency:   0.15,
		CategoryRiskManagement:       0.10,
		CategoryInnovationPotential:  0.10,
	}

	for _, c := range rubric.Categories {
		assert.InDelta(t, want[c.Name], c.Weight, weightTolerance, "weight for %s", c.Name)
	}
}

func TestNewRubric_RejectsBadWeights(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
	}{
		{"sum_below_one", []Category{{Name: "A", Weight: 0.5}, {Name: "B", Weight: 0.4}}},
		{"sum_above_one", []Category{{Name: "A", Weight: 0.6}, {Name: "B", Weight: 0.6}}},
		{"negative_weight", []Category{{Name: "A", Weight: 1.4}, {Name: "B", Weight: -0.4}}},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRubric(tt.categories)
			require.Error(t, err)
			assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
		})
	}
}

func TestNewRubric_AcceptsExactSum(t *testing.T) {
	rubric, err := NewRubric([]Category{
		{Name: "A", Weight: 0.25},
		{Name: "B", Weight: 0.25},
		{Name: "C", Weight: 0.5},
	})
	require.NoError(t, err)
	assert.Len(t, rubric.Categories, 3)
}

func TestCategory_MaxScore(t *testing.T) {
	assert.Equal(t, 25, Category{Weight: 0.25}.MaxScore())
	assert.Equal(t, 10, Category{Weight: 0.10}.MaxScore())
}

func TestNew_RejectsInvalidRubricAtConstruction(t *testing.T) {
	bad := &Rubric{Categories: []Category{{Name: "A", Weight: 0.9}}}

	_, err := New(WithRubric(bad))
	require.Error(t, err)
	assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
}

func TestRubricFromWeights(t *testing.T) {
	t.Run("known_categories_keep_canonical_order", func(t *testing.T) {
		rubric, err := RubricFromWeights(map[string]float64{
			CategoryTechnicalFeasibility: 0.5,
			CategoryMarketViability:      0.5,
		})
		require.NoError(t, err)
		require.Len(t, rubric.Categories, 2)
		assert.Equal(t, CategoryMarketViability, rubric.Categories[0].Name)
		assert.Equal(t, CategoryTechnicalFeasibility, rubric.Categories[1].Name)
		assert.NotEmpty(t, rubric.Categories[0].ScoringMethod)
	})

	t.Run("unknown_categories_sorted_last", func(t *testing.T) {
		rubric, err := RubricFromWeights(map[string]float64{
			"Zeta":                  0.2,
			"Alpha":                 0.3,
			CategoryMarketViability: 0.5,
		})
		require.NoError(t, err)
		require.Len(t, rubric.Categories, 3)
		assert.Equal(t, CategoryMarketViability, rubric.Categories[0].Name)
		assert.Equal(t, "Alpha", rubric.Categories[1].Name)
		assert.Equal(t, "Zeta", rubric.Categories[2].Name)
	})

	t.Run("bad_sum_rejected", func(t *testing.T) {
		_, err := RubricFromWeights(map[string]float64{CategoryMarketViability: 0.9})
		require.Error(t, err)
		assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
	})

	t.Run("empty_rejected", func(t *testing.T) {
		_, err := RubricFromWeights(nil)
		require.Error(t, err)
		assert.True(t, types.IsCode(err, types.RUBRIC_WEIGHT_INVALID))
	})
}
