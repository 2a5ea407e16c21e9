package classification

import (
	"sync"
	"testing"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name         string
		wantCode     model.Code
		wantMaterial model.MaterialType
		wantConst    string
		sample       model.Sample
	}{
		{
			name: "well graded gravel",
			sample: model.Sample{
				LiquidLimit: 30, PlasticLimit: 25,
				PassingNo10: 50, PassingNo40: 30, PassingNo200: 15,
			},
			wantCode:     model.CodeA1a,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Stone fragments, Gravel and Sand",
		},
		{
			name: "non-plastic fine sand",
			sample: model.Sample{
				NonPlastic:  true,
				PassingNo10: 60, PassingNo40: 55, PassingNo200: 8,
			},
			wantCode:     model.CodeA3,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Fine sand",
		},
		{
			name: "high plasticity clay",
			sample: model.Sample{
				LiquidLimit: 45, PlasticLimit: 30,
				PassingNo10: 70, PassingNo40: 70, PassingNo200: 50,
			},
			wantCode:     model.CodeA7,
			wantMaterial: model.MaterialSiltClay,
			wantConst:    "Clayey soils",
		},
		{
			name: "lean clay",
			sample: model.Sample{
				LiquidLimit: 35, PlasticLimit: 10,
				PassingNo10: 20, PassingNo40: 15, PassingNo200: 90,
			},
			wantCode:     model.CodeA6,
			wantMaterial: model.MaterialSiltClay,
			wantConst:    "Clayey soils",
		},
		{
			name: "plastic limit above liquid limit clamps to zero",
			sample: model.Sample{
				LiquidLimit: 20, PlasticLimit: 40,
				PassingNo10: 10, PassingNo40: 5, PassingNo200: 95,
			},
			wantCode:     model.CodeA4,
			wantMaterial: model.MaterialSiltClay,
			wantConst:    "Silty soils",
		},
		{
			name: "coarse sand with low plasticity",
			sample: model.Sample{
				LiquidLimit: 25, PlasticLimit: 20,
				PassingNo10: 80, PassingNo40: 45, PassingNo200: 20,
			},
			wantCode:     model.CodeA1b,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Stone fragments, Gravel and Sand",
		},
		{
			name: "silty gravel",
			sample: model.Sample{
				LiquidLimit: 35, PlasticLimit: 27,
				PassingNo10: 80, PassingNo40: 60, PassingNo200: 30,
			},
			wantCode:     model.CodeA24,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Silty or Clayey Gravel and Sand",
		},
		{
			name: "elastic silty gravel",
			sample: model.Sample{
				LiquidLimit: 50, PlasticLimit: 42,
				PassingNo10: 80, PassingNo40: 60, PassingNo200: 30,
			},
			wantCode:     model.CodeA25,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Silty or Clayey Gravel and Sand",
		},
		{
			name: "clayey gravel",
			sample: model.Sample{
				LiquidLimit: 38, PlasticLimit: 20,
				PassingNo10: 80, PassingNo40: 60, PassingNo200: 30,
			},
			wantCode:     model.CodeA26,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Silty or Clayey Gravel and Sand",
		},
		{
			name: "fat clayey gravel",
			sample: model.Sample{
				LiquidLimit: 55, PlasticLimit: 25,
				PassingNo10: 80, PassingNo40: 60, PassingNo200: 30,
			},
			wantCode:     model.CodeA27,
			wantMaterial: model.MaterialGranular,
			wantConst:    "Silty or Clayey Gravel and Sand",
		},
		{
			name: "elastic silt",
			sample: model.Sample{
				LiquidLimit: 48, PlasticLimit: 40,
				PassingNo10: 100, PassingNo40: 90, PassingNo200: 75,
			},
			wantCode:     model.CodeA5,
			wantMaterial: model.MaterialSiltClay,
			wantConst:    "Silty soils",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.sample)

			assert.Equal(t, tt.wantCode, result.Code)
			assert.Equal(t, tt.wantCode, Classify(tt.sample))
			assert.Equal(t, tt.wantMaterial, result.MaterialType)
			assert.Equal(t, tt.wantConst, result.Constituents)
			assert.Equal(t, tt.sample, result.Sample)
			assert.True(t, result.Classified())
			assert.NotEmpty(t, result.Rule)
		})
	}
}

func TestClassify_PlasticityIndexOfTen(t *testing.T) {
	// LL=30 PL=20 gives PI=10, which is above the A-1 limit of 6.
	sample := model.Sample{
		LiquidLimit: 30, PlasticLimit: 20,
		PassingNo10: 50, PassingNo40: 30, PassingNo200: 15,
	}

	assert.InDelta(t, 10.0, sample.PlasticityIndex(), 1e-9)
	assert.Equal(t, model.CodeA24, Classify(sample))
}

func TestClassify_FirstMatchWins(t *testing.T) {
	sample := model.Sample{
		LiquidLimit: 30, PlasticLimit: 25,
		PassingNo10: 40, PassingNo40: 20, PassingNo200: 10,
	}

	var matched []model.Code
	for _, r := range DefaultRules() {
		if r.Match(sample, sample.PlasticityIndex()) {
			matched = append(matched, r.Code)
		}
	}
	require.Contains(t, matched, model.CodeA1a)
	require.Contains(t, matched, model.CodeA24)

	result := Evaluate(sample)
	assert.Equal(t, model.CodeA1a, result.Code)
	assert.Equal(t, "a-1-a", result.Rule)
}

func TestClassify_Unclassifiable(t *testing.T) {
	tests := []struct {
		name   string
		sample model.Sample
	}{
		{
			name: "no.200 between granular and silt-clay limits",
			sample: model.Sample{
				LiquidLimit: 30, PlasticLimit: 20,
				PassingNo10: 90, PassingNo40: 80, PassingNo200: 35.5,
			},
		},
		{
			name: "liquid limit between 40 and 41",
			sample: model.Sample{
				LiquidLimit: 40.5, PlasticLimit: 35,
				PassingNo10: 90, PassingNo40: 80, PassingNo200: 60,
			},
		},
		{
			name: "plasticity index between 10 and 11",
			sample: model.Sample{
				LiquidLimit: 30.5, PlasticLimit: 20,
				PassingNo10: 90, PassingNo40: 80, PassingNo200: 60,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.sample)

			assert.Equal(t, model.CodeUnclassifiable, result.Code)
			assert.False(t, result.Classified())
			assert.Empty(t, result.Rule)
			assert.Equal(t, model.ConstituentsUnknown, result.Constituents)
		})
	}
}

func TestClassify_Total(t *testing.T) {
	valid := make(map[model.Code]bool)
	for _, c := range model.Codes() {
		valid[c] = true
	}
	valid[model.CodeUnclassifiable] = true

	values := []float64{-5, 0, 6, 10, 10.5, 15, 25, 30, 35, 35.5, 36, 40, 41, 50, 51, 75, 100, 120}
	for _, ll := range values {
		for _, pl := range values {
			for _, p200 := range values {
				for _, np := range []bool{false, true} {
					s := model.Sample{
						LiquidLimit: ll, PlasticLimit: pl, NonPlastic: np,
						PassingNo10: 60, PassingNo40: 50, PassingNo200: p200,
					}
					code := Classify(s)
					require.True(t, valid[code], "unexpected code %q for %+v", code, s)
				}
			}
		}
	}
}

func TestNewClassifier(t *testing.T) {
	always := func(model.Sample, float64) bool { return true }

	tests := []struct {
		name    string
		errMsg  string
		rules   []Rule
		wantErr bool
	}{
		{
			name:  "default rules",
			rules: DefaultRules(),
		},
		{
			name:    "empty table",
			rules:   nil,
			wantErr: true,
			errMsg:  "rule table is empty",
		},
		{
			name:    "missing name",
			rules:   []Rule{{Code: model.CodeA4, Match: always}},
			wantErr: true,
			errMsg:  "has no name",
		},
		{
			name: "duplicate name",
			rules: []Rule{
				{Name: "x", Code: model.CodeA4, Match: always},
				{Name: "x", Code: model.CodeA5, Match: always},
			},
			wantErr: true,
			errMsg:  "duplicate rule name",
		},
		{
			name:    "unknown code",
			rules:   []Rule{{Name: "x", Code: model.CodeUnclassifiable, Match: always}},
			wantErr: true,
			errMsg:  "unknown code",
		},
		{
			name:    "nil predicate",
			rules:   []Rule{{Name: "x", Code: model.CodeA4}},
			wantErr: true,
			errMsg:  "has no predicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(tt.rules)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidRule)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Len(t, c.Rules(), len(tt.rules))
		})
	}
}

func TestClassifier_CustomOrder(t *testing.T) {
	// Reversing the table changes the tie-break for overlapping predicates.
	rules := DefaultRules()
	for i, j := 0, len(rules)-1; i < j; i, j = i+1, j-1 {
		rules[i], rules[j] = rules[j], rules[i]
	}
	c, err := NewClassifier(rules)
	require.NoError(t, err)

	sample := model.Sample{
		LiquidLimit: 30, PlasticLimit: 25,
		PassingNo10: 40, PassingNo40: 20, PassingNo200: 10,
	}
	assert.Equal(t, model.CodeA24, c.Classify(sample))
	assert.Equal(t, model.CodeA1a, Default().Classify(sample))
}

func TestClassifier_RulesIsCopy(t *testing.T) {
	c := Default()
	rules := c.Rules()
	rules[0].Code = model.CodeA7

	assert.Equal(t, model.CodeA1a, c.Rules()[0].Code)
}

func TestClassifier_DefaultTableOrder(t *testing.T) {
	var got []model.Code
	for _, r := range Default().Rules() {
		got = append(got, r.Code)
		assert.NotEmpty(t, r.Criteria)
	}

	assert.Equal(t, []model.Code{
		model.CodeA1a, model.CodeA1b, model.CodeA3,
		model.CodeA24, model.CodeA25, model.CodeA26, model.CodeA27,
		model.CodeA4, model.CodeA5, model.CodeA6, model.CodeA7,
	}, got)
}

func TestClassifier_ConcurrentUse(t *testing.T) {
	c := Default()
	samples := []model.Sample{
		{LiquidLimit: 45, PlasticLimit: 30, PassingNo10: 70, PassingNo40: 70, PassingNo200: 50},
		{NonPlastic: true, PassingNo10: 60, PassingNo40: 55, PassingNo200: 8},
	}
	want := []model.Code{model.CodeA7, model.CodeA3}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			idx := i % len(samples)
			assert.Equal(t, want[idx], c.Classify(samples[idx]))
		}(i)
	}
	wg.Wait()
}
