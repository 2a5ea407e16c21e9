package classification

import "github.com/Veraticus/aashto-classifier/internal/model"

// DefaultRules returns the AASHTO decision table in evaluation order.
// Thresholds are inclusive and compared against raw percentages, so values
// such as 35.5% No.200 passing fall between the granular and silt-clay rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "a-1-a",
			Code:     model.CodeA1a,
			Criteria: "No.10 ≤ 50, No.40 ≤ 30, No.200 ≤ 15, PI ≤ 6",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo10 <= 50 && s.PassingNo40 <= 30 && s.PassingNo200 <= 15 && pi <= 6
			},
		},
		{
			Name:     "a-1-b",
			Code:     model.CodeA1b,
			Criteria: "No.40 ≤ 50, No.200 ≤ 25, PI ≤ 6",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo40 <= 50 && s.PassingNo200 <= 25 && pi <= 6
			},
		},
		{
			Name:     "a-3",
			Code:     model.CodeA3,
			Criteria: "No.40 ≥ 51, No.200 ≤ 10, PI = 0",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo40 >= 51 && s.PassingNo200 <= 10 && pi == 0
			},
		},
		{
			Name:     "a-2-4",
			Code:     model.CodeA24,
			Criteria: "No.200 ≤ 35, LL ≤ 40, PI ≤ 10",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 <= 35 && s.LiquidLimit <= 40 && pi <= 10
			},
		},
		{
			Name:     "a-2-5",
			Code:     model.CodeA25,
			Criteria: "No.200 ≤ 35, LL ≥ 41, PI ≤ 10",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 <= 35 && s.LiquidLimit >= 41 && pi <= 10
			},
		},
		{
			Name:     "a-2-6",
			Code:     model.CodeA26,
			Criteria: "No.200 ≤ 35, LL ≤ 40, PI ≥ 11",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 <= 35 && s.LiquidLimit <= 40 && pi >= 11
			},
		},
		{
			Name:     "a-2-7",
			Code:     model.CodeA27,
			Criteria: "No.200 ≤ 35, LL ≥ 41, PI ≥ 11",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 <= 35 && s.LiquidLimit >= 41 && pi >= 11
			},
		},
		{
			Name:     "a-4",
			Code:     model.CodeA4,
			Criteria: "No.200 ≥ 36, LL ≤ 40, PI ≤ 10",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 >= 36 && s.LiquidLimit <= 40 && pi <= 10
			},
		},
		{
			Name:     "a-5",
			Code:     model.CodeA5,
			Criteria: "No.200 ≥ 36, LL ≥ 41, PI ≤ 10",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 >= 36 && s.LiquidLimit >= 41 && pi <= 10
			},
		},
		{
			Name:     "a-6",
			Code:     model.CodeA6,
			Criteria: "No.200 ≥ 36, LL ≤ 40, PI ≥ 11",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 >= 36 && s.LiquidLimit <= 40 && pi >= 11
			},
		},
		{
			Name:     "a-7",
			Code:     model.CodeA7,
			Criteria: "No.200 ≥ 36, LL ≥ 41, PI ≥ 11",
			Match: func(s model.Sample, pi float64) bool {
				return s.PassingNo200 >= 36 && s.LiquidLimit >= 41 && pi >= 11
			},
		},
	}
}
