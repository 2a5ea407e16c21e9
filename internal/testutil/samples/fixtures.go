package samples

import "github.com/Veraticus/aashto-classifier/internal/model"

// Fixture is a predefined set of samples with their expected classifications.
type Fixture struct {
	expected    map[Name]model.Code
	name        string
	description string
	samples     Set
}

// Name returns the fixture's descriptive name.
func (f *Fixture) Name() string { return f.name }

// Description returns what the fixture exercises.
func (f *Fixture) Description() string { return f.description }

// Samples returns a copy of the fixture samples in order.
func (f *Fixture) Samples() Set {
	out := make(Set, len(f.samples))
	copy(out, f.samples)
	return out
}

// Expected returns the code the named sample should classify as.
func (f *Fixture) Expected(name Name) model.Code {
	return f.expected[name]
}

// FixtureLab covers every material branch plus the anomalous and
// unclassifiable cases seen in laboratory data.
var FixtureLab = &Fixture{
	name:        "Lab",
	description: "Representative laboratory samples across granular and silt-clay groups",
	samples: Set{
		New().ID(string(NameGravel)).Limits(30, 25).Sieves(40, 20, 10).Build(),
		New().ID(string(NameCoarseSand)).Limits(25, 20).Sieves(80, 45, 20).Build(),
		New().ID(string(NameFineSand)).Limits(0, 0).NonPlastic().Sieves(60, 55, 8).Build(),
		New().ID(string(NameSiltyGravel)).Limits(35, 27).Sieves(80, 60, 30).Build(),
		New().ID(string(NameHighPlasticityClay)).Limits(45, 30).Sieves(70, 70, 50).Build(),
		New().ID(string(NameLeanClay)).Limits(35, 10).Sieves(20, 15, 90).Build(),
		New().ID(string(NameInvertedLimits)).Limits(20, 40).Sieves(10, 5, 95).Build(),
		New().ID(string(NameGapGraded)).Limits(30, 20).Sieves(90, 80, 35.5).Build(),
	},
	expected: map[Name]model.Code{
		NameGravel:             model.CodeA1a,
		NameCoarseSand:         model.CodeA1b,
		NameFineSand:           model.CodeA3,
		NameSiltyGravel:        model.CodeA24,
		NameHighPlasticityClay: model.CodeA7,
		NameLeanClay:           model.CodeA6,
		NameInvertedLimits:     model.CodeA4,
		NameGapGraded:          model.CodeUnclassifiable,
	},
}
