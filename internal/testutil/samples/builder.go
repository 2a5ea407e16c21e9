package samples

import (
	"testing"

	"github.com/Veraticus/aashto-classifier/internal/model"
)

// Builder constructs a model.Sample one measurement at a time.
type Builder struct {
	sample model.Sample
}

// New starts a sample with the defaults of the laboratory entry form:
// LL 30, PL 20 and 50/30/15 percent passing.
func New() *Builder {
	return &Builder{sample: model.Sample{
		LiquidLimit:  30,
		PlasticLimit: 20,
		PassingNo10:  50,
		PassingNo40:  30,
		PassingNo200: 15,
	}}
}

// ID sets the sample identifier.
func (b *Builder) ID(id string) *Builder {
	b.sample.ID = id
	return b
}

// Label sets the sample label.
func (b *Builder) Label(label string) *Builder {
	b.sample.Label = label
	return b
}

// Limits sets the liquid and plastic limits.
func (b *Builder) Limits(ll, pl float64) *Builder {
	b.sample.LiquidLimit = ll
	b.sample.PlasticLimit = pl
	return b
}

// NonPlastic marks the sample N.P.
func (b *Builder) NonPlastic() *Builder {
	b.sample.NonPlastic = true
	return b
}

// Sieves sets percent passing No.10, No.40 and No.200.
func (b *Builder) Sieves(no10, no40, no200 float64) *Builder {
	b.sample.PassingNo10 = no10
	b.sample.PassingNo40 = no40
	b.sample.PassingNo200 = no200
	return b
}

// Build returns the sample.
func (b *Builder) Build() model.Sample {
	return b.sample
}

// Name identifies a fixture sample.
type Name string

// Fixture sample names.
const (
	NameGravel             Name = "gravel"
	NameCoarseSand         Name = "coarse-sand"
	NameFineSand           Name = "fine-sand"
	NameSiltyGravel        Name = "silty-gravel"
	NameHighPlasticityClay Name = "high-plasticity-clay"
	NameLeanClay           Name = "lean-clay"
	NameInvertedLimits     Name = "inverted-limits"
	NameGapGraded          Name = "gap-graded"
)

// Set is an ordered collection of fixture samples.
type Set []model.Sample

// Find returns the sample with the given name, or false.
func (s Set) Find(name Name) (model.Sample, bool) {
	for _, sample := range s {
		if sample.ID == string(name) {
			return sample, true
		}
	}
	return model.Sample{}, false
}

// MustFind returns the named sample or fails the test.
func (s Set) MustFind(t *testing.T, name Name) model.Sample {
	t.Helper()
	sample, ok := s.Find(name)
	if !ok {
		t.Fatalf("sample %q not found in fixture", name)
	}
	return sample
}
