package model

// Result is a finished classification of one sample.
type Result struct {
	Sample          Sample       `json:"sample" yaml:"sample"`
	Code            Code         `json:"code" yaml:"code"`
	MaterialType    MaterialType `json:"material_type" yaml:"material_type"`
	Constituents    string       `json:"constituents" yaml:"constituents"`
	Rule            string       `json:"rule,omitempty" yaml:"rule,omitempty"`
	PlasticityIndex float64      `json:"plasticity_index" yaml:"plasticity_index"`
}

// Classified reports whether a rule matched the sample.
func (r Result) Classified() bool {
	return r.Code.Classified()
}
