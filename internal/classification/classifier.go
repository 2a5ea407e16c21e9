// Package classification implements the AASHTO soil classification decision table.
package classification

import (
	"fmt"

	"github.com/Veraticus/aashto-classifier/internal/common"
	"github.com/Veraticus/aashto-classifier/internal/model"
)

// Predicate reports whether a sample falls into a rule's group.
// pi is the effective plasticity index of the sample.
type Predicate func(s model.Sample, pi float64) bool

// Rule pairs a predicate with the code it assigns.
type Rule struct {
	Match    Predicate
	Name     string
	Criteria string
	Code     model.Code
}

// Classifier evaluates an ordered rule table. The first matching rule wins,
// so rule order is the tie-break when predicates overlap.
// A Classifier is immutable and safe for concurrent use.
type Classifier struct {
	rules []Rule
}

// NewClassifier creates a classifier that evaluates rules in the given order.
func NewClassifier(rules []Rule) (*Classifier, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: rule table is empty", common.ErrInvalidRule)
	}

	seen := make(map[string]struct{}, len(rules))
	for i, r := range rules {
		if r.Name == "" {
			return nil, fmt.Errorf("%w: rule %d has no name", common.ErrInvalidRule, i)
		}
		if _, dup := seen[r.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate rule name %s", common.ErrInvalidRule, r.Name)
		}
		seen[r.Name] = struct{}{}
		if !r.Code.Valid() {
			return nil, fmt.Errorf("%w: rule %s assigns unknown code %q", common.ErrInvalidRule, r.Name, r.Code)
		}
		if r.Match == nil {
			return nil, fmt.Errorf("%w: rule %s has no predicate", common.ErrInvalidRule, r.Name)
		}
	}

	copied := make([]Rule, len(rules))
	copy(copied, rules)

	return &Classifier{rules: copied}, nil
}

var defaultClassifier = mustDefault()

func mustDefault() *Classifier {
	c, err := NewClassifier(DefaultRules())
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the classifier for the standard AASHTO table.
func Default() *Classifier {
	return defaultClassifier
}

// Classify returns the code of the first rule that matches s,
// or model.CodeUnclassifiable when none do.
func (c *Classifier) Classify(s model.Sample) model.Code {
	code, _ := c.match(s)
	return code
}

// Evaluate classifies s and fills in the derived lookups.
func (c *Classifier) Evaluate(s model.Sample) model.Result {
	code, rule := c.match(s)
	return model.Result{
		Sample:          s,
		PlasticityIndex: s.PlasticityIndex(),
		Code:            code,
		MaterialType:    MaterialTypeFor(s.PassingNo200),
		Constituents:    ConstituentsFor(code),
		Rule:            rule,
	}
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Classifier) Rules() []Rule {
	out := make([]Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

func (c *Classifier) match(s model.Sample) (model.Code, string) {
	pi := s.PlasticityIndex()
	for _, r := range c.rules {
		if r.Match(s, pi) {
			return r.Code, r.Name
		}
	}
	return model.CodeUnclassifiable, ""
}

// Classify classifies s with the default table.
func Classify(s model.Sample) model.Code {
	return defaultClassifier.Classify(s)
}

// Evaluate evaluates s with the default table.
func Evaluate(s model.Sample) model.Result {
	return defaultClassifier.Evaluate(s)
}
