// Package samples provides soil sample fixtures and a fluent builder for tests.
//
// Example usage:
//
//	s := samples.New().
//		Limits(45, 30).
//		Sieves(70, 70, 50).
//		Build()
//
//	set := samples.FixtureLab.Samples()
//	clay := set.MustFind(t, samples.NameHighPlasticityClay)
package samples
