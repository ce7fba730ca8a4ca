/*
Package values inspects arbitrary runtime values on behalf of the pattern matcher.

Patterns are matched against values of unknown static type. Before a structural
comparison is attempted, the matcher has to know what kind of thing it is looking at:
a scalar, a sequence, a set, a map or a keyed record. Go has no dedicated set type,
so we follow the common convention and treat every map of type map[K]struct{} as a set.

	values.Classify([]int{1, 2})                   // Sequence
	values.Classify(map[string]struct{}{"a": {}})  // Set
	values.Classify(map[int]string{})              // Map
	values.Classify(map[string]any{})              // Record
	values.Classify(Point{X: 1})                   // Record
	values.Classify(42)                            // Scalar

Struct fields are addressed by the name given in a `match` struct tag or, lacking one,
by their Go field name. Unexported fields are invisible.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package values
