// Package mergeop provides the operators a patch is made of and the
// registry they are looked up in.
//
// # Overview
//
// A patch is an object whose keys are operator tags such as `$set`. The
// tag minus its leading `$` names an Op in a Registry. Each Op receives
// the working document and the value of its tag, the operator spec, and
// returns the document to continue with.
//
// For every operator except jsonpatch, the spec is an object mapping
// dotted paths to operator specific values:
//
//	{"$set": {"a.b.c": 99}, "$inc": {"x.y": 1}}
//
// Specs which are not objects are no-ops.
//
// # Built-in Operations
//
//   - set: assign values, creating missing intermediate objects
//   - unset: remove keys; missing paths are ignored
//   - inc: add to the integer value at a path, missing or non numeric
//     values counting as 0
//   - push: append to arrays, see below
//   - rename: move a value to another path
//   - min, max: replace a value when the given one is lower / higher
//   - mul: multiply the value at a path
//   - addToSet: append values not already present
//   - pop: drop the first (-1) or last (1) element of an array
//   - pull: remove matching elements from an array
//   - jsonpatch: apply an RFC 6902 operation array to the document
//
// # Push
//
// A push value is either appended as a single element, or is an object
// holding any of the stage keys `$each`, `$sort` and `$slice`:
//
//	{"$push": {"scores": {
//	    "$each": [{"name": "jon", "score": 9}],
//	    "$sort": {"score": -1, "name": 1},
//	    "$slice": -3
//	}}}
//
// Stages run in the order their keys are written. `$each` appends the
// elements of an array. `$sort` takes "." (or 1, -1) to order whole
// elements, or an object of field paths to directions. `$slice` keeps the
// first n elements for positive n and the last -n for negative n. Keys
// other than stage keys are gathered into one object which is appended
// after the stages have run.
//
// Values are ordered by ir.Compare: null < bool < number < string <
// array < object, numbers numerically and strings bytewise.
//
// # Operation Registration
//
// Operations are held by a Registry. Default returns the process wide
// registry, populated with the built-ins; package level Register, Lookup
// and Symbols act on it.
//
//	err := mergeop.Register(mergeop.Func("touch", func(doc, spec *ir.Node) (*ir.Node, error) {
//	    return ir.SetPath(doc, "touched", ir.FromBool(true)), nil
//	}))
//
// Registering a name again replaces the earlier operator. A registry may
// be frozen after initialisation, after which Register fails with
// ErrFrozen.
package mergeop
