// Package manip applies MongoDB style update documents to in-memory
// document trees.
//
// A patch is an object keyed by operator tags:
//
//	doc, _ := parse.Parse([]byte(`{"hi": "there", "x": {"y": 4}}`))
//	patch, _ := parse.Parse([]byte(`{"$inc": {"x.y": 1}, "$set": {"a.b": true}}`))
//	res, err := manip.Apply(doc, patch)
//	// res is {"hi": "there", "x": {"y": 5}, "a": {"b": true}}
//
// Apply works on a copy of its input; see package mergeop for the
// available operators and for adding new ones.
//
// # Related Packages
//
//   - github.com/signadot/manip/ir - document trees and dotted paths
//   - github.com/signadot/manip/mergeop - operators and their registry
//   - github.com/signadot/manip/parse - decode JSON and YAML
//   - github.com/signadot/manip/encode - encode JSON and YAML
package manip
