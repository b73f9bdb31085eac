// Package level loads puzzle level sets and normalises scores against a
// template's energy range.
//
// A level file is YAML with a single `levels:` list of template records
// (see template.Record). Loading is all-or-nothing: the first malformed
// record fails the whole file with template.ErrMalformedTemplate in the
// chain, so a Set never holds an invalid template. Sets are plain values
// owned by the caller; there is no process-wide level list.
//
// Progress maps an energy onto [0, 1]-ish: 1 at the range minimum (best
// fold), 0 at the maximum. Values outside the range are not clamped. A
// level counts as solved once the assembly is complete and its progress
// reaches SolvedThreshold.
//
// Campaign returns the built-in level set shipped with the package.
package level
