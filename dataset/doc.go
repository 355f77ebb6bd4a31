// Package dataset loads, stores and generates point sets for mapping.
//
// CSV files hold one point per row, one coordinate per column; '#' starts a
// comment line. Generators are deterministic so that mappings are reproducible.
package dataset
