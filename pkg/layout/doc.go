// Package layout composes snippet components into the table structures the
// Olex2 GUI expects: labeled cells, runtime conditionals rendered as <ignore>
// tags, the five-level table skeleton driven by TableConfig, sections and
// whole pages.
package layout
