// Package svgnames holds the static name tables for well-known SVG 1.1
// element, attribute, and color keyword names.
//
// The tables are pure data with process lifetime: lookups are O(1) map
// reads, there is no mutation after init, and concurrent readers need
// no synchronization. The structural and style tokenizers consult them
// to classify names; classification never affects scanning.
package svgnames
