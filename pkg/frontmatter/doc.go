// Package frontmatter parses the restricted YAML dialect used by Agent
// Skill frontmatter headers in SKILL.md files.
//
// A header is recognized only when "---" are the first three characters of
// the document; the header ends at the next occurrence of "---". The dialect
// covers exactly what skill files use: key: value scalars, quoted strings,
// "|" and ">" block scalars, indentation-nested mappings, and "-" sequences
// whose items are scalars or flat key:value records. General YAML features
// (anchors, aliases, flow collections, tags, multi-document streams) are
// deliberately unsupported.
//
// # Totality
//
// Parsing never fails. A document without a header, with an unclosed header,
// or with an empty header yields an empty mapping and the full (or residual)
// text as body. Header lines matching no recognized form are skipped and
// never disturb previously parsed keys. Surfacing such conditions as
// problems is the job of the validators built on top of this package.
//
// # Basic Usage
//
//	meta, body := frontmatter.Parse(content)
//	if name := meta.GetString("name"); name != "" {
//		fmt.Printf("Skill: %s\nInstructions:\n%s", name, body)
//	}
//
// Parsed values form a small tagged-union tree: a [Value] is a scalar, an
// ordered [Mapping], or a sequence of [Item]; an Item is a scalar or a flat
// [Record]. Insertion order is preserved for reproducible output but carries
// no meaning.
//
// # Indentation
//
// Indentation is measured as a raw count of leading whitespace characters;
// a tab and a space each count as one unit, with no tab expansion. This
// mirrors the headers in the wild exactly; mixed tabs and spaces produce
// whatever structure the literal count implies, and the structure validator
// (not this package) flags tabs.
package frontmatter
