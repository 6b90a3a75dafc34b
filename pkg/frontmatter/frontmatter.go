package frontmatter

import (
	"regexp"
	"strings"
)

// delimiter opens and closes a frontmatter header.
const delimiter = "---"

// keyPattern matches a "key: value" line after surrounding whitespace has
// been trimmed. Keys start with a letter and continue with letters, digits,
// hyphens, or underscores.
var keyPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_-]*)\s*:\s*(.*)$`)

// fieldPattern matches the start of one "key:" field inside a sequence
// record, anchored to the start of the text or preceding whitespace so that
// colons embedded in values (e.g. "Bash(gh:*)") are not mistaken for fields.
var fieldPattern = regexp.MustCompile(`(^|\s)([A-Za-z][A-Za-z0-9_-]*):`)

// Split locates the header region between the two delimiter occurrences.
// If the document does not begin with "---" as its first three characters,
// or no closing "---" exists after offset 3, ok is false and body is the
// full original text. Otherwise header is the text strictly between the
// delimiters and body is the text after the closing delimiter, both trimmed
// of surrounding blank lines. Neither case is an error; absent frontmatter
// is a defined, ordinary outcome.
func Split(content string) (header, body string, ok bool) {
	if !strings.HasPrefix(content, delimiter) {
		return "", content, false
	}
	end := strings.Index(content[len(delimiter):], delimiter)
	if end < 0 {
		return "", content, false
	}
	end += len(delimiter)
	header = strings.TrimSpace(content[len(delimiter):end])
	body = strings.TrimSpace(content[end+len(delimiter):])
	return header, body, true
}

// Parse extracts the frontmatter mapping and body from a document.
// It is total: any input yields a (possibly empty) mapping and a body,
// never an error. Independent calls share no state and are safe to run
// concurrently.
func Parse(content string) (*Mapping, string) {
	header, body, ok := Split(content)
	if !ok {
		return newMapping(), body
	}
	return parseMapping(newScanner(header), 0), body
}

// Field runs a full parse and returns the value bound to a top-level key.
// The second result is false when the key is missing or the document has no
// header. Every call reparses; callers needing repeated access should Parse
// once and query the mapping.
func Field(content, key string) (Value, bool) {
	m, _ := Parse(content)
	return m.Get(key)
}

// scanner walks header lines with an addressable cursor. All parsing
// routines advance this cursor rather than re-scanning strings; recursive
// calls share the same line buffer.
type scanner struct {
	lines []string
	pos   int
}

func newScanner(text string) *scanner {
	return &scanner{lines: strings.Split(text, "\n")}
}

func (s *scanner) peek() (string, bool) {
	if s.pos >= len(s.lines) {
		return "", false
	}
	return s.lines[s.pos], true
}

func (s *scanner) advance() { s.pos++ }

// indentWidth counts leading whitespace characters. A tab and a space each
// count as one unit; there is no tab expansion.
func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return i
		}
	}
	return len(line)
}

// unquote strips one level of matching single or double quotes. The inner
// text is used literally; embedded colons are not reinterpreted.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// parseMapping consumes lines at indentation >= min into a mapping.
// It returns when a line dedents below min or input ends. Blank lines,
// comments, and lines matching no recognized form are skipped; a key that
// already holds a value is never disturbed by a later malformed line.
func parseMapping(s *scanner, min int) *Mapping {
	m := newMapping()
	for {
		line, ok := s.peek()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			s.advance()
			continue
		}
		indent := indentWidth(line)
		if indent < min {
			break
		}
		match := keyPattern.FindStringSubmatch(trimmed)
		if match == nil {
			s.advance()
			continue
		}
		key, rest := match[1], strings.TrimSpace(match[2])
		s.advance()

		switch {
		case rest == "|" || rest == ">":
			m.set(key, scalarValue(collectBlock(s, indent+2)))
		case rest == "":
			if v, nested := parseNested(s, indent); nested {
				m.set(key, v)
			} else {
				m.set(key, scalarValue(""))
			}
		default:
			m.set(key, scalarValue(unquote(rest)))
		}
	}
	return m
}

// parseNested looks ahead from a key with no inline value. If the next
// non-blank line is indented deeper than the key's line, the key maps to a
// sequence (when that line is a "-" item) or a nested mapping; otherwise
// the key holds an empty scalar.
func parseNested(s *scanner, keyIndent int) (Value, bool) {
	idx := s.pos
	for idx < len(s.lines) {
		t := strings.TrimSpace(s.lines[idx])
		if t == "" || strings.HasPrefix(t, "#") {
			idx++
			continue
		}
		break
	}
	if idx >= len(s.lines) {
		return Value{}, false
	}
	line := s.lines[idx]
	indent := indentWidth(line)
	if indent <= keyIndent {
		return Value{}, false
	}
	s.pos = idx
	if strings.HasPrefix(strings.TrimSpace(line), "-") {
		return sequenceValue(parseSequence(s, indent)), true
	}
	return mappingValue(parseMapping(s, indent)), true
}

// collectBlock accumulates block-scalar continuation lines. Lines with at
// least threshold leading whitespace characters are stripped of exactly that
// many characters and kept verbatim; blank lines become empty strings. The
// first non-blank line below the threshold, or end of input, ends the block.
// The result is the lines joined by newlines with trailing whitespace
// trimmed from the whole.
func collectBlock(s *scanner, threshold int) string {
	var block []string
	for {
		line, ok := s.peek()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			block = append(block, "")
			s.advance()
			continue
		}
		if indentWidth(line) < threshold {
			break
		}
		block = append(block, line[threshold:])
		s.advance()
	}
	return strings.TrimRight(strings.Join(block, "\n"), " \t\r\n")
}

// parseSequence consumes a contiguous run of "-" item lines at indentation
// >= min. Each item is a scalar or a flat record; non-"-" lines indented
// deeper than an item line contribute continuation fields to that item's
// record. The sequence ends at the first blank line, dedent, or non-"-"
// line at the item indentation.
func parseSequence(s *scanner, min int) []Item {
	var items []Item
	for {
		line, ok := s.peek()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			break
		}
		indent := indentWidth(line)
		if indent < min || !strings.HasPrefix(trimmed, "-") {
			break
		}
		s.advance()

		text := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		rec := parseRecord(text)

		for {
			next, ok := s.peek()
			if !ok {
				break
			}
			nt := strings.TrimSpace(next)
			if nt == "" || strings.HasPrefix(nt, "-") || indentWidth(next) <= indent {
				break
			}
			more := parseRecord(nt)
			if more == nil {
				break
			}
			if rec == nil {
				rec = more
			} else {
				for _, k := range more.keys {
					rec.set(k, more.vals[k])
				}
			}
			s.advance()
		}

		if rec != nil {
			items = append(items, recordItem(rec))
		} else {
			items = append(items, scalarItem(text))
		}
	}
	return items
}

// parseRecord splits item text into "key: value" fields. A field's value
// runs from its colon to the start of the next field; quotes are stripped,
// empty values are dropped, and a later field with the same key wins.
// Returns nil when the text yields no fields, leaving the item a scalar.
func parseRecord(text string) *Record {
	matches := fieldPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	rec := newRecord()
	for i, m := range matches {
		key := text[m[4]:m[5]]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		val := unquote(strings.TrimSpace(text[m[1]:end]))
		if val == "" {
			continue
		}
		rec.set(key, val)
	}
	if rec.Len() == 0 {
		return nil
	}
	return rec
}
