// Package skill loads Agent Skill definitions from disk and discovers
// them under a skills directory.
package skill

import (
	"path/filepath"
	"strings"

	"github.com/thoreinstein/sklint/internal/errors"
	"github.com/thoreinstein/sklint/internal/paths"
	"github.com/thoreinstein/sklint/pkg/fileutil"
	"github.com/thoreinstein/sklint/pkg/frontmatter"
)

// Skill is a loaded skill definition.
type Skill struct {
	// Name is the name header field, or the directory name when the
	// header carries no usable name.
	Name string

	// Description is the description header field, "" when absent.
	Description string

	// Meta is the parsed header mapping. Never nil, possibly empty.
	Meta *frontmatter.Mapping

	// Header is the raw header text between the delimiters, "" when the
	// file has no header.
	Header string

	// Body is the content after the header.
	Body string

	// Dir is the skill directory.
	Dir string

	// File is the SKILL.md path.
	File string

	// Raw is the full file content.
	Raw string

	// Lines is the total line count of the file.
	Lines int

	headerOK bool
}

// HasHeader reports whether the file opened with a well-formed header,
// a leading delimiter closed by a matching one.
func (s *Skill) HasHeader() bool {
	return s.headerOK
}

// Field returns a string header field by key.
func (s *Skill) Field(key string) string {
	return s.Meta.GetString(key)
}

// Load reads a skill from path, which may be either the skill directory
// or the SKILL.md file itself.
func Load(path string) (*Skill, error) {
	file := paths.SkillFile(path)

	data, err := fileutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "loading skill from %s", path)
	}

	return Parse(file, string(data)), nil
}

// Parse builds a Skill from file content. It never fails; a file without
// a header yields a Skill with an empty Meta and the whole content as Body.
func Parse(file, content string) *Skill {
	header, _, ok := frontmatter.Split(content)
	meta, body := frontmatter.Parse(content)

	dir := filepath.Dir(file)
	name := meta.GetString("name")
	if name == "" {
		name = filepath.Base(dir)
	}

	return &Skill{
		Name:        name,
		Description: meta.GetString("description"),
		Meta:        meta,
		Header:      header,
		Body:        body,
		Dir:         dir,
		File:        file,
		Raw:         content,
		Lines:       countLines(content),
		headerOK:    ok,
	}
}

func countLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
