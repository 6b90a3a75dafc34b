package frontmatter

import (
	"bytes"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format serializes a mapping and body back into a frontmatter document:
// the mapping rendered as YAML between "---" delimiters, followed by the
// body. Keys are emitted in insertion order, so Parse followed by Format
// is reproducible.
func Format(m *Mapping, body string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m.yamlNode()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	buf.WriteString(delimiter + "\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			buf.WriteString("\n")
		}
	}
	return buf.Bytes(), nil
}

// MarshalYAML encodes the mapping as an order-preserving YAML node tree.
func (m *Mapping) MarshalYAML() (any, error) { return m.yamlNode(), nil }

// MarshalYAML encodes the value as a YAML node.
func (v Value) MarshalYAML() (any, error) { return v.yamlNode(), nil }

// MarshalYAML encodes the item as a YAML node.
func (it Item) MarshalYAML() (any, error) { return it.yamlNode(), nil }

// MarshalYAML encodes the record as an order-preserving YAML node.
func (r *Record) MarshalYAML() (any, error) { return r.yamlNode(), nil }

func (m *Mapping) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return n
	}
	for _, k := range m.keys {
		n.Content = append(n.Content, scalarNode(k), m.vals[k].yamlNode())
	}
	return n
}

func (v Value) yamlNode() *yaml.Node {
	switch v.kind {
	case KindMapping:
		return v.mapping.yamlNode()
	case KindSequence:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, it := range v.sequence {
			n.Content = append(n.Content, it.yamlNode())
		}
		return n
	default:
		return scalarNode(v.scalar)
	}
}

func (it Item) yamlNode() *yaml.Node {
	if it.record != nil {
		return it.record.yamlNode()
	}
	return scalarNode(it.scalar)
}

func (r *Record) yamlNode() *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if r == nil {
		return n
	}
	for _, k := range r.keys {
		n.Content = append(n.Content, scalarNode(k), scalarNode(r.vals[k]))
	}
	return n
}

func scalarNode(s string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if strings.Contains(s, "\n") {
		n.Style = yaml.LiteralStyle
	}
	return n
}
