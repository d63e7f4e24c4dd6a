// Package tables holds the compiled-in parameter tables and the YAML codec
// used to read and print them.
package tables

import (
	_ "embed"
	"fmt"

	"github.com/me/confgen/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var defaultAsset []byte

// document is the on-disk shape of a table asset. Records are kept as
// nodes so scalar literals survive decoding untouched.
type document struct {
	Resolution []yaml.Node `yaml:"resolution"`
	Case       []yaml.Node `yaml:"case"`
	Numeric    []yaml.Node `yaml:"numeric"`
}

// Default returns the authoritative compiled-in tables.
func Default() (model.Tables, error) {
	t, err := Parse(defaultAsset)
	if err != nil {
		return model.Tables{}, fmt.Errorf("compiled-in tables: %w", err)
	}
	return t, nil
}

// Parse decodes a table asset.
func Parse(data []byte) (model.Tables, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return model.Tables{}, fmt.Errorf("parse tables: %w", err)
	}

	var out model.Tables
	var err error
	if out.Resolutions, err = decodeTable(model.KindResolution, doc.Resolution); err != nil {
		return model.Tables{}, err
	}
	if out.Cases, err = decodeTable(model.KindCase, doc.Case); err != nil {
		return model.Tables{}, err
	}
	if out.Numerics, err = decodeTable(model.KindNumeric, doc.Numeric); err != nil {
		return model.Tables{}, err
	}
	return out, nil
}

func decodeTable(kind model.RecordKind, nodes []yaml.Node) (model.Table, error) {
	table := model.Table{Kind: kind, Records: make([]model.Record, 0, len(nodes))}
	for i := range nodes {
		rec, err := decodeRecord(kind, &nodes[i])
		if err != nil {
			return model.Table{}, fmt.Errorf("%s[%d]: %w", kind, i, err)
		}
		table.Records = append(table.Records, rec)
	}
	return table, nil
}

func decodeRecord(kind model.RecordKind, n *yaml.Node) (model.Record, error) {
	if n.Kind != yaml.MappingNode {
		return model.Record{}, fmt.Errorf("line %d: expected mapping", n.Line)
	}
	rec := model.Record{Kind: kind, Fields: make(map[string]model.Scalar, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.ScalarNode {
			return model.Record{}, fmt.Errorf("line %d: field %s: expected scalar", val.Line, key.Value)
		}
		s, err := decodeScalar(val)
		if err != nil {
			return model.Record{}, fmt.Errorf("line %d: field %s: %w", val.Line, key.Value, err)
		}
		rec.Set(key.Value, s)
	}
	return rec, nil
}

func decodeScalar(n *yaml.Node) (model.Scalar, error) {
	switch n.ShortTag() {
	case "!!int":
		return model.Scalar{Type: model.ScalarInt, Literal: n.Value}, nil
	case "!!float":
		return model.Float(n.Value), nil
	case "!!str":
		return model.String(n.Value), nil
	default:
		return model.Scalar{}, fmt.Errorf("unsupported value %q (%s)", n.Value, n.ShortTag())
	}
}

// Marshal encodes tables in the same shape Parse reads, one flow mapping
// per record.
func Marshal(t model.Tables) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, tbl := range []model.Table{t.Resolutions, t.Cases, t.Numerics} {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, rec := range tbl.Records {
			seq.Content = append(seq.Content, encodeRecord(rec))
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(tbl.Kind)}, seq)
	}
	out, err := yaml.Marshal(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}})
	if err != nil {
		return nil, fmt.Errorf("marshal tables: %w", err)
	}
	return out, nil
}

func encodeRecord(rec model.Record) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
	for _, key := range rec.Keys {
		s := rec.Fields[key]
		tag := "!!str"
		switch s.Type {
		case model.ScalarInt:
			tag = "!!int"
		case model.ScalarFloat:
			tag = "!!float"
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: s.Literal})
	}
	return m
}
