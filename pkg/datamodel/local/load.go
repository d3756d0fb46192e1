package local

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/fogrid/pkg/datamodel"
)

// childrenKey holds nested rows in a data file.
const childrenKey = "children"

// LoadFile reads a YAML or JSON data file. See LoadYAML for the format.
func LoadFile(path string) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := LoadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadYAML reads a dataset. JSON is accepted since it is valid YAML.
//
// The document is either a list of rows or a mapping:
//
//	schema:
//	  - name: region
//	  - name: sales
//	    type: number
//	rows:
//	  - region: North
//	    sales: 10
//	    children:
//	      - region: Boston
//	        sales: 4
//
// Without a schema, columns are taken from the keys of the first row in
// document order.
func LoadYAML(r io.Reader) (*Provider, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("decoding data: %w", err)
	}
	body := &root
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		body = root.Content[0]
	}

	var schema datamodel.Schema
	var rowsNode *yaml.Node
	switch body.Kind {
	case yaml.SequenceNode:
		rowsNode = body
	case yaml.MappingNode:
		var doc struct {
			Schema datamodel.Schema `yaml:"schema"`
			Rows   yaml.Node        `yaml:"rows"`
		}
		if err := body.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decoding data: %w", err)
		}
		schema = doc.Schema
		if doc.Rows.Kind != 0 {
			rowsNode = &doc.Rows
		}
	default:
		return nil, fmt.Errorf("decoding data: line %d: expected a list of rows or a mapping with rows", body.Line)
	}

	var raw []map[string]any
	if rowsNode != nil {
		if err := rowsNode.Decode(&raw); err != nil {
			return nil, fmt.Errorf("decoding rows: %w", err)
		}
	}
	if len(schema) == 0 && rowsNode != nil {
		schema = inferSchema(rowsNode)
	}
	roots, err := buildNodes(raw)
	if err != nil {
		return nil, err
	}
	return NewTree(schema, roots), nil
}

func buildNodes(raw []map[string]any) ([]*Node, error) {
	nodes := make([]*Node, 0, len(raw))
	for _, item := range raw {
		n := &Node{Values: make(datamodel.Row, len(item))}
		for k, v := range item {
			if k != childrenKey {
				n.Values[k] = v
			}
		}
		if kids, ok := item[childrenKey]; ok && kids != nil {
			list, ok := kids.([]any)
			if !ok {
				return nil, fmt.Errorf("decoding rows: %q must be a list, got %T", childrenKey, kids)
			}
			childMaps := make([]map[string]any, 0, len(list))
			for _, c := range list {
				m, ok := c.(map[string]any)
				if !ok {
					return nil, fmt.Errorf("decoding rows: child row must be a mapping, got %T", c)
				}
				childMaps = append(childMaps, m)
			}
			children, err := buildNodes(childMaps)
			if err != nil {
				return nil, err
			}
			n.Children = children
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// inferSchema takes column names from the first row mapping in document order.
func inferSchema(rows *yaml.Node) datamodel.Schema {
	if rows.Kind != yaml.SequenceNode || len(rows.Content) == 0 {
		return nil
	}
	first := rows.Content[0]
	if first.Kind != yaml.MappingNode {
		return nil
	}
	var schema datamodel.Schema
	for i := 0; i+1 < len(first.Content); i += 2 {
		key, val := first.Content[i], first.Content[i+1]
		if key.Value == childrenKey {
			continue
		}
		col := datamodel.Column{Name: key.Value}
		if val.Kind == yaml.ScalarNode && (val.Tag == "!!int" || val.Tag == "!!float") {
			col.Type = "number"
		}
		schema = append(schema, col)
	}
	return schema
}
