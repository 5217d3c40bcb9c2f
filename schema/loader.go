package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a schema document. The file is decoded through
// yaml.Node so that table and column declaration order survives; since
// YAML is a superset of JSON, both .json and .yaml schema files work.
//
// Load performs no structural validation beyond successful parsing:
// malformed tables and columns are the caller's problem.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading schema %s: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("parsing schema %s: empty document", path)
	}

	s, err := parseSchema(doc.Content[0])
	if err != nil {
		return nil, fmt.Errorf("parsing schema %s: %w", path, err)
	}
	return s, nil
}

func parseSchema(root *yaml.Node) (*Schema, error) {
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("top level must be a mapping")
	}

	s := &Schema{}
	for i := 0; i < len(root.Content)-1; i += 2 {
		key, val := root.Content[i].Value, root.Content[i+1]
		switch key {
		case "version":
			s.Version = val.Value
		case "tables":
			if val.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("tables must be a mapping")
			}
			for j := 0; j < len(val.Content)-1; j += 2 {
				t, err := parseTable(val.Content[j].Value, val.Content[j+1])
				if err != nil {
					return nil, err
				}
				s.Tables = append(s.Tables, t)
			}
		}
	}
	return s, nil
}

func parseTable(name string, node *yaml.Node) (Table, error) {
	t := Table{Name: name}
	if node.Kind != yaml.MappingNode {
		return t, fmt.Errorf("table %s must be a mapping", name)
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "description":
			t.Description = val.Value
		case "columns":
			if val.Kind != yaml.MappingNode {
				return t, fmt.Errorf("table %s: columns must be a mapping", name)
			}
			for j := 0; j < len(val.Content)-1; j += 2 {
				c, err := parseColumn(val.Content[j].Value, val.Content[j+1])
				if err != nil {
					return t, fmt.Errorf("table %s: %w", name, err)
				}
				t.Columns = append(t.Columns, c)
			}
		case "indexes":
			if err := val.Decode(&t.Indexes); err != nil {
				return t, fmt.Errorf("table %s: indexes: %w", name, err)
			}
		}
	}
	return t, nil
}

func parseColumn(name string, node *yaml.Node) (Column, error) {
	c := Column{Name: name, Nullable: true}
	if node.Kind != yaml.MappingNode {
		return c, fmt.Errorf("column %s must be a mapping", name)
	}

	for i := 0; i < len(node.Content)-1; i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "type":
			c.Type = ParseTypeRef(val.Value)
		case "semantic_type":
			c.Semantic = ParseSemanticType(val.Value)
		case "primary_key":
			if err := val.Decode(&c.PrimaryKey); err != nil {
				return c, fmt.Errorf("column %s: primary_key: %w", name, err)
			}
		case "nullable":
			if err := val.Decode(&c.Nullable); err != nil {
				return c, fmt.Errorf("column %s: nullable: %w", name, err)
			}
		case "default":
			c.Default = val.Value
		case "description":
			c.Description = val.Value
		}
	}
	return c, nil
}
