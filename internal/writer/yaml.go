package writer

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/Rana718/fakegraph/internal/seeder"
)

// YAMLWriter collects records into one mapping keyed by label and encodes it
// when the run ends:
//
//	Post1:
//	  type: Post
//	  data:
//	    title: ...
//	    author:
//	      create:
//	        name: ...
type YAMLWriter struct {
	w    io.Writer
	root *yaml.Node
}

func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: w}
}

func (y *YAMLWriter) Begin() error {
	y.root = &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	return nil
}

func (y *YAMLWriter) WriteRecord(typeName string, index int, rec seeder.Record) error {
	data, err := yamlRecord(rec)
	if err != nil {
		return err
	}
	entry := mappingNode(
		strNode("type"), strNode(typeName),
		strNode("data"), data,
	)
	y.root.Content = append(y.root.Content, strNode(Label(typeName, index)), entry)
	return nil
}

func (y *YAMLWriter) End() error {
	enc := yaml.NewEncoder(y.w)
	enc.SetIndent(2)
	doc := &yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{y.root}}
	if len(y.root.Content) == 0 {
		y.root.Style = yaml.FlowStyle
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func yamlRecord(rec seeder.Record) (*yaml.Node, error) {
	n := mappingNode()
	for _, f := range rec.Fields {
		v, err := yamlValue(f.Value)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", rec.Type, f.Name, err)
		}
		n.Content = append(n.Content, strNode(f.Name), v)
	}
	if len(n.Content) == 0 {
		n.Style = yaml.FlowStyle
	}
	return n, nil
}

func yamlValue(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case string:
		return strNode(v), nil
	case seeder.EnumValue:
		return strNode(string(v)), nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}, nil
	case float64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case seeder.ScalarList:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			n, err := yamlValue(item)
			if err != nil {
				return nil, err
			}
			seq.Content = append(seq.Content, n)
		}
		return seq, nil
	case seeder.NestedCreate:
		var created *yaml.Node
		if v.List {
			created = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, rec := range v.Records {
				n, err := yamlRecord(rec)
				if err != nil {
					return nil, err
				}
				created.Content = append(created.Content, n)
			}
		} else if len(v.Records) > 0 {
			n, err := yamlRecord(v.Records[0])
			if err != nil {
				return nil, err
			}
			created = n
		} else {
			created = mappingNode()
		}
		return mappingNode(strNode("create"), created), nil
	default:
		return nil, fmt.Errorf("cannot render %T as YAML", v)
	}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func mappingNode(content ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Content: content}
}
