package render

import (
	"bytes"
	"io"
	"strings"

	"github.com/flarebyte/getitem/internal/catalog"
	"gopkg.in/yaml.v3"
)

func writeYAML(w io.Writer, v catalog.Value) error {
	b, err := MarshalYAML(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// MarshalYAML returns a YAML document for v, keeping object key order.
func MarshalYAML(v catalog.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(yamlNode(v)); err != nil {
		_ = enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	out = append(out, '\n')
	return out, nil
}

func yamlNode(v catalog.Value) *yaml.Node {
	switch x := v.(type) {
	case catalog.Null:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case catalog.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: Text(x)}
	case catalog.Number:
		tag := "!!int"
		if strings.ContainsAny(string(x), ".eE") {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: string(x)}
	case catalog.String:
		return strNode(string(x))
	case catalog.List:
		n := &yaml.Node{Kind: yaml.SequenceNode}
		for _, it := range x {
			n.Content = append(n.Content, yamlNode(it))
		}
		return n
	case *catalog.Object:
		n := &yaml.Node{Kind: yaml.MappingNode}
		for _, k := range x.Keys() {
			val, _ := x.Get(k)
			n.Content = append(n.Content, strNode(k), yamlNode(val))
		}
		return n
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func strNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}
