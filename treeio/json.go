// Package treeio: JSON encoding and decoding of dendrogram aggregates.
package treeio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/dendro/core"
)

// record is the wire shape. Keys of nested maps stay textual here;
// conversion to and from typed keys happens around it.
type record struct {
	Nodes     []core.NodeID             `json:"nodes"`
	Parents   map[string]core.NodeID    `json:"parents"`
	Children  map[string][]core.NodeID  `json:"children"`
	NodeProps map[string]map[string]any `json:"nodeprops,omitempty"`
	EdgeProps map[string]map[string]any `json:"edgeprops,omitempty"`
}

// Encode validates doc and writes it to w as one JSON record.
// Property collections are checked before anything is written: a
// non-scalar value fails with ErrInvalidNodeProps/ErrInvalidEdgeProps
// and w stays untouched.
func Encode(w io.Writer, doc *Document) error {
	rec := record{
		Nodes:    doc.Nodes,
		Parents:  make(map[string]core.NodeID, len(doc.Parents)),
		Children: make(map[string][]core.NodeID, len(doc.Children)),
	}
	for n, p := range doc.Parents {
		rec.Parents[formatNodeKey(n)] = p
	}
	for n, kids := range doc.Children {
		rec.Children[formatNodeKey(n)] = kids
	}

	if doc.NodeProps != nil {
		rec.NodeProps = make(map[string]map[string]any, len(doc.NodeProps))
		for name, prop := range doc.NodeProps {
			out := make(map[string]any, len(prop))
			for n, v := range prop {
				if !scalar(v) {
					return fmt.Errorf("%w: %q node %d holds %T", ErrInvalidNodeProps, name, n, v)
				}
				out[formatNodeKey(n)] = v
			}
			rec.NodeProps[name] = out
		}
	}
	if doc.EdgeProps != nil {
		rec.EdgeProps = make(map[string]map[string]any, len(doc.EdgeProps))
		for name, prop := range doc.EdgeProps {
			out := make(map[string]any, len(prop))
			for e, v := range prop {
				if !scalar(v) {
					return fmt.Errorf("%w: %q edge %s holds %T", ErrInvalidEdgeProps, name, e, v)
				}
				out[formatEdgeKey(e)] = v
			}
			rec.EdgeProps[name] = out
		}
	}

	// Buffer the full record so a marshaling failure writes nothing.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(&rec); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Decode reads one JSON record from r and recovers typed keys.
func Decode(r io.Reader) (*Document, error) {
	var rec record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return nil, classifyDecodeError(err)
	}

	doc := &Document{
		Nodes:    rec.Nodes,
		Parents:  make(core.Parenthood, len(rec.Parents)),
		Children: make(core.Childhood, len(rec.Children)),
	}
	for k, p := range rec.Parents {
		n, err := parseNodeKey(k)
		if err != nil {
			return nil, fmt.Errorf("%w: parents key %q", core.ErrInvalidNodeID, k)
		}
		doc.Parents[n] = p
	}
	for k, kids := range rec.Children {
		n, err := parseNodeKey(k)
		if err != nil {
			return nil, fmt.Errorf("%w: children key %q", core.ErrInvalidNodeID, k)
		}
		doc.Children[n] = kids
	}

	if rec.NodeProps != nil {
		doc.NodeProps = make(core.NodeProperties, len(rec.NodeProps))
		for name, prop := range rec.NodeProps {
			out := make(core.NodeProperty, len(prop))
			for k, v := range prop {
				n, err := parseNodeKey(k)
				if err != nil {
					return nil, fmt.Errorf("%w: %q key %q", ErrInvalidNodeProps, name, k)
				}
				out[n] = v
			}
			doc.NodeProps[name] = out
		}
	}
	if rec.EdgeProps != nil {
		doc.EdgeProps = make(core.EdgeProperties, len(rec.EdgeProps))
		for name, prop := range rec.EdgeProps {
			out := make(core.EdgeProperty, len(prop))
			for k, v := range prop {
				e, err := parseEdgeKey(k)
				if err != nil {
					return nil, fmt.Errorf("%w: %q key %q", ErrInvalidEdgeProps, name, k)
				}
				out[e] = v
			}
			doc.EdgeProps[name] = out
		}
	}
	return doc, nil
}

// Save writes doc to a file, creating or truncating it.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = Encode(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a Document from a file.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// classifyDecodeError maps a structural mismatch inside nodeprops or
// edgeprops onto the dedicated boundary error; anything else passes
// through wrapped.
func classifyDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch {
		case strings.HasPrefix(typeErr.Field, "nodeprops"):
			return fmt.Errorf("%w: %v", ErrInvalidNodeProps, err)
		case strings.HasPrefix(typeErr.Field, "edgeprops"):
			return fmt.Errorf("%w: %v", ErrInvalidEdgeProps, err)
		}
	}
	return fmt.Errorf("treeio: decode: %w", err)
}

// formatNodeKey renders a node id as a text key.
func formatNodeKey(n core.NodeID) string {
	return strconv.FormatInt(int64(n), 10)
}

// parseNodeKey recovers a node id from its text key.
func parseNodeKey(k string) (core.NodeID, error) {
	v, err := strconv.ParseInt(k, 10, 64)
	if err != nil {
		return 0, err
	}
	return core.NodeID(v), nil
}

// formatEdgeKey renders an edge as "u,v" in canonical orientation.
func formatEdgeKey(e core.Edge) string {
	c := e.Canonical()
	return formatNodeKey(c.U) + "," + formatNodeKey(c.V)
}

// parseEdgeKey recovers an edge from its "u,v" text key.
func parseEdgeKey(k string) (core.Edge, error) {
	us, vs, ok := strings.Cut(k, ",")
	if !ok {
		return core.Edge{}, fmt.Errorf("not a u,v pair: %q", k)
	}
	u, err := parseNodeKey(us)
	if err != nil {
		return core.Edge{}, err
	}
	v, err := parseNodeKey(vs)
	if err != nil {
		return core.Edge{}, err
	}
	return core.Edge{U: u, V: v}, nil
}

// scalar reports whether v is a JSON-scalar property value.
func scalar(v any) bool {
	switch v.(type) {
	case float64, float32, int, int32, int64, bool, string:
		return true
	default:
		return false
	}
}
