package equiv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// NodeKind is the shape of a ManifestNode.
type NodeKind int

const (
	NodeInvalid NodeKind = iota
	NodeMapping
	NodeSequence
	NodeScalar
)

// ManifestNode is a parsed configuration value: a mapping with string keys,
// an ordered sequence, or a scalar (string, number, bool, or null). Nodes
// are immutable from the caller's point of view; normalization returns new
// nodes and never touches its input.
type ManifestNode struct {
	kind     NodeKind
	keys     []string
	children map[string]ManifestNode
	items    []ManifestNode
	value    any
}

// Kind returns the shape of the node.
func (n ManifestNode) Kind() NodeKind { return n.kind }

// Get looks up a mapping key.
func (n ManifestNode) Get(key string) (ManifestNode, bool) {
	child, ok := n.children[key]
	return child, ok
}

// Keys returns the mapping keys in order.
func (n ManifestNode) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Items returns the sequence elements in order.
func (n ManifestNode) Items() []ManifestNode {
	out := make([]ManifestNode, len(n.items))
	copy(out, n.items)
	return out
}

// Value returns the scalar value.
func (n ManifestNode) Value() any { return n.value }

// FromValue converts a decoded YAML/JSON value into a ManifestNode. Mapping
// keys are ordered lexically (decoders hand us unordered maps); integers and
// floats are widened so the same document decoded through YAML and JSON
// compares equal.
func FromValue(v any) ManifestNode {
	switch val := v.(type) {
	case nil:
		return ManifestNode{kind: NodeScalar}
	case bool, string:
		return ManifestNode{kind: NodeScalar, value: val}
	case int:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case int8:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case int16:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case int32:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case int64:
		return ManifestNode{kind: NodeScalar, value: val}
	case uint:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case uint8:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case uint16:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case uint32:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case uint64:
		return ManifestNode{kind: NodeScalar, value: int64(val)}
	case float32:
		return ManifestNode{kind: NodeScalar, value: float64(val)}
	case float64:
		return ManifestNode{kind: NodeScalar, value: val}
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		children := make(map[string]ManifestNode, len(val))
		for _, k := range keys {
			children[k] = FromValue(val[k])
		}
		return ManifestNode{kind: NodeMapping, keys: keys, children: children}
	case map[any]any:
		// Older YAML decoders produce interface-keyed maps.
		converted := make(map[string]any, len(val))
		for k, v := range val {
			converted[fmt.Sprint(k)] = v
		}
		return FromValue(converted)
	case []any:
		items := make([]ManifestNode, len(val))
		for i, item := range val {
			items[i] = FromValue(item)
		}
		return ManifestNode{kind: NodeSequence, items: items}
	default:
		return ManifestNode{kind: NodeScalar, value: fmt.Sprint(val)}
	}
}

// identityFields is the explicit set of structural paths whose values carry
// identity rather than meaning: two manifests that differ only here still
// describe the same configuration. Paths are index-free, so an entry under a
// sequence matches every element. Keep this set small and reviewable; it is
// never inferred.
var identityFields = [][]string{
	{"metadata", "name"},
	{"spec", "containers", "name"},
}

// NormalizeManifest reduces a manifest tree to its canonical form: identity
// fields are dropped (never changing the entry count of any collection) and
// unordered collections are canonically sorted. Total and pure; a bare
// scalar passes through unchanged.
func NormalizeManifest(node ManifestNode) ManifestNode {
	return normalizeNode(node, nil)
}

func normalizeNode(n ManifestNode, path []string) ManifestNode {
	switch n.kind {
	case NodeMapping:
		out := ManifestNode{kind: NodeMapping, children: make(map[string]ManifestNode, len(n.keys))}
		for _, k := range n.keys {
			childPath := append(append([]string(nil), path...), k)
			if isIdentityField(childPath) {
				continue
			}
			out.keys = append(out.keys, k)
			out.children[k] = normalizeNode(n.children[k], childPath)
		}
		return out

	case NodeSequence:
		items := make([]ManifestNode, len(n.items))
		for i, item := range n.items {
			// Path stays index-free: every element shares the sequence's path.
			items[i] = normalizeNode(item, path)
		}
		// Container env lists sort on each entry's name field. Otherwise a
		// sequence is treated as unordered only when every element is a
		// mapping; scalar sequences (e.g. a command args list) keep their
		// order because it is significant.
		if isContainerEnv(path) || allMappings(items) {
			sortByCanonicalKey(items)
		}
		return ManifestNode{kind: NodeSequence, items: items}

	default:
		return n
	}
}

func isIdentityField(path []string) bool {
	for _, field := range identityFields {
		if pathEqual(path, field) {
			return true
		}
	}
	return false
}

func pathEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func isContainerEnv(path []string) bool {
	return len(path) >= 2 && path[len(path)-1] == "env" && path[len(path)-2] == "containers"
}

func allMappings(items []ManifestNode) bool {
	if len(items) == 0 {
		return false
	}
	for _, item := range items {
		if item.kind != NodeMapping {
			return false
		}
	}
	return true
}

// sortByCanonicalKey orders sequence elements by their name field when they
// have one, falling back to a stable serialization of the whole element, so
// two sequences holding the same unordered set of entries end up identical.
func sortByCanonicalKey(items []ManifestNode) {
	sort.SliceStable(items, func(i, j int) bool {
		return canonicalSortKey(items[i]) < canonicalSortKey(items[j])
	})
}

func canonicalSortKey(n ManifestNode) string {
	if name, ok := n.children["name"]; ok && name.kind == NodeScalar {
		if s, isString := name.value.(string); isString {
			return s
		}
	}
	return renderNode(n)
}

// renderNode produces a deterministic string form of a node, used as the
// sort fallback. Mapping keys are emitted in sorted order regardless of the
// node's own key order.
func renderNode(n ManifestNode) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n ManifestNode) {
	switch n.kind {
	case NodeMapping:
		keys := make([]string, len(n.keys))
		copy(keys, n.keys)
		sort.Strings(keys)
		b.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(k)
			b.WriteByte(':')
			writeNode(b, n.children[k])
		}
		b.WriteByte('}')
	case NodeSequence:
		b.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				b.WriteByte(',')
			}
			writeNode(b, item)
		}
		b.WriteByte(']')
	default:
		b.WriteString(scalarString(n.value))
	}
}

func scalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(val)
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

// Equal performs deep structural equality. Mapping key order is ignored;
// sequence order matters (normalize first for order-insensitive comparison).
// Integer and float scalars holding the same number compare equal.
func Equal(a, b ManifestNode) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case NodeMapping:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.children[k]
			if !ok || !Equal(a.children[k], bv) {
				return false
			}
		}
		return true
	case NodeSequence:
		if len(a.items) != len(b.items) {
			return false
		}
		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}
		return true
	default:
		return scalarEqual(a.value, b.value)
	}
}

func scalarEqual(a, b any) bool {
	if af, aNum := asFloat(a); aNum {
		if bf, bNum := asFloat(b); bNum {
			return af == bf
		}
		return false
	}
	return a == b
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case int64:
		return float64(val), true
	case float64:
		return val, true
	default:
		return 0, false
	}
}
