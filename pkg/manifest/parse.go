package manifest

import (
	stderrors "errors"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cargoscan/pkg/errors"
)

// FileName is the canonical Cargo manifest name matched by [WalkLocator].
const FileName = "Cargo.toml"

// ReadFile reads and parses the manifest at path. The file is read in one
// call and closed before parsing starts.
func ReadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeUnreadable, err, "read %s", path)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return root, nil
}

// Parse decodes TOML text into a table tree. Table keys keep the order in
// which they appear in the text; keys the decoder reports no position for
// (rare, e.g. inside inline arrays of tables) follow in lexical order.
func Parse(data []byte) (*Table, error) {
	var raw map[string]any
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}
	return buildTable(raw, nil, newKeyOrder(md.Keys())), nil
}

// keyOrder maps a joined key path to its child keys in first-seen order.
type keyOrder map[string][]string

func newKeyOrder(keys []toml.Key) keyOrder {
	ord := make(keyOrder)
	seen := make(map[string]bool)
	for _, k := range keys {
		for i := range k {
			id := joinKey(k[:i+1])
			if seen[id] {
				continue
			}
			seen[id] = true
			parent := joinKey(k[:i])
			ord[parent] = append(ord[parent], k[i])
		}
	}
	return ord
}

func joinKey(parts []string) string {
	return strings.Join(parts, "\x00")
}

func buildTable(m map[string]any, path []string, ord keyOrder) *Table {
	t := NewTable()
	for _, k := range ord[joinKey(path)] {
		if v, ok := m[k]; ok {
			t.Set(k, buildValue(v, childPath(path, k), ord))
		}
	}

	var rest []string
	for k := range m {
		if !t.Has(k) {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		t.Set(k, buildValue(m[k], childPath(path, k), ord))
	}
	return t
}

func buildValue(v any, path []string, ord keyOrder) Value {
	switch x := v.(type) {
	case map[string]any:
		return TableValue(buildTable(x, path, ord))
	case []map[string]any:
		vs := make([]Value, len(x))
		for i, m := range x {
			vs[i] = TableValue(buildTable(m, path, ord))
		}
		return Array(vs...)
	case []any:
		vs := make([]Value, len(x))
		for i, e := range x {
			vs[i] = buildValue(e, path, ord)
		}
		return Array(vs...)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	default:
		return Other(x)
	}
}

// childPath returns path+key without aliasing path's backing array.
func childPath(path []string, key string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = key
	return out
}
