package i18n

import (
	"fmt"
	"strings"
)

// Option is one entry of a select box: the canonical key and its display label.
type Option struct {
	Key   string
	Label string
}

// LabelTable maps canonical enum keys to display labels and back. A table is
// only constructed through newLabelTable, which guarantees the mapping is a
// bijection over keys.
type LabelTable[K ~string] struct {
	keys    []K
	toLabel map[K]string
	toKey   map[string]K
}

func newLabelTable[K ~string](keys []K, labels map[K]string) (*LabelTable[K], error) {
	t := &LabelTable[K]{
		keys:    keys,
		toLabel: make(map[K]string, len(keys)),
		toKey:   make(map[string]K, len(keys)),
	}

	for _, k := range keys {
		label := strings.TrimSpace(labels[k])
		if label == "" {
			return nil, fmt.Errorf("missing label for key %q", string(k))
		}
		if other, dup := t.toKey[label]; dup {
			return nil, fmt.Errorf("label %q used by both %q and %q", label, string(other), string(k))
		}
		t.toLabel[k] = label
		t.toKey[label] = k
	}

	if len(labels) != len(keys) {
		for k := range labels {
			if _, ok := t.toLabel[k]; !ok {
				return nil, fmt.Errorf("label for unknown key %q", string(k))
			}
		}
	}

	return t, nil
}

// Label returns the display label for key, or the key itself when unknown.
func (t *LabelTable[K]) Label(key K) string {
	if label, ok := t.toLabel[key]; ok {
		return label
	}
	return string(key)
}

// Key resolves a display label back to its canonical key.
func (t *LabelTable[K]) Key(label string) (K, bool) {
	k, ok := t.toKey[strings.TrimSpace(label)]
	return k, ok
}

// Keys returns the canonical keys in presentation order.
func (t *LabelTable[K]) Keys() []K {
	out := make([]K, len(t.keys))
	copy(out, t.keys)
	return out
}

// Options returns the select options in presentation order.
func (t *LabelTable[K]) Options() []Option {
	out := make([]Option, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, Option{Key: string(k), Label: t.toLabel[k]})
	}
	return out
}
