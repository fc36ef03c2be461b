package converters

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/darianmavgo/mkclickhouse/converters/common"
)

var ErrUnknownTransformer = errors.New("unknown transformer")

var (
	transformersMu sync.RWMutex
	transformers   = make(map[string]common.Transformer)
)

// Register makes a line transformer available by the provided name.
// If Register is called twice with the same name or if transformer is nil, it panics.
func Register(name string, transformer common.Transformer) {
	transformersMu.Lock()
	defer transformersMu.Unlock()
	if transformer == nil {
		panic("converters: Register transformer is nil")
	}
	if _, dup := transformers[name]; dup {
		panic("converters: Register called twice for transformer " + name)
	}
	transformers[name] = transformer
}

// Lookup returns the transformer registered under name.
func Lookup(name string) (common.Transformer, error) {
	transformersMu.RLock()
	t, ok := transformers[name]
	transformersMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("converters: %w %q (forgotten import?)", ErrUnknownTransformer, name)
	}
	return t, nil
}

// Transformers returns a sorted list of the names of the registered transformers.
func Transformers() []string {
	transformersMu.RLock()
	defer transformersMu.RUnlock()
	list := make([]string, 0, len(transformers))
	for name := range transformers {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}
