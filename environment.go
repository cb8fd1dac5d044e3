package envconf

import (
	"context"
	"os"
)

// Environment reads the process environment
type Environment struct {
	// LookupEnv defaults to os.LookupEnv
	LookupEnv func(key string) (string, bool)
}

var _ Reader = &Environment{}

// Read returns nil when key is not set and a non-nil (possibly empty) slice when it is
func (p *Environment) Read(_ context.Context, key string) ([]byte, error) {
	lookup := p.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	val, ok := lookup(key)
	if !ok {
		return nil, nil
	}
	return append([]byte{}, val...), nil
}
