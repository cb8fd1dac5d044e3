package envconf

import (
	"context"
	"fmt"
	"sync"
)

// Extractor resolves one environment variable into a T.  Configure it with Required and
// Default before the first Get; both return the same *Extractor so calls can chain.
type Extractor[T any] struct {
	name      string
	varType   VarType
	transform func(string) (T, error)
	env       *Env

	mu           sync.RWMutex
	required     bool
	hasDefault   bool
	defaultValue T
}

var _ describer = &Extractor[string]{}

func newExtractor[T any](e *Env, key string, varType VarType, transform func(string) (T, error), skip int) *Extractor[T] {
	x := &Extractor[T]{
		name:      key,
		varType:   varType,
		transform: transform,
		env:       e,
	}
	e.declare(key, x, skip)
	return x
}

// Name is the environment key this extractor reads
func (x *Extractor[T]) Name() string {
	return x.name
}

// Type is the variant this extractor was created as
func (x *Extractor[T]) Type() VarType {
	return x.varType
}

// Required makes Get fail with ErrRequired when the variable is not set and no default
// was given.  A default always wins over Required.
func (x *Extractor[T]) Required() *Extractor[T] {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.required = true
	return x
}

// Default sets the value Get returns when the variable is not set.  The value is
// returned as is: it is never passed through the parser.
func (x *Extractor[T]) Default(value T) *Extractor[T] {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.defaultValue = value
	x.hasDefault = true
	return x
}

func (x *Extractor[T]) describe() (bool, interface{}) {
	x.mu.RLock()
	defer x.mu.RUnlock()
	if !x.hasDefault {
		return x.required, nil
	}
	return x.required, x.defaultValue
}

// Get reads the variable and converts it.  ok is false only when the variable is not
// set, has no default and is not required; the returned value is then T's zero value and
// should be ignored.  A variable set to the empty string counts as set.
func (x *Extractor[T]) Get(ctx context.Context) (value T, ok bool, err error) {
	var zero T
	raw, err := x.env.reader().Read(ctx, x.name)
	if err != nil {
		err = newError(x.name, ErrRead, err)
		x.env.Hooks.onError("unable to read from backing", x.name, err)
		return zero, false, err
	}
	if raw != nil {
		value, err = x.transform(string(raw))
		if err != nil {
			err = newError(x.name, x.failure(), err)
			x.env.Hooks.onError("invalid env value", x.name, err)
			return zero, false, err
		}
		return value, true, nil
	}

	x.mu.RLock()
	defer x.mu.RUnlock()
	if x.hasDefault {
		return x.defaultValue, true, nil
	}
	if x.required {
		err = newError(x.name, ErrRequired, nil)
		x.env.Hooks.onError("required env not set", x.name, err)
		return zero, false, err
	}
	return zero, false, nil
}

// MustGet is Get that panics on any error.  An optional variable that is not set
// returns T's zero value.
func (x *Extractor[T]) MustGet(ctx context.Context) T {
	v, _, err := x.Get(ctx)
	if err != nil {
		panic(fmt.Sprintf("envconf: %v", err))
	}
	return v
}

// failure is the sentinel wrapped around a transform error for this variant
func (x *Extractor[T]) failure() error {
	switch x.varType {
	case JSONType, YAMLType:
		return ErrParse
	default:
		return ErrConversion
	}
}
