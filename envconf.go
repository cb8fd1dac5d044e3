// Package envconf reads typed values out of the process environment.
//
// Every entry point returns an *Extractor that can be marked required or given a
// default before Get resolves it:
//
//	port, _, err := envconf.Float("PORT").Default(8080).Get(ctx)
package envconf

import (
	"context"
	"encoding/json"
	"expvar"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Hooks are optional callbacks invoked when a variable fails to resolve or is declared badly
type Hooks struct {
	OnError func(msg string, envKey string, err error)
}

func (h Hooks) onError(msg string, envKey string, err error) {
	if h.OnError != nil {
		h.OnError(msg, envKey, err)
	}
}

// Reader can get a []byte value for a key.  A nil slice means the key is not set, while a
// non-nil empty slice means the key is set to the empty string.
type Reader interface {
	Read(ctx context.Context, key string) ([]byte, error)
}

// Env creates extractors that resolve against a single Reader
type Env struct {
	// Reader is where values come from.  A nil Reader reads the process environment.
	Reader Reader
	Hooks  Hooks

	infoMutex  sync.Mutex
	declared   map[string]declaredVar
	callerFunc func(int) (uintptr, string, int, bool)
}

// Default is the Env used by the package level functions.  It reads the process environment.
var Default = &Env{}

type declaredVar struct {
	file string
	line int
	desc describer
}

// describer is implemented by every *Extractor so Info can report its current configuration
type describer interface {
	Type() VarType
	describe() (required bool, defaultValue interface{})
}

// VarType is the variant of an extractor
type VarType int

// Variant types reported by Info
const (
	StrType VarType = iota
	FloatType
	BoolType
	JSONType
	IntType
	DurationType
	YAMLType
)

var varTypeNames = map[VarType]string{
	StrType:      "str",
	FloatType:    "float",
	BoolType:     "bool",
	JSONType:     "json",
	IntType:      "int",
	DurationType: "duration",
	YAMLType:     "yaml",
}

func (t VarType) String() string {
	if n, ok := varTypeNames[t]; ok {
		return n
	}
	return "unknown"
}

// MarshalText lets Info print the type name instead of a number
func (t VarType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// varInfo is useful to unmarshal/marshal the Info expvar
type varInfo struct {
	File         string      `json:"file"`
	Line         int         `json:"line"`
	Type         VarType     `json:"type"`
	Required     bool        `json:"required"`
	DefaultValue interface{} `json:"default_value,omitempty"`
}

func (e *Env) reader() Reader {
	if e.Reader == nil {
		return &Environment{}
	}
	return e.Reader
}

// declare records where key was declared.  skip is the number of frames between the
// caller of a public entry point and this function.
func (e *Env) declare(key string, d describer, skip int) {
	e.infoMutex.Lock()
	defer e.infoMutex.Unlock()
	if e.callerFunc == nil {
		e.callerFunc = runtime.Caller
	}
	_, file, line, ok := e.callerFunc(skip)
	if !ok {
		e.Hooks.onError("unable to find caller for env variable", key, nil)
	}
	if e.declared == nil {
		e.declared = make(map[string]declaredVar)
	}
	if prev, exists := e.declared[key]; exists && prev.desc.Type() != d.Type() {
		e.Hooks.onError("declaring key with multiple types", key, nil)
	}
	e.declared[key] = declaredVar{
		file: file,
		line: line,
		desc: d,
	}
}

// Info returns an expvar variable that shows every variable declared on this Env.
// Information consists of file, line, type, required flag and default value.
func (e *Env) Info() expvar.Var {
	return expvar.Func(func() interface{} {
		e.infoMutex.Lock()
		defer e.infoMutex.Unlock()

		m := make(map[string]varInfo, len(e.declared))
		for k, d := range e.declared {
			required, def := d.desc.describe()
			m[k] = varInfo{
				File:         d.file,
				Line:         d.line,
				Type:         d.desc.Type(),
				Required:     required,
				DefaultValue: infoDefault(def),
			}
		}
		return m
	})
}

// infoDefault keeps one default that JSON cannot encode (NaN, maps with non string keys)
// from emptying the whole Info output
func infoDefault(def interface{}) interface{} {
	if def == nil {
		return nil
	}
	b, err := json.Marshal(def)
	if err != nil {
		return fmt.Sprint(def)
	}
	return json.RawMessage(b)
}

// Caller(0) is declare, 1 is newExtractor, 2 is the public entry point and 3 is its caller
const declareSkip = 3

// Str returns an extractor for the raw text of key
func (e *Env) Str(key string) *Extractor[string] {
	return newExtractor(e, key, StrType, parseStr, declareSkip)
}

// Float returns an extractor that parses key as a decimal number
func (e *Env) Float(key string) *Extractor[float64] {
	return newExtractor(e, key, FloatType, parseFloat, declareSkip)
}

// Bool returns an extractor that is false only for "0" and "false"
func (e *Env) Bool(key string) *Extractor[bool] {
	return newExtractor(e, key, BoolType, parseBool, declareSkip)
}

// Int returns an extractor that parses key as a base 10 int64
func (e *Env) Int(key string) *Extractor[int64] {
	return newExtractor(e, key, IntType, parseInt, declareSkip)
}

// Duration returns an extractor that calls time.ParseDuration on key
func (e *Env) Duration(key string) *Extractor[time.Duration] {
	return newExtractor(e, key, DurationType, parseDuration, declareSkip)
}

// JSONFrom returns an extractor on e that decodes key as JSON into a T.  T is whatever
// the caller says it is: nothing past the decoder checks the shape.
func JSONFrom[T any](e *Env, key string) *Extractor[T] {
	return newExtractor(e, key, JSONType, parseJSON[T], declareSkip)
}

// YAMLFrom returns an extractor on e that decodes key as YAML into a T
func YAMLFrom[T any](e *Env, key string) *Extractor[T] {
	return newExtractor(e, key, YAMLType, parseYAML[T], declareSkip)
}

// Str is Default.Str
func Str(key string) *Extractor[string] {
	return newExtractor(Default, key, StrType, parseStr, declareSkip)
}

// Float is Default.Float
func Float(key string) *Extractor[float64] {
	return newExtractor(Default, key, FloatType, parseFloat, declareSkip)
}

// Bool is Default.Bool
func Bool(key string) *Extractor[bool] {
	return newExtractor(Default, key, BoolType, parseBool, declareSkip)
}

// Int is Default.Int
func Int(key string) *Extractor[int64] {
	return newExtractor(Default, key, IntType, parseInt, declareSkip)
}

// Duration is Default.Duration
func Duration(key string) *Extractor[time.Duration] {
	return newExtractor(Default, key, DurationType, parseDuration, declareSkip)
}

// JSON is JSONFrom on Default
func JSON[T any](key string) *Extractor[T] {
	return newExtractor(Default, key, JSONType, parseJSON[T], declareSkip)
}

// YAML is YAMLFrom on Default
func YAML[T any](key string) *Extractor[T] {
	return newExtractor(Default, key, YAMLType, parseYAML[T], declareSkip)
}
