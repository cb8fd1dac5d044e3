package envconf_test

import (
	"context"
	"errors"
	"expvar"
	"fmt"

	"github.com/cep21/envconf"
)

func ExampleEnv() {
	ctx := context.Background()
	m := envconf.MemFrom(map[string]string{
		"DEBUG": "false",
	})
	e := envconf.Env{
		Reader: m,
	}
	x := e.Bool("DEBUG")
	fmt.Println(x.MustGet(ctx))
	// Output: false
}

func ExampleEnv_Float() {
	ctx := context.Background()
	e := envconf.Env{
		Reader: envconf.MemFrom(map[string]string{"RATIO": "3.2"}),
	}
	x := e.Float("RATIO").Default(1.0)
	fmt.Println(x.MustGet(ctx))
	// Output: 3.2
}

func ExampleExtractor_Default() {
	ctx := context.Background()
	e := envconf.Env{
		Reader: &envconf.Mem{},
	}
	x := e.Str("X").Required().Default("y")
	v, ok, err := x.Get(ctx)
	fmt.Println(v, ok, err)
	// Output: y true <nil>
}

func ExampleExtractor_Get_absent() {
	ctx := context.Background()
	e := envconf.Env{
		Reader: &envconf.Mem{},
	}
	_, ok, err := e.Float("TIMEOUT").Get(ctx)
	fmt.Println(ok, err)
	// Output: false <nil>
}

func ExampleExtractor_Required() {
	ctx := context.Background()
	e := envconf.Env{
		Reader: &envconf.Mem{},
	}
	_, _, err := e.Str("DATABASE_URL").Required().Get(ctx)
	fmt.Println(err)
	fmt.Println(errors.Is(err, envconf.ErrRequired))
	// Output: env DATABASE_URL: required variable is not set
	// true
}

func ExampleJSONFrom() {
	ctx := context.Background()
	e := envconf.Env{
		Reader: envconf.MemFrom(map[string]string{"LIMITS": `{"burst":10,"rate":2.5}`}),
	}
	type limits struct {
		Burst int     `json:"burst"`
		Rate  float64 `json:"rate"`
	}
	l := envconf.JSONFrom[limits](&e, "LIMITS").MustGet(ctx)
	fmt.Println(l.Burst, l.Rate)
	// Output: 10 2.5
}

func ExampleEnv_Info() {
	e := envconf.Env{}
	expvar.Publish("envconf", e.Info())
	// Output:
}
