package envconf

import (
	"context"
	"os"
	"strings"
)

// CommandLine reads "<Prefix><key>=value" arguments, the way env(1) takes assignments
type CommandLine struct {
	Prefix string
	// Source defaults to os.Args
	Source []string
}

var _ Reader = &CommandLine{}

// Read returns the value of the first matching argument, or nil when none match
func (p *CommandLine) Read(_ context.Context, key string) ([]byte, error) {
	source := p.Source
	if source == nil {
		source = os.Args
	}
	argPrefix := p.Prefix + key + "="
	for _, arg := range source {
		if !strings.HasPrefix(arg, argPrefix) {
			continue
		}
		argSuffix := arg[len(argPrefix):]
		return append([]byte{}, argSuffix...), nil
	}
	return nil, nil
}
