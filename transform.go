package envconf

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	errNotDecimal = errors.New("not a decimal literal")

	decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$|^[+-]?Infinity$`)
)

func parseStr(s string) (string, error) {
	return s, nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalLiteral.MatchString(s) {
		return 0, errNotDecimal
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// parseBool is false only for the exact strings "0" and "false"
func parseBool(s string) (bool, error) {
	return s != "0" && s != "false", nil
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(strings.TrimSpace(s))
}

func parseJSON[T any](s string) (T, error) {
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func parseYAML[T any](s string) (T, error) {
	var v T
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
