package factory

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/fluent/pkg/fluent"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON is an unbox factory that renders the context as JSON.
// Passing true as the first argument indents the output.
func JSON[C any]() func(args ...any) func(C) fluent.Result[string] {
	return func(args ...any) func(C) fluent.Result[string] {
		indent := len(args) > 0 && Arg[bool](args, 0)
		return func(c C) fluent.Result[string] {
			var (
				out []byte
				err error
			)
			if indent {
				out, err = jsonAPI.MarshalIndent(c, "", "  ")
			} else {
				out, err = jsonAPI.Marshal(c)
			}
			if err != nil {
				return fluent.Fail[string](fmt.Errorf("render json: %w", err))
			}
			return fluent.Success(string(out))
		}
	}
}

// YAML is an unbox factory that renders the context as a YAML document.
func YAML[C any]() func(args ...any) func(C) fluent.Result[string] {
	return func(args ...any) func(C) fluent.Result[string] {
		return func(c C) (res fluent.Result[string]) {
			// yaml.v3 panics on some unsupported values instead of returning an error
			defer func() {
				if r := recover(); r != nil {
					res = fluent.Fail[string](fmt.Errorf("render yaml: %v", r))
				}
			}()

			out, err := yaml.Marshal(c)
			if err != nil {
				return fluent.Fail[string](fmt.Errorf("render yaml: %w", err))
			}
			return fluent.Success(string(out))
		}
	}
}
