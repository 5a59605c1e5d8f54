// Package script runs Starlark option scripts.
package script

import (
	"fmt"
	"log"

	"go.starlark.net/starlark"

	"pic-magnifier/magnifier"
)

// Execute runs a script with provided globals and returns its globals as
// native Go values. Scripts can call px(n) to build a pixel length.
func Execute(threadName string, src []byte, inputs map[string]interface{}) (map[string]interface{}, error) {
	thread := &starlark.Thread{Name: threadName, Print: func(_ *starlark.Thread, msg string) { log.Printf("%s: %s", threadName, msg) }}

	globals := starlark.StringDict{
		"px": starlark.NewBuiltin("px", px),
	}
	for k, v := range inputs {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("input %s: %w", k, err)
		}
		globals[k] = val
	}

	resultGlobals, err := starlark.ExecFile(thread, threadName, src, globals)
	if err != nil {
		return nil, err
	}

	out := make(map[string]interface{})
	for k, v := range resultGlobals {
		out[k] = FromStarlarkValue(v)
	}
	return out, nil
}

func px(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var n starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
		return nil, err
	}
	f, ok := starlark.AsFloat(n)
	if !ok {
		return nil, fmt.Errorf("%s: got %s, want number", b.Name(), n.Type())
	}
	return starlark.String(magnifier.Px(f)), nil
}

// Helpers for type conversion
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}

// FromStarlarkValue converts strings, numbers, bools, lists and
// string-keyed dicts. Anything else becomes nil.
func FromStarlarkValue(v starlark.Value) interface{} {
	switch val := v.(type) {
	case starlark.String:
		return string(val)
	case starlark.Int:
		i, _ := val.Int64()
		return int(i)
	case starlark.Float:
		return float64(val)
	case starlark.Bool:
		return bool(val)
	case *starlark.List:
		out := make([]interface{}, val.Len())
		for i := range out {
			out[i] = FromStarlarkValue(val.Index(i))
		}
		return out
	case starlark.Tuple:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = FromStarlarkValue(e)
		}
		return out
	case *starlark.Dict:
		out := make(map[string]interface{}, val.Len())
		for _, item := range val.Items() {
			k, ok := starlark.AsString(item[0])
			if !ok {
				continue
			}
			out[k] = FromStarlarkValue(item[1])
		}
		return out
	}
	return nil
}
