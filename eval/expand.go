package eval

import (
	"fmt"
	"strconv"
)

// ExpandString interpolates $[expr] spans in v, evaluating each inner
// expression against root and env and splicing its rendered result into
// the output. Inside a span, backslash escapes the next character, so
// $[get("a\]b")] carries a literal bracket. Text outside spans passes
// through untouched.
func ExpandString(v string, root any, env Env) (string, error) {
	var out, key []byte
	inExpr := false
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case !inExpr && c == '$' && i+1 < len(v) && v[i+1] == '[':
			inExpr = true
			key = key[:0]
			i++
		case inExpr && c == '\\' && i+1 < len(v):
			key = append(key, v[i+1])
			i++
		case inExpr && c == ']':
			x, err := Value(string(key), root, env)
			if err != nil {
				return "", fmt.Errorf("eval: expanding %q: %w", string(key), err)
			}
			s, err := render(x)
			if err != nil {
				return "", fmt.Errorf("eval: expanding %q: %w", string(key), err)
			}
			out = append(out, s...)
			inExpr = false
		case inExpr:
			key = append(key, c)
		default:
			out = append(out, c)
		}
	}
	if inExpr {
		return "", fmt.Errorf("eval: unterminated $[ in %q", v)
	}
	return string(out), nil
}

func render(x any) (string, error) {
	switch v := x.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	}
	return "", fmt.Errorf("cannot splice %T into a string", x)
}
