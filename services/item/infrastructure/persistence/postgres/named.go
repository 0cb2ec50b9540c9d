package postgres

import (
	"fmt"
	"strconv"
	"strings"
)

// param is one named statement parameter. Statements carry an explicit,
// ordered list of these; nothing is derived from struct fields.
type param struct {
	name  string
	value any
}

// bindNamed rewrites :name placeholders in query to $n and returns the
// arguments in placeholder order. A name used twice reuses its first
// ordinal. Quoted literals and :: casts are copied through untouched.
// Parameters that the query never references are ignored.
func bindNamed(query string, params []param) (string, []any, error) {
	lookup := make(map[string]any, len(params))
	for _, p := range params {
		lookup[p.name] = p.value
	}

	var (
		sb      strings.Builder
		args    []any
		ordinal = make(map[string]int)
	)
	sb.Grow(len(query))

	for i := 0; i < len(query); {
		c := query[i]
		switch {
		case c == '\'':
			end, err := literalEnd(query, i)
			if err != nil {
				return "", nil, err
			}
			sb.WriteString(query[i:end])
			i = end
		case c == ':' && i+1 < len(query) && query[i+1] == ':':
			sb.WriteString("::")
			i += 2
		case c == ':' && i+1 < len(query) && isIdentStart(query[i+1]):
			j := i + 1
			for j < len(query) && isIdentPart(query[j]) {
				j++
			}
			name := query[i+1 : j]
			n, seen := ordinal[name]
			if !seen {
				v, ok := lookup[name]
				if !ok {
					return "", nil, fmt.Errorf("bind named query: parameter %q is not bound", name)
				}
				args = append(args, v)
				n = len(args)
				ordinal[name] = n
			}
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			i = j
		default:
			sb.WriteByte(c)
			i++
		}
	}
	return sb.String(), args, nil
}

// literalEnd returns the index just past the single-quoted literal starting
// at start. Doubled quotes inside the literal are escapes.
func literalEnd(query string, start int) (int, error) {
	for j := start + 1; j < len(query); j++ {
		if query[j] != '\'' {
			continue
		}
		if j+1 < len(query) && query[j+1] == '\'' {
			j++
			continue
		}
		return j + 1, nil
	}
	return 0, fmt.Errorf("bind named query: unterminated literal at offset %d", start)
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
