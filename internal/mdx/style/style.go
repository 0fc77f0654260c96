// Package style tokenizes inline style attributes into ordered declarations
// keyed the way JSX style objects expect.
package style

import (
	"strings"

	"github.com/ettle/strcase"
	"github.com/kilianc/mdxc/internal/mdx/ast"
)

// caser splits words on case changes and on '-', '_' and '.', never around
// digits: dataH1Title is data-h1-title.
var caser = strcase.NewCaser(false, nil, strcase.NewSplitFn(
	[]rune{'-', '_', '.'},
	strcase.SplitCase,
	strcase.SplitAcronym,
))

// ParamCase returns name in lower case words joined by dashes.
func ParamCase(name string) string {
	return caser.ToKebab(name)
}

// Parse splits css into declarations. Semicolons and colons inside
// parentheses or quotes do not split, so values such as
// `url(data:image/png;base64,...)` survive intact. Declarations without a
// name or value are dropped. A repeated property keeps its first position
// and its last value.
func Parse(css string) []ast.StyleDecl {
	var out []ast.StyleDecl
	index := map[string]int{}
	for _, chunk := range split(css, ';') {
		parts := split(chunk, ':')
		if len(parts) < 2 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(chunk[len(parts[0])+1:])
		if name == "" || value == "" {
			continue
		}
		key := Camelize(name)
		if i, ok := index[key]; ok {
			out[i].Value = value
			continue
		}
		index[key] = len(out)
		out = append(out, ast.StyleDecl{Name: name, Key: key, Value: value})
	}
	return out
}

// Camelize converts a CSS property name to its JSX style key:
//
//	font-size          -> fontSize
//	-webkit-transition -> WebkitTransition
//	-ms-transform      -> msTransform
//	--brand-color      -> --brand-color
func Camelize(name string) string {
	switch {
	case strings.HasPrefix(name, "--"):
		return name
	case strings.HasPrefix(name, "-ms-"):
		return caser.ToCamel(name[1:])
	case strings.HasPrefix(name, "-"):
		return caser.ToPascal(name[1:])
	case !strings.Contains(name, "-"):
		return name
	default:
		return caser.ToCamel(strings.ToLower(name))
	}
}

// Uncamelize is the inverse of Camelize, used for styles that arrive keyed
// as an object and carry no CSS name.
func Uncamelize(key string) string {
	switch {
	case key == "" || strings.HasPrefix(key, "--"):
		return key
	case key[0] >= 'A' && key[0] <= 'Z':
		return "-" + ParamCase(key)
	case len(key) > 2 && strings.HasPrefix(key, "ms") && key[2] >= 'A' && key[2] <= 'Z':
		return "-" + ParamCase(key)
	default:
		return ParamCase(key)
	}
}

// Format renders declarations back into an inline style string using the
// original property names.
func Format(decls []ast.StyleDecl) string {
	var b strings.Builder
	for i, d := range decls {
		if i > 0 {
			b.WriteByte(';')
		}
		name := d.Name
		if name == "" {
			name = Uncamelize(d.Key)
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}

// split cuts s at every sep that is not nested inside (), "" or ''.
func split(s string, sep byte) []string {
	var (
		parts []string
		depth int
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == '\\' {
				i++
			} else if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case c == sep && depth == 0:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
