package compile

import (
	"regexp"

	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/kilianc/mdxc/internal/mdx/style"
)

// ariaOrData matches camel-cased aria and data attributes. Only the first
// alternative is anchored, so "xdataFoo" matches too.
var ariaOrData = regexp.MustCompile(`^(aria[A-Z])|(data[A-Z])`)

// Normalize rewrites an element's properties in place before it is
// emitted: a string style becomes tokenized declarations, ariaFoo/dataFoo
// names become aria-foo/data-foo, and a className list is joined. Running it
// twice is a no-op.
func Normalize(el *ast.Element) {
	if el.Properties == nil {
		return
	}
	if v, ok := el.Properties.Get("style"); ok && v.Kind == ast.KindString {
		el.Properties.Set("style", ast.Style(style.Parse(v.Str)...))
	}

	renamed := make(ast.Properties, 0, len(el.Properties))
	for _, p := range el.Properties {
		renamed.Set(AttributeName(p.Name), p.Value)
	}
	el.Properties = renamed

	if v, ok := el.Properties.Get("className"); ok && v.Kind == ast.KindList {
		el.Properties.Set("className", ast.String(v.Joined()))
	}
}

// AttributeName returns the name an attribute is emitted under.
func AttributeName(name string) string {
	if ariaOrData.MatchString(name) {
		return style.ParamCase(name)
	}
	return name
}
