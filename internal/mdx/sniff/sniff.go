// Package sniff inspects raw import/export fragments. The fragments are
// opaque source text; nothing here parses them beyond these patterns.
package sniff

import "regexp"

var (
	reexportDefaultFrom = regexp.MustCompile(`^export\s\{\s?default\s?\}\sfrom`)
	reexportAsDefault   = regexp.MustCompile(`^export\s\{.*?as\sdefault\s?\}`)
	fromClause          = regexp.MustCompile(`\}\s*from\s+`)

	defaultPrefix = regexp.MustCompile(`^export\s+default\s+`)
	trailingSemi  = regexp.MustCompile(`;\s*$`)
	exportBinding = regexp.MustCompile(`export\s*(var|const|let|class|function)?\s*(\w+)`)
)

// IsDefaultReexport reports whether v re-exports a binding as the module
// default using one of the two unsupported spellings:
//
//	export { default } from './Layout'
//	export { Layout as default }
//
// Other spellings are deliberately not detected.
func IsDefaultReexport(v string) bool {
	return reexportDefaultFrom.MatchString(v) || reexportAsDefault.MatchString(v)
}

// HasFromClause reports whether v ends its braces with a `from` clause.
func HasFromClause(v string) bool {
	return fromClause.MatchString(v)
}

// Layout strips a leading `export default` and a trailing semicolon,
// leaving the expression that is exported.
func Layout(v string) string {
	v = defaultPrefix.ReplaceAllLiteralString(v, "")
	return trailingSemi.ReplaceAllLiteralString(v, "")
}

// ExportName returns the identifier bound by an export declaration such as
// `export const meta = {}` or `export function Foo() {}`. Fragments that
// bind nothing locally, like `export { a } from 'b'`, report false.
func ExportName(v string) (string, bool) {
	m := exportBinding.FindStringSubmatch(v)
	if m == nil {
		return "", false
	}
	return m[2], true
}
