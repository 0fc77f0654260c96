package compile

import "fmt"

const defaultExportMessage = `MDX doesn't support using "default" as a named export, use "export default" statement instead.`

const fromExample = `For example, instead of:

export { default } from './Layout'

use:

import Layout from './Layout'
export default Layout`

const asExample = `For example, instead of:

export { Layout as default }

use:

export default Layout`

// DefaultExportError is returned when a root level export re-exports a
// binding as the module default, e.g. `export { default } from './Layout'`.
// The wrapper component owns the module default, so the author has to
// rewrite it as an `export default` statement.
type DefaultExportError struct {
	// Value is the offending fragment.
	Value string
	// From is set when the fragment carries a `from` clause; it selects the
	// example shown in the message.
	From bool
}

func (e *DefaultExportError) Error() string {
	example := asExample
	if e.From {
		example = fromExample
	}
	return defaultExportMessage + "\n\n" + example
}

// DepthError is returned when the tree nests deeper than Options.MaxDepth.
type DepthError struct {
	Max int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("mdx: tree exceeds the maximum depth of %d", e.Max)
}
