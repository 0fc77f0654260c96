// Package compile turns an MDX hast tree into JSX module source.
//
// The tree is walked once, depth first. The root is split into imports,
// exports and content; the content is wrapped in a generated MDXContent
// component that optionally threads a default export through as a layout.
package compile

import (
	"strings"

	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/kilianc/mdxc/internal/mdx/sniff"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultMaxDepth bounds nesting when Options.MaxDepth is zero.
const DefaultMaxDepth = 10000

// ErrNilRoot is returned by Compile when it is given no tree.
var ErrNilRoot = errors.New("mdx: nil root")

// Options controls the shape of the generated module. The zero value
// exports the component as the module default.
type Options struct {
	// SkipExport emits the wrapper class without `export default`; the
	// caller wires up the module export itself.
	SkipExport bool
	// PreserveNewlines keeps lone newline text nodes as text everywhere,
	// not only inside <pre>.
	PreserveNewlines bool
	// MaxDepth is the deepest nesting accepted before a *DepthError is
	// returned. Zero means DefaultMaxDepth.
	MaxDepth int
}

// parentContext is what a node knows about its enclosing element.
type parentContext struct {
	tagName  string
	preserve bool
	depth    int
}

// Compile returns the JSX module for root. On error no output is produced.
func Compile(root *ast.Root, opts Options) (string, error) {
	if root == nil {
		return "", ErrNilRoot
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	c := &compiler{opts: opts}
	return c.root(root)
}

type compiler struct {
	opts Options
}

// whitespaceSignificant lists tags whose descendants keep newline text.
var whitespaceSignificant = map[string]bool{
	"pre": true,
}

func (c *compiler) root(root *ast.Root) (string, error) {
	var (
		imports []*ast.Import
		exports []*ast.Export
		content []ast.Node
		names   []string
		layout  string
	)
	for _, child := range root.Children {
		switch n := child.(type) {
		case *ast.Import:
			imports = append(imports, n)
		case *ast.Export:
			if sniff.IsDefaultReexport(n.Value) {
				return "", &DefaultExportError{Value: n.Value, From: sniff.HasFromClause(n.Value)}
			}
			exports = append(exports, n)
			if n.Default {
				layout = sniff.Layout(n.Value)
				continue
			}
			if name, ok := sniff.ExportName(n.Value); ok {
				names = append(names, name)
			}
		default:
			content = append(content, child)
		}
	}
	logrus.Debugf("mdx: compiling root with %d imports, %d exports, %d content nodes", len(imports), len(exports), len(content))
	if layout != "" {
		logrus.Debugf("mdx: using layout %q", layout)
	}

	top := parentContext{preserve: c.opts.PreserveNewlines, depth: 1}

	var b strings.Builder
	for i, n := range imports {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(n.Value)
	}
	b.WriteByte('\n')
	for i, n := range exports {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(n.Value)
	}
	b.WriteByte('\n')

	var body strings.Builder
	for _, n := range content {
		s, err := c.node(n, top)
		if err != nil {
			return "", err
		}
		body.WriteString(s)
	}

	b.WriteString("const layoutProps = {\n  ")
	b.WriteString(strings.Join(names, ",\n"))
	b.WriteString("\n};\n")
	if !c.opts.SkipExport {
		b.WriteString("export default")
	}
	b.WriteString(` class MDXContent extends React.Component {
  constructor(props) {
    super(props)
    this.layout = `)
	if layout != "" {
		b.WriteString(layout)
	} else {
		b.WriteString("null")
	}
	b.WriteString(`
  }
  render() {
    const { components, ...props } = this.props

    return <MDXTag
             name="wrapper"
             `)
	if layout != "" {
		b.WriteString("Layout={this.layout} layoutProps={Object.assign({}, layoutProps, props)}")
	}
	b.WriteString("\n             components={components}>")
	b.WriteString(body.String())
	b.WriteString("\n           </MDXTag>\n  }\n}")
	return b.String(), nil
}

func (c *compiler) node(n ast.Node, parent parentContext) (string, error) {
	if parent.depth > c.opts.MaxDepth {
		return "", &DepthError{Max: c.opts.MaxDepth}
	}

	switch n := n.(type) {
	case *ast.Element:
		Normalize(n)
		children, err := c.children(n, parent)
		if err != nil {
			return "", err
		}
		return c.element(n, parent, children)
	case *ast.Text:
		if n.Value == "\n" && !parent.preserve {
			return n.Value, nil
		}
		return "{`" + escapeTemplate(n.Value) + "`}", nil
	case *ast.Comment:
		return "{/*" + n.Value + "*/}", nil
	case *ast.Import:
		return n.Value, nil
	case *ast.Export:
		return n.Value, nil
	case *ast.JSX:
		return n.Value, nil
	case *ast.Root:
		// A nested root is not produced by the parser; treat it as a fragment.
		return c.nodes(n.Children, parent)
	default:
		return "", nil
	}
}

func (c *compiler) children(el *ast.Element, parent parentContext) (string, error) {
	ctx := parentContext{
		tagName:  el.TagName,
		preserve: parent.preserve || whitespaceSignificant[el.TagName],
		depth:    parent.depth + 1,
	}
	return c.nodes(el.Children, ctx)
}

func (c *compiler) nodes(nodes []ast.Node, ctx parentContext) (string, error) {
	var b strings.Builder
	for _, child := range nodes {
		s, err := c.node(child, ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

func (c *compiler) element(el *ast.Element, parent parentContext, children string) (string, error) {
	var b strings.Builder
	b.WriteString(`<MDXTag name="`)
	b.WriteString(el.TagName)
	b.WriteString(`" components={components}`)
	if parent.tagName != "" {
		b.WriteString(` parentName="`)
		b.WriteString(parent.tagName)
		b.WriteByte('"')
	}
	if len(el.Properties) > 0 {
		props, err := serializeProps(el.Properties)
		if err != nil {
			return "", err
		}
		b.WriteString(" props={")
		b.WriteString(props)
		b.WriteByte('}')
	}
	b.WriteByte('>')
	b.WriteString(children)
	b.WriteString("</MDXTag>")
	return b.String(), nil
}

// escapeTemplate escapes s for a JS template literal so that the literal
// evaluates back to s. Backslashes go first so later escapes are not doubled;
// every $ is escaped so `${x}` cannot start an interpolation.
func escapeTemplate(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "`", "\\`")
	return strings.ReplaceAll(s, "$", "\\$")
}
