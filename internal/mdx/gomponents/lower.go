// Package gomponents lowers an MDX tree into gomponents nodes so a document
// can be previewed as static HTML without a JSX runtime.
package gomponents

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/kilianc/mdxc/internal/mdx/compile"
	"github.com/kilianc/mdxc/internal/mdx/style"
	"github.com/pkg/errors"
	g "maragu.dev/gomponents"
)

// Render writes the HTML preview of root.
func Render(root *ast.Root) ([]byte, error) {
	var buf bytes.Buffer
	if err := LowerNodes(root.Children).Render(&buf); err != nil {
		return nil, errors.Wrap(err, "rendering preview")
	}
	return buf.Bytes(), nil
}

// LowerNodes lowers a list of nodes to a single gomponents node.
// Import, export and jsx fragments have no HTML form and are dropped.
func LowerNodes(nodes []ast.Node) g.Node {
	var out []g.Node
	for _, n := range nodes {
		if ln := lowerNode(n); ln != nil {
			out = append(out, ln)
		}
	}
	return g.Group(out)
}

func lowerNode(n ast.Node) g.Node {
	switch t := n.(type) {
	case *ast.Text:
		return g.Text(t.Value)
	case *ast.Comment:
		return g.Raw("<!--" + strings.ReplaceAll(t.Value, "-->", "--&gt;") + "-->")
	case *ast.Element:
		return lowerElement(t)
	case *ast.Root:
		return LowerNodes(t.Children)
	default:
		return nil
	}
}

func lowerElement(el *ast.Element) g.Node {
	compile.Normalize(el)

	var args []g.Node
	// attrs first
	for _, p := range el.Properties {
		if a := lowerAttr(p); a != nil {
			args = append(args, a)
		}
	}
	// then children
	for _, c := range el.Children {
		if cn := lowerNode(c); cn != nil {
			args = append(args, cn)
		}
	}
	return g.El(el.TagName, args...)
}

func lowerAttr(p ast.Property) g.Node {
	name := htmlAttrName(p.Name)
	v := p.Value
	switch v.Kind {
	case ast.KindBool:
		if !v.Bool {
			return nil
		}
		return g.Attr(name)
	case ast.KindString:
		return g.Attr(name, v.Str)
	case ast.KindNumber:
		return g.Attr(name, strconv.FormatFloat(v.Num, 'f', -1, 64))
	case ast.KindList:
		return g.Attr(name, v.Joined())
	case ast.KindStyle:
		if len(v.Style) == 0 {
			return nil
		}
		return g.Attr(name, style.Format(v.Style))
	default:
		return nil
	}
}

// htmlAttrName maps hast property names back to HTML attribute names.
func htmlAttrName(name string) string {
	switch name {
	case "className":
		return "class"
	case "htmlFor":
		return "for"
	case "httpEquiv":
		return "http-equiv"
	case "acceptCharset":
		return "accept-charset"
	default:
		return name
	}
}
