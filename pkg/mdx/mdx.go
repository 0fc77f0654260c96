package mdx

import (
	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/kilianc/mdxc/internal/mdx/compile"
	"github.com/kilianc/mdxc/internal/mdx/gomponents"
)

type (
	Options            = compile.Options
	DefaultExportError = compile.DefaultExportError
	DepthError         = compile.DepthError
	Root               = ast.Root
)

// Compile compiles a parsed MDX tree into a JSX module.
//
// The tree's element properties are normalized in place, so a tree must not
// be compiled by two goroutines at once.
func Compile(root *Root, opts Options) (string, error) {
	return compile.Compile(root, opts)
}

// CompileJSON decodes a hast tree serialized as JSON and compiles it.
func CompileJSON(src []byte, opts Options) (string, error) {
	root, err := ast.Decode(src)
	if err != nil {
		return "", err
	}
	return compile.Compile(root, opts)
}

// RenderHTML decodes a hast tree serialized as JSON and renders a static
// HTML preview of its content.
func RenderHTML(src []byte) ([]byte, error) {
	root, err := ast.Decode(src)
	if err != nil {
		return nil, err
	}
	return gomponents.Render(root)
}
