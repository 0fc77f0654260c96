package compile

import (
	"errors"
	"strings"
	"testing"

	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emptyModule = "\n\nconst layoutProps = {\n  \n};\n" +
	"export default class MDXContent extends React.Component {\n" +
	"  constructor(props) {\n" +
	"    super(props)\n" +
	"    this.layout = null\n" +
	"  }\n" +
	"  render() {\n" +
	"    const { components, ...props } = this.props\n" +
	"\n" +
	"    return <MDXTag\n" +
	"             name=\"wrapper\"\n" +
	"             \n" +
	"             components={components}>\n" +
	"           </MDXTag>\n" +
	"  }\n" +
	"}"

// body compiles nodes as root content and returns what ends up inside the
// wrapper tag.
func body(t *testing.T, opts Options, nodes ...ast.Node) string {
	t.Helper()
	out, err := Compile(&ast.Root{Children: nodes}, opts)
	require.NoError(t, err)
	const head = "components={components}>"
	const tail = "\n           </MDXTag>\n  }\n}"
	i := strings.Index(out, "name=\"wrapper\"")
	require.NotEqual(t, -1, i)
	rest := out[i:]
	start := strings.Index(rest, head)
	require.NotEqual(t, -1, start)
	require.True(t, strings.HasSuffix(rest, tail))
	return rest[start+len(head) : len(rest)-len(tail)]
}

func TestCompileEmptyRoot(t *testing.T) {
	out, err := Compile(&ast.Root{}, Options{})
	require.NoError(t, err)
	assert.Equal(t, emptyModule, out)
}

func TestCompileNilRoot(t *testing.T) {
	out, err := Compile(nil, Options{})
	assert.True(t, errors.Is(err, ErrNilRoot))
	assert.Empty(t, out)
}

func TestCompileSkipExport(t *testing.T) {
	out, err := Compile(&ast.Root{}, Options{SkipExport: true})
	require.NoError(t, err)
	assert.NotContains(t, out, "export default")
	assert.Contains(t, out, "};\n class MDXContent extends React.Component {")
}

func TestCompileLayout(t *testing.T) {
	root := &ast.Root{Children: []ast.Node{
		&ast.Import{Value: "import A from 'a'"},
		&ast.Export{Value: "export default A", Default: true},
		&ast.Element{TagName: "div"},
	}}
	out, err := Compile(root, Options{})
	require.NoError(t, err)

	want := "import A from 'a'\n" +
		"export default A\n" +
		"const layoutProps = {\n  \n};\n" +
		"export default class MDXContent extends React.Component {\n" +
		"  constructor(props) {\n" +
		"    super(props)\n" +
		"    this.layout = A\n" +
		"  }\n" +
		"  render() {\n" +
		"    const { components, ...props } = this.props\n" +
		"\n" +
		"    return <MDXTag\n" +
		"             name=\"wrapper\"\n" +
		"             Layout={this.layout} layoutProps={Object.assign({}, layoutProps, props)}\n" +
		"             components={components}><MDXTag name=\"div\" components={components}></MDXTag>\n" +
		"           </MDXTag>\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, out)
}

func TestCompileLayoutStripsSemicolon(t *testing.T) {
	root := &ast.Root{Children: []ast.Node{
		&ast.Export{Value: "export default ({ children }) => <main>{children}</main>;", Default: true},
	}}
	out, err := Compile(root, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "this.layout = ({ children }) => <main>{children}</main>\n")
}

func TestCompileBuckets(t *testing.T) {
	root := &ast.Root{Children: []ast.Node{
		&ast.Element{TagName: "h1"},
		&ast.Import{Value: "import A from 'a'"},
		&ast.Export{Value: "export const meta = { title: 'x' }"},
		&ast.Text{Value: "\n"},
		&ast.Import{Value: "import { B } from 'b'"},
		&ast.Export{Value: "export function Foo() {}"},
		&ast.Export{Value: "export { a } from 'b'"},
		&ast.Element{TagName: "p"},
	}}
	out, err := Compile(root, Options{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out,
		"import A from 'a'\nimport { B } from 'b'\n"+
			"export const meta = { title: 'x' }\nexport function Foo() {}\nexport { a } from 'b'\n"+
			"const layoutProps = {\n  meta,\nFoo\n};\n"), out)
	assert.Contains(t, out, "components={components}>"+
		`<MDXTag name="h1" components={components}></MDXTag>`+"\n"+
		`<MDXTag name="p" components={components}></MDXTag>`+"\n           </MDXTag>")
	assert.Contains(t, out, "this.layout = null")
	assert.NotContains(t, out, "Layout={this.layout}")
}

func TestCompileRejectsDefaultReexport(t *testing.T) {
	for _, c := range []struct {
		value     string
		isDefault bool
		from      bool
		example   string
	}{
		{"export { default } from './Layout'", false, true, "import Layout from './Layout'\nexport default Layout"},
		{"export { default } from './Layout'", true, true, "import Layout from './Layout'\nexport default Layout"},
		{"export { Layout as default }", false, false, "export { Layout as default }\n\nuse:\n\nexport default Layout"},
		{"export { Layout as default } from './Layout'", false, true, "import Layout from './Layout'"},
	} {
		root := &ast.Root{Children: []ast.Node{
			&ast.Import{Value: "import Layout from './Layout'"},
			&ast.Export{Value: c.value, Default: c.isDefault},
			&ast.Element{TagName: "p"},
		}}
		out, err := Compile(root, Options{})
		require.Error(t, err, c.value)
		assert.Empty(t, out, c.value)

		var de *DefaultExportError
		require.True(t, errors.As(err, &de), c.value)
		assert.Equal(t, c.value, de.Value)
		assert.Equal(t, c.from, de.From, c.value)
		assert.True(t, strings.HasPrefix(err.Error(),
			"MDX doesn't support using \"default\" as a named export, use \"export default\" statement instead.\n\nFor example, instead of:\n\n"), c.value)
		assert.Contains(t, err.Error(), c.example, c.value)
	}
}

func TestDefaultExportErrorMessage(t *testing.T) {
	err := &DefaultExportError{Value: "export { default } from './Layout'", From: true}
	assert.Equal(t, `MDX doesn't support using "default" as a named export, use "export default" statement instead.

For example, instead of:

export { default } from './Layout'

use:

import Layout from './Layout'
export default Layout`, err.Error())
}

func TestCompileOtherReexportsAccepted(t *testing.T) {
	for _, v := range []string{
		"export {  default } from './Layout'",
		"export * from './Layout'",
		"export{ default } from './Layout'",
	} {
		_, err := Compile(&ast.Root{Children: []ast.Node{&ast.Export{Value: v}}}, Options{})
		assert.NoError(t, err, v)
	}
}

func TestCompileText(t *testing.T) {
	for _, c := range []struct {
		name  string
		opts  Options
		nodes []ast.Node
		want  string
	}{
		{"plain", Options{}, []ast.Node{&ast.Text{Value: "hello"}}, "{`hello`}"},
		{"escapes", Options{}, []ast.Node{&ast.Text{Value: "a`b${c}"}}, "{`a\\`b\\${c}`}"},
		{"backslash", Options{}, []ast.Node{&ast.Text{Value: `a\b`}}, "{`a\\\\b`}"},
		{"bare newline", Options{}, []ast.Node{&ast.Text{Value: "\n"}}, "\n"},
		{"two newlines", Options{}, []ast.Node{&ast.Text{Value: "\n\n"}}, "{`\n\n`}"},
		{"preserve flag", Options{PreserveNewlines: true}, []ast.Node{&ast.Text{Value: "\n"}}, "{`\n`}"},
		{
			"newline in div", Options{},
			[]ast.Node{&ast.Element{TagName: "div", Children: []ast.Node{&ast.Text{Value: "\n"}}}},
			"<MDXTag name=\"div\" components={components}>\n</MDXTag>",
		},
		{
			"newline in pre", Options{},
			[]ast.Node{&ast.Element{TagName: "pre", Children: []ast.Node{&ast.Text{Value: "\n"}}}},
			"<MDXTag name=\"pre\" components={components}>{`\n`}</MDXTag>",
		},
		{
			"newline below pre", Options{},
			[]ast.Node{&ast.Element{TagName: "pre", Children: []ast.Node{
				&ast.Element{TagName: "code", Children: []ast.Node{&ast.Text{Value: "\n"}}},
			}}},
			"<MDXTag name=\"pre\" components={components}>" +
				"<MDXTag name=\"code\" components={components} parentName=\"pre\">{`\n`}</MDXTag>" +
				"</MDXTag>",
		},
		{
			"preserve flag nested", Options{PreserveNewlines: true},
			[]ast.Node{&ast.Element{TagName: "table", Children: []ast.Node{&ast.Text{Value: "\n"}}}},
			"<MDXTag name=\"table\" components={components}>{`\n`}</MDXTag>",
		},
	} {
		assert.Equal(t, c.want, body(t, c.opts, c.nodes...), c.name)
	}
}

// unescapeTemplate evaluates the body of a template literal without
// interpolations.
func unescapeTemplate(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func TestEscapeTemplateRoundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		"`",
		"$",
		"${x}",
		`\`,
		"\\`",
		"\\${a}`b`",
		"cost: $5 \\ 10`",
	} {
		escaped := escapeTemplate(s)
		assert.Equal(t, s, unescapeTemplate(escaped), s)
		for i := 0; i < len(escaped); i++ {
			if escaped[i] == '\\' {
				i++
				continue
			}
			assert.NotEqual(t, byte('`'), escaped[i], s)
			assert.NotEqual(t, byte('$'), escaped[i], s)
		}
	}
}

func TestCompileElementProps(t *testing.T) {
	el := &ast.Element{
		TagName: "div",
		Properties: ast.Properties{
			{Name: "style", Value: ast.String("color: red; font-size: 12px")},
			{Name: "ariaLabel", Value: ast.String("x")},
			{Name: "dataFoo", Value: ast.String("y")},
			{Name: "customProp", Value: ast.String("z")},
			{Name: "className", Value: ast.List("a", "b")},
			{Name: "tabIndex", Value: ast.Number(12)},
			{Name: "width", Value: ast.Number(1.5)},
			{Name: "hidden", Value: ast.Bool(true)},
			{Name: "title", Value: ast.String(`say "<hi>" & go`)},
		},
	}
	got := body(t, Options{}, el)
	assert.Equal(t, `<MDXTag name="div" components={components} props={{`+
		`"style":{"color":"red","fontSize":"12px"},`+
		`"aria-label":"x",`+
		`"data-foo":"y",`+
		`"customProp":"z",`+
		`"className":"a b",`+
		`"tabIndex":12,`+
		`"width":1.5,`+
		`"hidden":true,`+
		`"title":"say \"<hi>\" & go"`+
		`}}></MDXTag>`, got)
}

func TestCompileListValueOtherThanClassName(t *testing.T) {
	el := &ast.Element{
		TagName:    "td",
		Properties: ast.Properties{{Name: "headers", Value: ast.List("a", "b")}},
	}
	assert.Equal(t, `<MDXTag name="td" components={components} props={{"headers":["a","b"]}}></MDXTag>`, body(t, Options{}, el))
}

func TestCompileParentName(t *testing.T) {
	tree := &ast.Element{TagName: "div", Children: []ast.Node{
		&ast.Element{TagName: "p", Children: []ast.Node{
			&ast.Text{Value: "hi"},
			&ast.Element{TagName: "em"},
		}},
	}}
	assert.Equal(t,
		`<MDXTag name="div" components={components}>`+
			`<MDXTag name="p" components={components} parentName="div">{`+"`hi`"+`}`+
			`<MDXTag name="em" components={components} parentName="p"></MDXTag>`+
			`</MDXTag></MDXTag>`,
		body(t, Options{}, tree))
}

func TestCompilePassthrough(t *testing.T) {
	assert.Equal(t, "{/* note */}", body(t, Options{}, &ast.Comment{Value: " note "}))
	assert.Equal(t, "<Chart data={data} />", body(t, Options{}, &ast.JSX{Value: "<Chart data={data} />"}))
	assert.Equal(t, "", body(t, Options{}, &ast.Unknown{Type: "yaml"}))

	nested := &ast.Element{TagName: "div", Children: []ast.Node{&ast.JSX{Value: "<Foo />"}}}
	assert.Equal(t, `<MDXTag name="div" components={components}><Foo /></MDXTag>`, body(t, Options{}, nested))
}

func nest(depth int) ast.Node {
	var n ast.Node = &ast.Text{Value: "leaf"}
	for i := 0; i < depth; i++ {
		n = &ast.Element{TagName: "div", Children: []ast.Node{n}}
	}
	return n
}

func TestCompileMaxDepth(t *testing.T) {
	// Ten elements put the text leaf at depth 11.
	_, err := Compile(&ast.Root{Children: []ast.Node{nest(10)}}, Options{MaxDepth: 11})
	assert.NoError(t, err)

	out, err := Compile(&ast.Root{Children: []ast.Node{nest(10)}}, Options{MaxDepth: 10})
	assert.Empty(t, out)
	var de *DepthError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 10, de.Max)
	assert.EqualError(t, err, "mdx: tree exceeds the maximum depth of 10")

	_, err = Compile(&ast.Root{Children: []ast.Node{nest(DefaultMaxDepth + 1)}}, Options{})
	assert.True(t, errors.As(err, &de))
}

func TestCompileIdempotent(t *testing.T) {
	root := &ast.Root{Children: []ast.Node{
		&ast.Import{Value: "import A from 'a'"},
		&ast.Export{Value: "export const meta = {}"},
		&ast.Element{
			TagName: "p",
			Properties: ast.Properties{
				{Name: "style", Value: ast.String("margin-top: 1px")},
				{Name: "dataId", Value: ast.String("1")},
				{Name: "className", Value: ast.List("x", "y")},
			},
			Children: []ast.Node{&ast.Text{Value: "a`b"}},
		},
	}}
	first, err := Compile(root, Options{})
	require.NoError(t, err)
	second, err := Compile(root, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
