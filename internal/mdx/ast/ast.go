package ast

// Node is one node of a parsed MDX document tree.
type Node interface {
	node()
}

// Root is the top of the tree. It appears exactly once.
type Root struct {
	Children []Node
}

func (*Root) node() {}

// Import is a verbatim `import ...` fragment.
type Import struct {
	Value string
}

func (*Import) node() {}

// Export is a verbatim `export ...` fragment. Default is set by the parser
// for `export default ...`.
type Export struct {
	Value   string
	Default bool
}

func (*Export) node() {}

type Element struct {
	TagName    string
	Properties Properties
	Children   []Node
}

func (*Element) node() {}

type Text struct {
	Value string
}

func (*Text) node() {}

type Comment struct {
	Value string
}

func (*Comment) node() {}

// JSX is a raw JSX block passed through untouched.
type JSX struct {
	Value string
}

func (*JSX) node() {}

// Unknown holds a node whose type the decoder does not recognize.
// It compiles to nothing.
type Unknown struct {
	Type string
}

func (*Unknown) node() {}
