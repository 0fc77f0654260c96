package ast

import "strings"

type ValueKind int

const (
	KindString ValueKind = iota
	KindBool
	KindNumber
	// KindList is a space separated token list, e.g. className.
	KindList
	// KindStyle is a style attribute after tokenization.
	KindStyle
)

func (k ValueKind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindList:
		return "list"
	case KindStyle:
		return "style"
	default:
		return "unknown"
	}
}

// StyleDecl is one declaration of a style attribute. Name is the CSS
// property as written, Key is its camel-cased form used by the JSX runtime.
// Name is empty when the style arrived already keyed as an object.
// Numeric marks a Value that holds a JSON number literal rather than text.
type StyleDecl struct {
	Name    string
	Key     string
	Value   string
	Numeric bool
}

// Value is the value of an element property. Only the field selected by
// Kind is meaningful.
type Value struct {
	Kind  ValueKind
	Str   string
	Bool  bool
	Num   float64
	List  []string
	Style []StyleDecl
}

func String(s string) Value      { return Value{Kind: KindString, Str: s} }
func Bool(b bool) Value          { return Value{Kind: KindBool, Bool: b} }
func Number(n float64) Value     { return Value{Kind: KindNumber, Num: n} }
func List(l ...string) Value     { return Value{Kind: KindList, List: l} }
func Style(d ...StyleDecl) Value { return Value{Kind: KindStyle, Style: d} }

// Joined returns the list tokens separated by single spaces.
func (v Value) Joined() string {
	return strings.Join(v.List, " ")
}

type Property struct {
	Name  string
	Value Value
}

// Properties is an insertion-ordered property map. Order is significant:
// it is the order properties are emitted in.
type Properties []Property

func (p Properties) Index(name string) int {
	for i := range p {
		if p[i].Name == name {
			return i
		}
	}
	return -1
}

func (p Properties) Get(name string) (Value, bool) {
	if i := p.Index(name); i >= 0 {
		return p[i].Value, true
	}
	return Value{}, false
}

// Set replaces the value of an existing property in place, or appends it.
func (p *Properties) Set(name string, v Value) {
	if i := p.Index(name); i >= 0 {
		(*p)[i].Value = v
		return
	}
	*p = append(*p, Property{Name: name, Value: v})
}
