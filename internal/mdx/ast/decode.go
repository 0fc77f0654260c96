package ast

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode reads a hast tree serialized as JSON, the form the MDX parser
// hands over. Property order is preserved.
func Decode(src []byte) (*Root, error) {
	iter := jsoniter.ParseBytes(json, src)
	n := decodeNode(iter)
	if iter.Error != nil {
		return nil, errors.Wrap(iter.Error, "decoding tree")
	}
	root, ok := n.(*Root)
	if !ok {
		return nil, errors.Errorf("decoding tree: top level node is %s, want root", typeName(n))
	}
	return root, nil
}

// rawNode collects fields in whatever order they appear; "type" is not
// guaranteed to come first.
type rawNode struct {
	typ        string
	value      string
	isDefault  bool
	tagName    string
	properties Properties
	children   []Node
}

func decodeNode(iter *jsoniter.Iterator) Node {
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		iter.ReportError("decode node", "expected object")
		return nil
	}
	var raw rawNode
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, field string) bool {
		switch field {
		case "type":
			raw.typ = iter.ReadString()
		case "value":
			if iter.WhatIsNext() == jsoniter.StringValue {
				raw.value = iter.ReadString()
			} else {
				iter.Skip()
			}
		case "default":
			if iter.WhatIsNext() == jsoniter.BoolValue {
				raw.isDefault = iter.ReadBool()
			} else {
				iter.Skip()
			}
		case "tagName":
			raw.tagName = iter.ReadString()
		case "properties":
			raw.properties = decodeProperties(iter)
		case "children":
			iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
				if c := decodeNode(iter); c != nil {
					raw.children = append(raw.children, c)
				}
				return iter.Error == nil
			})
		default:
			iter.Skip()
		}
		return iter.Error == nil
	})
	if iter.Error != nil {
		return nil
	}

	switch raw.typ {
	case "root":
		return &Root{Children: raw.children}
	case "import":
		return &Import{Value: raw.value}
	case "export":
		return &Export{Value: raw.value, Default: raw.isDefault}
	case "element":
		return &Element{TagName: raw.tagName, Properties: raw.properties, Children: raw.children}
	case "text":
		return &Text{Value: raw.value}
	case "comment":
		return &Comment{Value: raw.value}
	case "jsx":
		return &JSX{Value: raw.value}
	case "":
		iter.ReportError("decode node", "missing type")
		return nil
	default:
		return &Unknown{Type: raw.typ}
	}
}

func decodeProperties(iter *jsoniter.Iterator) Properties {
	props := Properties{}
	if iter.WhatIsNext() == jsoniter.NilValue {
		iter.Skip()
		return props
	}
	iter.ReadObjectCB(func(iter *jsoniter.Iterator, name string) bool {
		v, ok := decodeValue(iter)
		if ok {
			props.Set(name, v)
		}
		return iter.Error == nil
	})
	return props
}

// decodeValue reads one property value. Nulls are dropped; objects are
// only meaningful for an already tokenized style.
func decodeValue(iter *jsoniter.Iterator) (Value, bool) {
	switch iter.WhatIsNext() {
	case jsoniter.StringValue:
		return String(iter.ReadString()), true
	case jsoniter.BoolValue:
		return Bool(iter.ReadBool()), true
	case jsoniter.NumberValue:
		return Number(iter.ReadFloat64()), true
	case jsoniter.ArrayValue:
		list := []string{}
		iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
			switch iter.WhatIsNext() {
			case jsoniter.StringValue:
				list = append(list, iter.ReadString())
			case jsoniter.NumberValue:
				list = append(list, iter.ReadNumber().String())
			default:
				iter.Skip()
			}
			return iter.Error == nil
		})
		return List(list...), true
	case jsoniter.ObjectValue:
		var decls []StyleDecl
		iter.ReadObjectCB(func(iter *jsoniter.Iterator, key string) bool {
			d := StyleDecl{Key: key}
			switch iter.WhatIsNext() {
			case jsoniter.StringValue:
				d.Value = iter.ReadString()
			case jsoniter.NumberValue:
				d.Value = iter.ReadNumber().String()
				d.Numeric = true
			default:
				iter.Skip()
				return iter.Error == nil
			}
			decls = append(decls, d)
			return iter.Error == nil
		})
		return Style(decls...), true
	default:
		iter.Skip()
		return Value{}, false
	}
}

func typeName(n Node) string {
	switch t := n.(type) {
	case nil:
		return "empty"
	case *Root:
		return "root"
	case *Import:
		return "import"
	case *Export:
		return "export"
	case *Element:
		return "element"
	case *Text:
		return "text"
	case *Comment:
		return "comment"
	case *JSX:
		return "jsx"
	case *Unknown:
		return t.Type
	default:
		return "unknown"
	}
}
