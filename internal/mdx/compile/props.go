package compile

import (
	"math"

	jsoniter "github.com/json-iterator/go"
	"github.com/kilianc/mdxc/internal/mdx/ast"
	"github.com/pkg/errors"
)

// propsJSON writes like JSON.stringify: no HTML escaping, keys in order.
var propsJSON = jsoniter.Config{EscapeHTML: false}.Froze()

// serializeProps renders properties as a JSON object literal suitable for
// a JSX `props={...}` attribute.
func serializeProps(props ast.Properties) (string, error) {
	stream := propsJSON.BorrowStream(nil)
	defer propsJSON.ReturnStream(stream)

	stream.WriteObjectStart()
	for i, p := range props {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(p.Name)
		writeValue(stream, p.Value)
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return "", errors.Wrap(stream.Error, "serializing properties")
	}
	return string(stream.Buffer()), nil
}

func writeValue(stream *jsoniter.Stream, v ast.Value) {
	switch v.Kind {
	case ast.KindString:
		stream.WriteString(v.Str)
	case ast.KindBool:
		stream.WriteBool(v.Bool)
	case ast.KindNumber:
		// JSON.stringify has no representation for these either.
		if math.IsNaN(v.Num) || math.IsInf(v.Num, 0) {
			stream.WriteNil()
			return
		}
		if v.Num == math.Trunc(v.Num) && math.Abs(v.Num) < 1e15 {
			stream.WriteInt64(int64(v.Num))
			return
		}
		stream.WriteFloat64(v.Num)
	case ast.KindList:
		stream.WriteArrayStart()
		for i, s := range v.List {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteString(s)
		}
		stream.WriteArrayEnd()
	case ast.KindStyle:
		stream.WriteObjectStart()
		for i, d := range v.Style {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(d.Key)
			if d.Numeric {
				stream.WriteRaw(d.Value)
			} else {
				stream.WriteString(d.Value)
			}
		}
		stream.WriteObjectEnd()
	default:
		stream.WriteNil()
	}
}
