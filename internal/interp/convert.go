package interp

import (
	"strconv"

	"github.com/dop251/goja"
	"github.com/vk/pagehostgo/internal/pyval"
)

// FromGoja converts an engine value into the closed variant set, applied
// recursively to containers. Arrays become sequences, plain objects become
// mappings with string keys in insertion order, wrapped tuple values pass
// through unchanged. Containers are walked via the live object rather than
// Export, which would flatten nested objects into unordered Go maps.
func FromGoja(v goja.Value) pyval.Value {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return pyval.Null()
	}

	if obj, ok := v.(*goja.Object); ok {
		if pv, wrapped := obj.Export().(pyval.Value); wrapped {
			return pv
		}
		switch obj.ClassName() {
		case "Array":
			n := obj.Get("length").ToInteger()
			items := make([]pyval.Value, 0, n)
			for i := int64(0); i < n; i++ {
				items = append(items, FromGoja(obj.Get(strconv.FormatInt(i, 10))))
			}
			return pyval.Seq(items...)
		case "Object":
			keys := obj.Keys()
			pairs := make([]pyval.Pair, 0, len(keys))
			for _, k := range keys {
				pairs = append(pairs, pyval.Pair{
					Key: pyval.Str(k),
					Val: FromGoja(obj.Get(k)),
				})
			}
			return pyval.Mapping(pairs...)
		default:
			// Functions, dates, regexps and other engine classes render
			// by their engine string form.
			return pyval.Other(v.String())
		}
	}

	switch ev := v.Export().(type) {
	case string:
		return pyval.Str(ev)
	case bool:
		return pyval.Bool(ev)
	case int64:
		return pyval.Int(ev)
	case float64:
		return pyval.Float(ev)
	}
	return pyval.Other(v.String())
}
