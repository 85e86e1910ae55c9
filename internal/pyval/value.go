package pyval

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSequence
	KindMapping
	KindTuple
	KindOther
)

// String returns the variant name, for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	case KindTuple:
		return "tuple"
	case KindOther:
		return "other"
	}
	return "unknown"
}

// Pair is a single key/value entry of a Mapping. Mappings carry their
// entries as an ordered slice, not a Go map: the rendering contract requires
// insertion order to survive.
type Pair struct {
	Key Value
	Val Value
}

// Value is one value of the closed variant set. The zero value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
	pairs []Pair
}

// Null returns the null variant.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean variant.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer variant.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating point variant.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Str returns a string variant.
func Str(s string) Value { return Value{kind: KindString, s: s} }

// Seq returns an ordered sequence variant holding the given elements.
func Seq(items ...Value) Value { return Value{kind: KindSequence, items: items} }

// Tuple returns a fixed-size tuple variant holding the given elements.
func Tuple(items ...Value) Value { return Value{kind: KindTuple, items: items} }

// Mapping returns a key/value mapping variant. Entry order is preserved.
func Mapping(pairs ...Pair) Value { return Value{kind: KindMapping, pairs: pairs} }

// Other returns the escape-hatch variant for values outside the closed set
// (functions, host objects). The given text is its rendered form.
func Other(text string) Value { return Value{kind: KindOther, s: text} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// Items returns the elements of a sequence or tuple variant, nil otherwise.
func (v Value) Items() []Value { return v.items }

// Pairs returns the entries of a mapping variant, nil otherwise.
func (v Value) Pairs() []Pair { return v.pairs }
