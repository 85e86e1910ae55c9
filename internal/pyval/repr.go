package pyval

import (
	"strconv"
	"strings"
)

// Display returns the top-level textual form of v: strings render verbatim,
// everything else renders as its Repr. This is the form a display call
// writes into the page.
func (v Value) Display() string {
	if v.kind == KindString {
		return v.s
	}
	return v.Repr()
}

// Repr returns the unambiguous textual form of v. Containers render their
// elements recursively with Repr, so nested strings come out quoted.
func (v Value) Repr() string {
	var sb strings.Builder
	v.repr(&sb)
	return sb.String()
}

func (v Value) repr(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		if v.b {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindInt:
		sb.WriteString(strconv.FormatInt(v.i, 10))
	case KindFloat:
		sb.WriteString(formatFloat(v.f))
	case KindString:
		quote(sb, v.s)
	case KindSequence:
		sb.WriteByte('[')
		v.reprItems(sb)
		sb.WriteByte(']')
	case KindTuple:
		sb.WriteByte('(')
		v.reprItems(sb)
		// A one-element tuple keeps a trailing comma so it stays
		// distinguishable from a parenthesized scalar.
		if len(v.items) == 1 {
			sb.WriteByte(',')
		}
		sb.WriteByte(')')
	case KindMapping:
		sb.WriteByte('{')
		for i, p := range v.pairs {
			if i > 0 {
				sb.WriteString(", ")
			}
			p.Key.repr(sb)
			sb.WriteString(": ")
			p.Val.repr(sb)
		}
		sb.WriteByte('}')
	case KindOther:
		sb.WriteString(v.s)
	}
}

func (v Value) reprItems(sb *strings.Builder) {
	for i, item := range v.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		item.repr(sb)
	}
}

// quote writes s single-quoted with backslash escapes for the quote, the
// backslash itself and the common control characters.
func quote(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('\'')
}

// formatFloat renders f in minimal decimal form, keeping a trailing ".0" on
// integral values so floats stay distinguishable from ints.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eENI") {
		s += ".0"
	}
	return s
}
