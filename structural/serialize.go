package structural

import (
	"fmt"
	"strings"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/listops"
	"github.com/heistscheme/heistcore/numfmt"
)

// Mode selects display or write atom formatting (spec.md §4.2).
type Mode int

const (
	// ModeDisplay prints characters as their glyph and strings unquoted.
	ModeDisplay Mode = iota
	// ModeWrite prints characters as `#\name` literals and strings quoted
	// with internal specials escaped.
	ModeWrite
)

// Display renders v the way `display` does.
func Display(v datum.Value, md evalapi.MethodDispatcher) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v, ModeDisplay, md); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write renders v the way `write` does.
func Write(v datum.Value, md evalapi.MethodDispatcher) (string, error) {
	var b strings.Builder
	if err := writeValue(&b, v, ModeWrite, md); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeValue(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	if datum.IsSentinelValue(v) {
		return nil // spec.md §6: "Serializers must elide sentinels."
	}
	switch v.Tag() {
	case datum.TagUndefined:
		b.WriteString("#<undefined>")
	case datum.TagVoid:
		b.WriteString("#<void>")
	case datum.TagUnspecifiedExecutable:
		b.WriteString("#<unspecified>")
	case datum.TagBoolean:
		bv, _ := v.Boolean()
		if bv {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case datum.TagChar:
		r, _ := v.Char()
		if mode == ModeWrite {
			b.WriteString(writeCharLiteral(r))
		} else {
			b.WriteRune(r)
		}
	case datum.TagNumber:
		n, _ := v.Number()
		b.WriteString(numfmt.Format(n))
	case datum.TagSymbol:
		if datum.IsEmptyList(v) {
			b.WriteString("()")
			return nil
		}
		s, _ := v.Symbol()
		if mode == ModeWrite {
			b.WriteString(encodeSymbolText(string(s)))
		} else {
			b.WriteString(string(s))
		}
	case datum.TagString:
		s, _ := v.Str()
		if mode == ModeWrite {
			b.WriteByte('"')
			b.WriteString(escapeStringBody(s.Runes))
			b.WriteByte('"')
		} else {
			b.WriteString(s.String())
		}
	case datum.TagVector:
		return writeVector(b, v, mode, md)
	case datum.TagHashMap:
		return writeHashMap(b, v, mode, md)
	case datum.TagPair:
		return writePairChain(b, v, mode, md)
	case datum.TagSyntaxRule:
		s, _ := v.SyntaxRule()
		fmt.Fprintf(b, "#<syntax-rule %s>", s.Label)
	case datum.TagPort:
		p, _ := v.Port()
		fmt.Fprintf(b, "#<port %d>", p.Index)
	case datum.TagExpression:
		return writeExpression(b, v, mode, md)
	case datum.TagDelay:
		b.WriteString("#<delay>")
	case datum.TagEnvironment:
		b.WriteString("#<environment>")
	case datum.TagPrimitive:
		p, _ := v.Primitive()
		fmt.Fprintf(b, "#<procedure %s>", p.Name)
	case datum.TagCompound:
		c, _ := v.Compound()
		fmt.Fprintf(b, "#<procedure %s>", c.Name)
	case datum.TagObject:
		return writeObject(b, v, mode, md)
	default:
		fmt.Fprintf(b, "#<unknown tag %s>", v.Tag())
	}
	return nil
}

func writeVector(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	vec, _ := v.Vector()
	b.WriteString("#(")
	for i, it := range vec.Items {
		if i > 0 {
			b.WriteByte(' ')
		}
		if err := writeValue(b, it, mode, md); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func writeHashMap(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	h, _ := v.HashMap()
	b.WriteString("$(")
	for i, e := range h.Entries {
		if i > 0 {
			b.WriteByte(' ')
		}
		if err := writeValue(b, e.Key, mode, md); err != nil {
			return err
		}
		b.WriteByte(' ')
		if err := writeValue(b, e.Val, mode, md); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

func writeExpression(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	e, _ := v.Expression()
	if datum.IsSentinelArgs(e.Data) {
		b.WriteString("()")
		return nil
	}
	b.WriteByte('(')
	for i, it := range e.Data {
		if i > 0 {
			b.WriteByte(' ')
		}
		if err := writeValue(b, it, mode, md); err != nil {
			return err
		}
	}
	b.WriteByte(')')
	return nil
}

// writePairChain walks v's cdr-chain after locating any cycle entry up front
// via listops.Classify and listops.CycleEntry: on reaching the cycle entry
// a second time it emits "<...cycle>" and stops
// (spec.md §4.2). A stream pair (car and cdr both delays) never has its
// contents forced; it prints as "#<stream>".
func writePairChain(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	if datum.IsStreamPair(v) {
		b.WriteString("#<stream>")
		return nil
	}
	status, _ := listops.Classify(v)
	var entryPair *datum.Pair
	if status == listops.Cyclic {
		entry := listops.CycleEntry(v)
		entryPair, _ = entry.Pair()
	}

	b.WriteByte('(')
	cur := v
	first := true
	seenEntry := false
	for {
		p, ok := cur.Pair()
		if !ok {
			if !datum.IsEmptyList(cur) {
				b.WriteString(" . ")
				if err := writeValue(b, cur, mode, md); err != nil {
					return err
				}
			}
			break
		}
		if entryPair != nil && p == entryPair {
			if seenEntry {
				if !first {
					b.WriteByte(' ')
				}
				b.WriteString("<...cycle>")
				break
			}
			seenEntry = true
		}
		if datum.IsStreamPair(cur) {
			if !first {
				b.WriteByte(' ')
			}
			b.WriteString("#<stream>")
			break
		}
		if !first {
			b.WriteByte(' ')
		}
		first = false
		if err := writeValue(b, p.Car, mode, md); err != nil {
			return err
		}
		cur = p.Cdr
	}
	b.WriteByte(')')
	return nil
}

// writeObject invokes the object's this->string method (if md offers one
// and the object defines it); on any failure to do so, it falls back to an
// opaque handle form (spec.md §4.2).
func writeObject(b *strings.Builder, v datum.Value, mode Mode, md evalapi.MethodDispatcher) error {
	o, _ := v.Object()
	if md != nil {
		if s, ok, err := md.Stringify(v); err == nil && ok {
			b.WriteString(s)
			return nil
		}
	}
	fmt.Fprintf(b, "#<object[%p]>", o)
	return nil
}
