package structural

import (
	"strings"

	"github.com/heistscheme/heistcore/datum"
	"github.com/heistscheme/heistcore/evalapi"
	"github.com/heistscheme/heistcore/listops"
)

// PrettyPrint lays out v across multiple lines once its single-line write
// form would exceed columnBudget (spec.md §4.2, Scenario 8):
//
//   - If the flat form fits, it is emitted as-is.
//   - Otherwise: open paren, first element on the same line, each
//     subsequent element on its own line indented by 2*depth spaces.
//   - If the first element is a non-symbol atom, children are instead
//     packed onto lines greedily up to the column budget.
//   - A non-proper-list pair (improper or cyclic), or a stream pair,
//     falls through to plain write.
func PrettyPrint(v datum.Value, columnBudget int, md evalapi.MethodDispatcher) (string, error) {
	return prettyPrintAt(v, columnBudget, 0, md)
}

func prettyPrintAt(v datum.Value, budget, depth int, md evalapi.MethodDispatcher) (string, error) {
	flat, err := Write(v, md)
	if err != nil {
		return "", err
	}
	if len(flat) <= budget {
		return flat, nil
	}

	if _, ok := v.Pair(); !ok {
		return flat, nil
	}
	if datum.IsStreamPair(v) {
		return flat, nil
	}
	status, _ := listops.Classify(v)
	if status != listops.Proper {
		return flat, nil
	}

	var elements []datum.Value
	cur := v
	for {
		p, ok := cur.Pair()
		if !ok {
			break
		}
		elements = append(elements, p.Car)
		cur = p.Cdr
	}
	if len(elements) == 0 {
		return flat, nil
	}

	firstFlat, err := Write(elements[0], md)
	if err != nil {
		return "", err
	}
	indent := strings.Repeat("  ", depth+1)

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(firstFlat)

	_, firstIsSymbol := elements[0].Symbol()
	if !firstIsSymbol && len(elements) > 1 {
		if err := packGreedily(&b, elements[1:], budget, indent, md); err != nil {
			return "", err
		}
	} else {
		for _, el := range elements[1:] {
			elStr, err := prettyPrintAt(el, budget, depth+1, md)
			if err != nil {
				return "", err
			}
			b.WriteByte('\n')
			b.WriteString(indent)
			b.WriteString(elStr)
		}
	}
	b.WriteByte(')')
	return b.String(), nil
}

func packGreedily(b *strings.Builder, elements []datum.Value, budget int, indent string, md evalapi.MethodDispatcher) error {
	col := len(indent)
	b.WriteByte('\n')
	b.WriteString(indent)
	lineStart := true
	for _, el := range elements {
		flat, err := Write(el, md)
		if err != nil {
			return err
		}
		if !lineStart && col+1+len(flat) > budget {
			b.WriteByte('\n')
			b.WriteString(indent)
			col = len(indent)
			lineStart = true
		}
		if !lineStart {
			b.WriteByte(' ')
			col++
		}
		b.WriteString(flat)
		col += len(flat)
		lineStart = false
	}
	return nil
}
