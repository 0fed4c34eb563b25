package value

import "strings"

// PairValue is a cons cell: (car . cdr). Lists are Nil-terminated chains
// of PairValue; improperly-terminated chains (dotted pairs) are equally
// valid values (spec.md §3). Car/cdr hold Value references; since no
// mutator is exposed on pairs in this interpreter (no set-car!/set-cdr!),
// identical tails may be freely shared without risk of forming a cycle.
type PairValue struct {
	Car Value
	Cdr Value
}

func (v *PairValue) Kind() string { return "pair" }

func (v *PairValue) String() string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(Print(v.Car))
	cdr := v.Cdr
	for {
		switch rest := cdr.(type) {
		case *PairValue:
			b.WriteString(" ")
			b.WriteString(Print(rest.Car))
			cdr = rest.Cdr
		case NilValue:
			b.WriteString(")")
			return b.String()
		default:
			b.WriteString(" . ")
			b.WriteString(Print(cdr))
			b.WriteString(")")
			return b.String()
		}
	}
}

// Cons allocates a new pair.
func Cons(car, cdr Value) Value {
	return &PairValue{Car: car, Cdr: cdr}
}

// List builds a proper, Nil-terminated list from items.
func List(items ...Value) Value {
	return ListWithTail(items, Nil)
}

// ListWithTail builds a list from items terminated by tail instead of
// Nil, producing a dotted pair when tail isn't Nil.
func ListWithTail(items []Value, tail Value) Value {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}

// ToSlice walks a (possibly improper) list and returns its elements along
// with the final tail (Nil for a proper list).
func ToSlice(v Value) (items []Value, tail Value) {
	for {
		p, ok := v.(*PairValue)
		if !ok {
			return items, v
		}
		items = append(items, p.Car)
		v = p.Cdr
	}
}

// IsList reports whether v is a proper, Nil-terminated list.
func IsList(v Value) bool {
	_, tail := ToSlice(v)
	_, isNil := tail.(NilValue)
	return isNil
}

// Length returns the number of elements in a proper list, and false if v
// is not a proper list.
func Length(v Value) (int, bool) {
	items, tail := ToSlice(v)
	if _, ok := tail.(NilValue); !ok {
		return 0, false
	}
	return len(items), true
}
