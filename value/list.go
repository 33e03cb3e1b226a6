package value

import (
	"io"
	"strings"
)

// cells is the shared ordered-sequence backing for both SExpr and QExpr;
// the two forms differ only in how they evaluate and how
// they print, not in their storage or list surgery.
type cells struct {
	elems []Value
}

func (c *cells) Length() int { return len(c.elems) }

func (c *cells) print(w io.Writer, open, close byte) (int, error) {
	total := 0
	n, err := w.Write([]byte{open})
	total += n
	if err != nil {
		return total, err
	}
	for i, e := range c.elems {
		if i > 0 {
			n, err = io.WriteString(w, " ")
			total += n
			if err != nil {
				return total, err
			}
		}
		n, err = e.Print(w)
		total += n
		if err != nil {
			return total, err
		}
	}
	n, err = w.Write([]byte{close})
	total += n
	return total, err
}

func (c *cells) render(open, close byte) string {
	var sb strings.Builder
	_, _ = c.print(&sb, open, close)
	return sb.String()
}

func (c *cells) equalElems(other *cells) bool {
	if len(c.elems) != len(other.elems) {
		return false
	}
	for i, e := range c.elems {
		if !IsEqual(e, other.elems[i]) {
			return false
		}
	}
	return true
}

func copyElems(elems []Value) []Value {
	out := make([]Value, len(elems))
	for i, e := range elems {
		out[i] = Copy(e)
	}
	return out
}

// SExpr is an ordered sequence of values evaluated by function application.
// An empty or single-element SExpr reduces to itself or its sole element
// rather than performing a call.
type SExpr struct{ cells }

// MakeSExpr creates a fresh S-expression holding elems (empty when none
// are given).
func MakeSExpr(elems ...Value) *SExpr { return &SExpr{cells{elems: elems}} }

func (*SExpr) TypeName() string { return "S-Expression" }

func (s *SExpr) String() string { return s.render('(', ')') }

func (s *SExpr) Print(w io.Writer) (int, error) { return s.print(w, '(', ')') }

func (s *SExpr) copyValue() Value { return &SExpr{cells{elems: copyElems(s.elems)}} }

func (s *SExpr) equal(other Value) bool {
	os, ok := other.(*SExpr)
	return ok && s.equalElems(&os.cells)
}

// Elems returns the sequence's elements in order. Elems does not copy:
// the returned slice shares its storage with s.
func (s *SExpr) Elems() []Value { return s.elems }

// Push appends v to the sequence and returns the receiver.
func (s *SExpr) Push(v Value) *SExpr {
	s.elems = append(s.elems, v)
	return s
}

// QExpr is an ordered sequence of values whose evaluation is identity:
// it is the language's quoting mechanism.
type QExpr struct{ cells }

// MakeQExpr creates a fresh Q-expression holding elems (empty when none
// are given).
func MakeQExpr(elems ...Value) *QExpr { return &QExpr{cells{elems: elems}} }

func (*QExpr) TypeName() string { return "Q-Expression" }

func (q *QExpr) String() string { return q.render('{', '}') }

func (q *QExpr) Print(w io.Writer) (int, error) { return q.print(w, '{', '}') }

func (q *QExpr) copyValue() Value { return &QExpr{cells{elems: copyElems(q.elems)}} }

func (q *QExpr) equal(other Value) bool {
	oq, ok := other.(*QExpr)
	return ok && q.equalElems(&oq.cells)
}

// Elems returns the sequence's elements in order.
func (q *QExpr) Elems() []Value { return q.elems }

// Push appends v to the sequence and returns the receiver.
func (q *QExpr) Push(v Value) *QExpr {
	q.elems = append(q.elems, v)
	return q
}

// AsQExpr retypes an S-expression into a Q-expression in place of a copy,
// as used by the `list` builtin: the container is reused, only
// its tag changes.
func (s *SExpr) AsQExpr() *QExpr { return &QExpr{cells{elems: s.elems}} }

// AsSExpr retypes a Q-expression into an S-expression, as used by the
// `eval` builtin.
func (q *QExpr) AsSExpr() *SExpr { return &SExpr{cells{elems: q.elems}} }

// GetSExpr returns v as an *SExpr, if possible.
func GetSExpr(v Value) (*SExpr, bool) {
	s, ok := v.(*SExpr)
	return s, ok
}

// GetQExpr returns v as a *QExpr, if possible.
func GetQExpr(v Value) (*QExpr, bool) {
	q, ok := v.(*QExpr)
	return q, ok
}
