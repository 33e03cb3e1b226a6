package value

import (
	"fmt"
	"io"
)

// Err is a first-class error value. It is absorbing during
// S-expression reduction: the first Err among a reduced S-expression's
// children becomes the whole expression's result.
type Err struct {
	Message string
}

// MakeErr builds a formatted Err value, in the manner of fmt.Errorf.
func MakeErr(format string, args ...any) *Err {
	return &Err{Message: fmt.Sprintf(format, args...)}
}

func (*Err) TypeName() string { return "Error" }

func (e *Err) String() string { return "Error: " + e.Message }

func (e *Err) Print(w io.Writer) (int, error) { return io.WriteString(w, e.String()) }

func (e *Err) equal(other Value) bool {
	oe, ok := other.(*Err)
	return ok && e.Message == oe.Message
}

func (e *Err) copyValue() Value { return &Err{Message: e.Message} }

// GetErr returns v as an *Err, if possible.
func GetErr(v Value) (*Err, bool) {
	e, ok := v.(*Err)
	return e, ok
}

// IsErr reports whether v is an Err value.
func IsErr(v Value) bool {
	_, ok := v.(*Err)
	return ok
}
