package reader_test

import (
	"bytes"
	"testing"

	"meowlisp/reader"
)

// FuzzReaderReadAll checks that no input, however malformed, causes the
// reader to loop forever or panic; ReadAll must always terminate with
// either a parse tree or an error.
func FuzzReaderReadAll(f *testing.F) {
	f.Add([]byte("(+ 1 2)"))
	f.Add([]byte("{1 2 3}"))
	f.Add([]byte("(\\ {x y} {+ x y})"))
	f.Add([]byte("("))
	f.Add([]byte(")"))
	f.Add([]byte("-"))

	f.Fuzz(func(t *testing.T, src []byte) {
		rd := reader.New(bytes.NewReader(src), "<fuzz>")
		root, err := rd.ReadAll()
		if err == nil {
			_ = reader.Convert(root)
		}
	})
}
