package reader_test

import (
	"strings"
	"testing"

	"meowlisp/reader"
	"meowlisp/value"
)

func parse(t *testing.T, src string) value.Value {
	t.Helper()
	rd := reader.New(strings.NewReader(src), "<test>")
	root, err := rd.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll(%q) error: %v", src, err)
	}
	return reader.Convert(root)
}

func TestParseLiterals(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want string
	}{
		{"1 2 3", "(1 2 3)"},
		{"-5", "(-5)"},
		{"+", "(+)"},
		{"foo bar-baz", "(foo bar-baz)"},
		{"(+ 1 2)", "((+ 1 2))"},
		{"{1 2 3}", "({1 2 3})"},
		{"(\\ {x y} {+ x y})", "((\\ {x y} {+ x y}))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()
			got := parse(t, tt.src)
			if got.String() != tt.want {
				t.Errorf("parse(%q) = %v, want %v", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseNestedExpressions(t *testing.T) {
	t.Parallel()
	got := parse(t, "(def {add} (\\ {x y} {+ x y}))")
	want := "((def {add} (\\ {x y} {+ x y})))"
	if got.String() != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestUnmatchedDelimiter(t *testing.T) {
	t.Parallel()
	rd := reader.New(strings.NewReader("(+ 1 2))"), "<test>")
	_, err := rd.ReadAll()
	if err == nil {
		t.Fatalf("expected error for trailing unmatched ')'")
	}
}

func TestUnterminatedSExprIsEOF(t *testing.T) {
	t.Parallel()
	rd := reader.New(strings.NewReader("(+ 1 2"), "<test>")
	_, err := rd.ReadAll()
	if err == nil {
		t.Fatalf("expected an unexpected-EOF error")
	}
}

func TestOverflowingNumberLiteral(t *testing.T) {
	t.Parallel()
	got := parse(t, "99999999999999999999")
	sexpr, ok := value.GetSExpr(got)
	if !ok || sexpr.Length() != 1 {
		t.Fatalf("got %v, want single-element sexpr", got)
	}
	e, ok := value.GetErr(sexpr.Elems()[0])
	if !ok || e.Message != "'99999999999999999999' is an invalid number" {
		t.Errorf("got %v, want overflow Err", sexpr.Elems()[0])
	}
}

func TestNestingLimit(t *testing.T) {
	t.Parallel()
	rd := reader.New(strings.NewReader("((()))"), "<test>", reader.WithNestingLimit(2))
	_, err := rd.ReadAll()
	if err == nil {
		t.Fatalf("expected a too-deeply-nested error")
	}
}

func TestListLimit(t *testing.T) {
	t.Parallel()
	rd := reader.New(strings.NewReader("(1 2 3)"), "<test>", reader.WithListLimit(2))
	_, err := rd.ReadAll()
	if err == nil {
		t.Fatalf("expected a list-too-long error")
	}
}
