package builtin_test

import (
	"testing"

	"meowlisp/builtin"
	"meowlisp/value"
)

func num(n int64) value.Value { return value.MakeNum(n) }

func TestListRetypesSExprToQExpr(t *testing.T) {
	t.Parallel()
	env := value.NewEnvironment(nil)
	got := builtin.List(env, value.MakeSExpr(num(1), num(2), num(3)))
	q, ok := value.GetQExpr(got)
	if !ok {
		t.Fatalf("got %v, want QExpr", got)
	}
	if q.String() != "{1 2 3}" {
		t.Errorf("got %v, want {1 2 3}", q)
	}
}

func TestHeadAndTail(t *testing.T) {
	t.Parallel()
	env := value.NewEnvironment(nil)
	q := value.MakeQExpr(num(1), num(2), num(3))

	head := builtin.Head(env, value.MakeSExpr(q))
	if head.String() != "{1}" {
		t.Errorf("head got %v, want {1}", head)
	}

	tail := builtin.Tail(env, value.MakeSExpr(value.MakeQExpr(num(1), num(2), num(3))))
	if tail.String() != "{2 3}" {
		t.Errorf("tail got %v, want {2 3}", tail)
	}
}

func TestHeadTailEmptyCollection(t *testing.T) {
	t.Parallel()
	env := value.NewEnvironment(nil)

	h := builtin.Head(env, value.MakeSExpr(value.MakeQExpr()))
	wantErrMsg(t, h, "Function 'head' passed {}!")

	tl := builtin.Tail(env, value.MakeSExpr(value.MakeQExpr()))
	wantErrMsg(t, tl, "Function 'tail' passed {}!")
}

func TestHeadWrongType(t *testing.T) {
	t.Parallel()
	env := value.NewEnvironment(nil)
	got := builtin.Head(env, value.MakeSExpr(num(5)))
	wantErrMsg(t, got, "Function 'head' passed incorrect types! Got Number, Expected Q-Expression.")
}

func TestJoin(t *testing.T) {
	t.Parallel()
	env := value.NewEnvironment(nil)
	got := builtin.Join(env, value.MakeSExpr(
		value.MakeQExpr(num(1), num(2)),
		value.MakeQExpr(num(3)),
	))
	if got.String() != "{1 2 3}" {
		t.Errorf("got %v, want {1 2 3}", got)
	}
}

func TestEvalBuiltinRetypesAndEvaluates(t *testing.T) {
	t.Parallel()
	env := builtin.NewRootEnvironment()
	got := builtin.Eval(env, value.MakeSExpr(
		value.MakeQExpr(value.MakeSym("+"), num(1), num(2)),
	))
	wantNum(t, got, 3)
}
