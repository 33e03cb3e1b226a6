package value_test

import (
	"testing"

	"meowlisp/value"
)

func TestEnvRoot(t *testing.T) {
	t.Parallel()
	root := value.NewEnvironment(nil)
	if got := root.Parent(); got != nil {
		t.Error("root env has a parent", got)
	}
	child := value.NewEnvironment(root)
	if got := child.Parent(); got != root {
		t.Error("child parent is not root", got)
	}
}

func TestPutGetUnbind(t *testing.T) {
	t.Parallel()
	root := value.NewEnvironment(nil)
	root.Put("x", value.MakeNum(100))

	if got := root.Get("x"); value.IsErr(got) {
		t.Error("x should be bound, got", got)
	} else if n, ok := value.GetNum(got); !ok || n != 100 {
		t.Error("x should be 100, got", got)
	}

	child := value.NewEnvironment(root)
	if got := child.Get("x"); value.IsErr(got) {
		t.Error("x should resolve through parent chain, got", got)
	}

	if got := child.Get("y"); !value.IsErr(got) {
		t.Error("y should be unbound, got", got)
	} else if e, _ := value.GetErr(got); e.Message != "unbound symbol 'y'" {
		t.Error("unexpected message:", e.Message)
	}

	root.Unbind("x")
	if got := root.Get("x"); !value.IsErr(got) {
		t.Error("x should be unbound after Unbind, got", got)
	}
}

func TestPutReplacesNotAppends(t *testing.T) {
	t.Parallel()
	e := value.NewEnvironment(nil)
	e.Put("x", value.MakeNum(1))
	e.Put("x", value.MakeNum(2))
	if names := e.Names(); len(names) != 1 {
		t.Errorf("expected a single binding, got %v", names)
	}
	if got := e.Get("x"); value.IsErr(got) {
		t.Fatal("x should be bound")
	} else if n, _ := value.GetNum(got); n != 2 {
		t.Errorf("expected replaced value 2, got %v", n)
	}
}

func TestDefGoesToRoot(t *testing.T) {
	t.Parallel()
	root := value.NewEnvironment(nil)
	child := value.NewEnvironment(root)
	grandchild := value.NewEnvironment(child)

	grandchild.Def("g", value.MakeNum(7))

	if got := root.Get("g"); value.IsErr(got) {
		t.Error("Def should bind in the root, not just the local env")
	}
	if names := child.Names(); len(names) != 0 {
		t.Error("Def should not bind in an intermediate environment", names)
	}
}

func TestPutIsLocalOnly(t *testing.T) {
	t.Parallel()
	root := value.NewEnvironment(nil)
	child := value.NewEnvironment(root)
	child.Put("x", value.MakeNum(1))

	if names := root.Names(); len(names) != 0 {
		t.Error("Put should only bind locally, root was affected", names)
	}
}

func TestGetDeepCopies(t *testing.T) {
	t.Parallel()
	e := value.NewEnvironment(nil)
	q := value.MakeQExpr(value.MakeNum(1), value.MakeNum(2))
	e.Put("q", q)

	got := e.Get("q")
	gq, ok := value.GetQExpr(got)
	if !ok {
		t.Fatal("expected a QExpr back")
	}
	gq.Push(value.MakeNum(3))
	if stored := e.Get("q"); stored.String() != "{1 2}" {
		t.Errorf("mutating a Get result must not affect the stored binding, got %v", stored)
	}
}

func TestCopyPreservesParentAsAlias(t *testing.T) {
	t.Parallel()
	root := value.NewEnvironment(nil)
	child := value.NewEnvironment(root)
	child.Put("x", value.MakeNum(1))

	cp := child.Copy()
	if cp.Parent() != root {
		t.Error("Copy must preserve the parent pointer as-is")
	}
	if got := cp.Get("x"); value.IsErr(got) {
		t.Error("Copy must duplicate local bindings")
	}
}
