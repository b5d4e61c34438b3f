package highlight

import (
	"errors"
	"testing"

	"github.com/prismline/hlcore/internal/display"
	"github.com/prismline/hlcore/internal/editorctx"
)

func TestGroupRunsMembersInOrder(t *testing.T) {
	g := NewGroup()
	var order []string
	g.Add("a", func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		order = append(order, "a")
		return nil
	})
	g.Add("b", func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		order = append(order, "b")
		return nil
	})

	fn := g.AsFunc(nil)
	buf := newTestText("x")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("AsFunc returned error: %v", err)
	}
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("order = %v, want [a b]", order)
	}
}

func TestGroupMemberErrorDoesNotAbortOthers(t *testing.T) {
	g := NewGroup()
	ran := false
	g.Add("fails", func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		return errors.New("boom")
	})
	g.Add("after", func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		ran = true
		return nil
	})

	fn := g.AsFunc(nil)
	buf := newTestText("x")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("AsFunc should never propagate a member error, got %v", err)
	}
	if !ran {
		t.Errorf("expected the member after a failing one to still run")
	}
}

func TestGroupGetAndRemove(t *testing.T) {
	g := NewGroup()
	called := func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error { return nil }
	g.Add("x", called)
	if g.Get("x") == nil {
		t.Fatal("expected Get(x) to find the member")
	}
	g.Remove("x")
	if g.Get("x") != nil {
		t.Fatal("expected Get(x) to be nil after Remove")
	}
}

func TestGroupRefResolvesLazily(t *testing.T) {
	registry := NewRegistry()
	g := NewGroup()
	g.AddRef("late", registry)

	ran := false
	fn := g.AsFunc(registry)
	buf := newTestText("x")
	db := oneLineDB(buf)
	ctx := newCtx(buf)

	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("AsFunc returned error before definition: %v", err)
	}
	if ran {
		t.Fatal("ref should not have run before its name was defined")
	}

	registry.Define("late", func(ctx *editorctx.Context, flags Flags, db *display.Buffer) error {
		ran = true
		return nil
	})
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("AsFunc returned error after definition: %v", err)
	}
	if !ran {
		t.Fatal("expected ref to resolve once the name was defined")
	}
}

func TestRegistryResolveMissingIsNilNotError(t *testing.T) {
	r := NewRegistry()
	if fn := r.Resolve("nope"); fn != nil {
		t.Fatal("expected Resolve of an undefined name to return nil")
	}
}

func TestRefWithNilResolutionIsNoop(t *testing.T) {
	r := NewRegistry()
	fn := Ref(r, "nope")
	buf := newTestText("x")
	db := oneLineDB(buf)
	ctx := newCtx(buf)
	if err := fn(ctx, Highlight, db); err != nil {
		t.Fatalf("Ref to an undefined name returned error: %v", err)
	}
}
