package reflist

import (
	"testing"

	"github.com/wippyai/reflist/errors"
)

func TestNewHandle(t *testing.T) {
	h := NewHandle(NewEntry("v", 3))

	if idx, ok := h.Order(); !ok || idx != 3 {
		t.Errorf("expected order (3, true), got (%d, %v)", idx, ok)
	}
	r := h.Read()
	if r.Value() != "v" {
		t.Errorf("expected %q, got %q", "v", r.Value())
	}
	r.Release()
	if h.LinkCount() != 0 {
		t.Errorf("fresh handle should have link count 0, got %d", h.LinkCount())
	}
}

func TestClone_Aliasing(t *testing.T) {
	h := NewHandle(NewEntry(1, 0))
	clone := h.Clone()

	w := clone.Write()
	w.Set(99)
	w.Release()

	r := h.Read()
	if r.Value() != 99 {
		t.Errorf("mutation through clone not visible: got %d", r.Value())
	}
	r.Release()
}

func TestLinkCount(t *testing.T) {
	list := New[int]()
	h := list.Push(5)

	// One caller clone beyond the list's retained one.
	if h.LinkCount() != 1 {
		t.Fatalf("expected link count 1 after push, got %d", h.LinkCount())
	}

	clone := h.Clone()
	if h.LinkCount() != 2 {
		t.Errorf("expected link count 2 after clone, got %d", h.LinkCount())
	}

	clone.Release()
	if h.LinkCount() != 1 {
		t.Errorf("expected link count back to 1 after release, got %d", h.LinkCount())
	}
}

func TestLinkCount_AfterDelete(t *testing.T) {
	list := New[int]()
	h := list.Push(5)

	list.DeleteOne(0)

	// The list dropped its retained clone with the deletion.
	if h.LinkCount() != 0 {
		t.Errorf("expected link count 0 after delete, got %d", h.LinkCount())
	}
}

func TestRelease_ClearsValue(t *testing.T) {
	h := NewHandle(NewEntry("big", 0))
	clone := h.Clone()
	clone.Release()

	r := h.Read()
	if r.Value() != "big" {
		t.Errorf("value cleared too early: %q", r.Value())
	}
	r.Release()

	h.Release()
	mustFault(t, errors.KindReleased, func() { h.Release() })
}

func TestGuards_SharedReads(t *testing.T) {
	h := NewHandle(NewEntry(1, 0))

	r1 := h.Read()
	r2 := h.Read()
	if r1.Value() != 1 || r2.Value() != 1 {
		t.Error("concurrent shared guards should both read")
	}
	r1.Release()
	r2.Release()

	// All guards gone, write is allowed again.
	w := h.Write()
	w.Set(2)
	w.Release()
}

func TestGuards_AliasFaults(t *testing.T) {
	t.Run("write during read", func(t *testing.T) {
		h := NewHandle(NewEntry(1, 0))
		r := h.Read()
		defer r.Release()
		mustFault(t, errors.KindAliasViolation, func() { h.Write() })
	})

	t.Run("write during write", func(t *testing.T) {
		h := NewHandle(NewEntry(1, 0))
		w := h.Write()
		defer w.Release()
		mustFault(t, errors.KindAliasViolation, func() { h.Write() })
	})

	t.Run("read during write", func(t *testing.T) {
		h := NewHandle(NewEntry(1, 0))
		w := h.Write()
		defer w.Release()
		mustFault(t, errors.KindAliasViolation, func() { h.Read() })
	})

	t.Run("order during write", func(t *testing.T) {
		h := NewHandle(NewEntry(1, 0))
		w := h.Write()
		defer w.Release()
		mustFault(t, errors.KindAliasViolation, func() { h.Order() })
	})

	t.Run("fault through other clone", func(t *testing.T) {
		h := NewHandle(NewEntry(1, 0))
		clone := h.Clone()
		w := h.Write()
		defer w.Release()
		mustFault(t, errors.KindAliasViolation, func() { clone.Write() })
	})
}

func TestTryWrite(t *testing.T) {
	h := NewHandle(NewEntry(1, 0))

	w, err := h.TryWrite()
	if err != nil {
		t.Fatalf("TryWrite on free entry failed: %v", err)
	}

	_, err = h.TryWrite()
	if err == nil {
		t.Fatal("second TryWrite should fail")
	}
	if err.Kind != errors.KindAliasViolation {
		t.Errorf("expected alias_violation, got %s", err.Kind)
	}

	w.Release()

	w2, err := h.TryWrite()
	if err != nil {
		t.Fatalf("TryWrite after release failed: %v", err)
	}
	w2.Release()
}

func TestTryRead(t *testing.T) {
	h := NewHandle(NewEntry(1, 0))

	w := h.Write()
	_, err := h.TryRead()
	if err == nil {
		t.Fatal("TryRead during write should fail")
	}
	w.Release()

	r, err := h.TryRead()
	if err != nil {
		t.Fatalf("TryRead on free entry failed: %v", err)
	}
	r.Release()
}

func TestGuard_DoubleRelease(t *testing.T) {
	h := NewHandle(NewEntry(1, 0))

	r := h.Read()
	r.Release()
	mustFault(t, errors.KindReleased, func() { r.Release() })

	w := h.Write()
	w.Release()
	mustFault(t, errors.KindReleased, func() { w.Release() })
}

func TestWrite_ValueOnly(t *testing.T) {
	// Writing the value never changes the origin.
	h := NewHandle(NewEntry(10, 4))
	w := h.Write()
	w.Set(20)
	if idx, ok := w.Order(); !ok || idx != 4 {
		t.Errorf("Set changed origin: (%d, %v)", idx, ok)
	}
	w.Release()
}
