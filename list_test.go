package scalaps_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/matthagy/scalaps"
)

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

func TestListTraversalIsIdempotent(t *testing.T) {
	l := scalaps.NewList(1, 2, 3)
	for range 2 {
		var got []int
		l.ForEach(func(n int) { got = append(got, n) })
		assertSlice(t, got, []int{1, 2, 3})
	}
}

func TestListFromCopies(t *testing.T) {
	src := []int{1, 2, 3}
	l := scalaps.ListFrom(src)
	src[0] = 99
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestListAppend(t *testing.T) {
	l := scalaps.NewList(1)
	l.Append(2)
	l.Append(3, 4)
	if l.Len() != 4 {
		t.Fatalf("Len = %d, want 4", l.Len())
	}
	assertSlice(t, l.All(), []int{1, 2, 3, 4})
}

func TestListGet(t *testing.T) {
	l := scalaps.NewList(10, 20)
	if v, ok := l.Get(1); !ok || v != 20 {
		t.Fatalf("Get(1) = %v, %v; want 20, true", v, ok)
	}
	if _, ok := l.Get(2); ok {
		t.Fatal("Get out of range should return false")
	}
	if _, ok := l.Get(-1); ok {
		t.Fatal("Get negative index should return false")
	}
}

func TestListFirstLast(t *testing.T) {
	l := scalaps.NewList(1, 2, 3, 4)
	if v, ok := l.First(); !ok || v != 1 {
		t.Fatalf("First = %v, %v", v, ok)
	}
	if v, ok := l.Last(); !ok || v != 4 {
		t.Fatalf("Last = %v, %v", v, ok)
	}
	even := func(n int) bool { return n%2 == 0 }
	if v, ok := l.First(even); !ok || v != 2 {
		t.Fatalf("First(even) = %v, %v", v, ok)
	}
	if v, ok := l.Last(even); !ok || v != 4 {
		t.Fatalf("Last(even) = %v, %v", v, ok)
	}
	if _, ok := scalaps.NewList[int]().First(); ok {
		t.Fatal("First on empty list should return false")
	}
}

func TestListCombinatorsYieldIndependentSeqs(t *testing.T) {
	l := scalaps.NewList(1, 2, 3, 4)
	odd := func(n int) bool { return n%2 == 1 }
	assertSlice(t, drain(t, l.Filter(odd)), []int{1, 3})
	assertSlice(t, drain(t, l.Filter(odd)), []int{1, 3})

	// but each derived Seq is itself single-pass
	s := l.Filter(odd)
	drain(t, s)
	if _, err := s.ToList(); !errors.Is(err, scalaps.ErrAlreadyConsumed) {
		t.Fatalf("got %v, want ErrAlreadyConsumed", err)
	}
}

func TestListReverseIsLazyView(t *testing.T) {
	l := scalaps.NewList(1, 2, 3)
	r := l.Reverse()
	assertSlice(t, drain(t, r), []int{3, 2, 1})
	// the list itself is untouched and still traversable
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestListToFrozenList(t *testing.T) {
	l := scalaps.NewList(1, 2)
	fl := l.ToFrozenList()
	l.Append(3)
	assertSlice(t, fl.All(), []int{1, 2})
}

func TestListToListReturnsReceiver(t *testing.T) {
	l := scalaps.NewList(1)
	if l.ToList() != l {
		t.Fatal("ToList on a List should return the receiver")
	}
}

func TestListString(t *testing.T) {
	if got := scalaps.NewList(1, 2, 3).String(); got != "List([1 2 3])" {
		t.Fatalf("String = %q", got)
	}
}

func TestListToJSON(t *testing.T) {
	b, err := scalaps.NewList(1, 2, 3).ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	var got []int
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	assertSlice(t, got, []int{1, 2, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// FrozenList
// ─────────────────────────────────────────────────────────────────────────────

func TestFrozenListIsIsolated(t *testing.T) {
	src := []int{1, 2}
	fl := scalaps.FrozenListFrom(src)
	src[0] = 99
	assertSlice(t, fl.All(), []int{1, 2})

	out := fl.All()
	out[0] = 99
	assertSlice(t, fl.All(), []int{1, 2})
}

func TestFrozenListTraversalIsIdempotent(t *testing.T) {
	fl := scalaps.NewFrozenList("a", "b")
	assertSlice(t, drain(t, fl.Take(5)), []string{"a", "b"})
	assertSlice(t, drain(t, fl.Take(5)), []string{"a", "b"})
}

func TestFrozenListToList(t *testing.T) {
	fl := scalaps.NewFrozenList(1, 2)
	l := fl.ToList()
	l.Append(3)
	assertSlice(t, fl.All(), []int{1, 2})
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestFrozenListToFrozenListReturnsReceiver(t *testing.T) {
	fl := scalaps.NewFrozenList(1)
	if fl.ToFrozenList() != fl {
		t.Fatal("ToFrozenList on a FrozenList should return the receiver")
	}
}

func TestFrozenListString(t *testing.T) {
	if got := scalaps.NewFrozenList("a", "b").String(); got != "FrozenList([a b])" {
		t.Fatalf("String = %q", got)
	}
}
