package scalaps_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/matthagy/scalaps"
)

// ─────────────────────────────────────────────────────────────────────────────
// Folding & numeric terminals
// ─────────────────────────────────────────────────────────────────────────────

func TestFold(t *testing.T) {
	got, err := scalaps.Fold(scalaps.SeqOf(1, 2, 3), 10, func(acc, n int) int { return acc + n })
	if err != nil || got != 16 {
		t.Fatalf("Fold = %d, %v; want 16, nil", got, err)
	}
}

func TestReduce(t *testing.T) {
	got, err := scalaps.Reduce(scalaps.SeqOf(3, 1, 2), func(a, b int) int { return a * b })
	if err != nil || got != 6 {
		t.Fatalf("Reduce = %d, %v; want 6, nil", got, err)
	}
}

func TestReduceEmpty(t *testing.T) {
	if _, err := scalaps.Reduce(scalaps.NewList[int](), func(a, b int) int { return a + b }); !errors.Is(err, scalaps.ErrEmptyCollection) {
		t.Fatalf("got %v, want ErrEmptyCollection", err)
	}
}

func TestSum(t *testing.T) {
	got, err := scalaps.Sum[float64](scalaps.SeqOf(1.5, 2.5))
	if err != nil || got != 4.0 {
		t.Fatalf("Sum = %v, %v; want 4, nil", got, err)
	}
	zero, err := scalaps.Sum[int](scalaps.NewList[int]())
	if err != nil || zero != 0 {
		t.Fatalf("Sum of empty = %v, %v; want 0, nil", zero, err)
	}
}

func TestMinMax(t *testing.T) {
	if v, err := scalaps.Min[int](scalaps.SeqOf(3, 1, 2)); err != nil || v != 1 {
		t.Fatalf("Min = %v, %v", v, err)
	}
	if v, err := scalaps.Max[int](scalaps.SeqOf(3, 1, 2)); err != nil || v != 3 {
		t.Fatalf("Max = %v, %v", v, err)
	}
	if _, err := scalaps.Min[int](scalaps.NewList[int]()); !errors.Is(err, scalaps.ErrEmptyCollection) {
		t.Fatalf("got %v, want ErrEmptyCollection", err)
	}
}

func TestMkString(t *testing.T) {
	got, err := scalaps.MkString[int](scalaps.SeqOf(1, 2, 3), " .. ")
	if err != nil || got != "1 .. 2 .. 3" {
		t.Fatalf("MkString = %q, %v", got, err)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting & deduplication
// ─────────────────────────────────────────────────────────────────────────────

func TestSort(t *testing.T) {
	l, err := scalaps.Sort[int](scalaps.SeqOf(3, 1, 2))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []int{1, 2, 3})
}

func TestSortByIsStable(t *testing.T) {
	type rec struct {
		k string
		n int
	}
	l, err := scalaps.SortBy(scalaps.NewList(rec{"b", 1}, rec{"a", 1}, rec{"c", 0}), func(r rec) int { return r.n })
	if err != nil {
		t.Fatal(err)
	}
	got := l.All()
	want := []rec{{"c", 0}, {"b", 1}, {"a", 1}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestDistinct(t *testing.T) {
	l, err := scalaps.Distinct[int](scalaps.SeqOf(2, 1, 2, 3, 1))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []int{2, 1, 3})
}

func TestDistinctBy(t *testing.T) {
	l, err := scalaps.DistinctBy(scalaps.SeqOf("apple", "avocado", "banana"), func(s string) byte { return s[0] })
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, l.All(), []string{"apple", "banana"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

func TestGroupBy(t *testing.T) {
	groups, err := scalaps.GroupBy(scalaps.SeqOf(1, 2, 3, 4, 5), func(n int) string {
		if n%2 == 0 {
			return "even"
		}
		return "odd"
	})
	if err != nil {
		t.Fatal(err)
	}
	// group order follows first occurrence, element order is preserved
	assertSlice(t, drain(t, groups.Keys()), []string{"odd", "even"})
	odd, _ := groups.Get("odd")
	assertSlice(t, odd.All(), []int{1, 3, 5})
	even, _ := groups.Get("even")
	assertSlice(t, even.All(), []int{2, 4})
}

func TestGroupSizesSumToInput(t *testing.T) {
	input := []int{5, 3, 8, 1, 9, 2, 7, 4}
	groups, err := scalaps.GroupBy(scalaps.SeqFrom(input), func(n int) int { return n % 3 })
	if err != nil {
		t.Fatal(err)
	}
	sizes := scalaps.MapValues(groups, (*scalaps.List[int]).Len)
	total, err := scalaps.Sum[int](sizes.Values())
	if err != nil || total != len(input) {
		t.Fatalf("group sizes sum to %d, want %d (%v)", total, len(input), err)
	}
}

func TestGroupByRecords(t *testing.T) {
	lines := scalaps.SeqOf("ab,alice,hi,1", "ab,bob,yo,2")
	records := scalaps.Map(lines, func(s string) []string { return strings.Split(s, ",") })
	groups, err := scalaps.GroupBy(records, func(r []string) string { return r[0] })
	if err != nil {
		t.Fatal(err)
	}
	if groups.Len() != 1 {
		t.Fatalf("groups = %d, want 1", groups.Len())
	}
	g, _ := groups.Get("ab")
	if g.Len() != 2 {
		t.Fatalf("group size = %d, want 2", g.Len())
	}
}

func TestKeyBy(t *testing.T) {
	d, err := scalaps.KeyBy(scalaps.SeqOf("a", "bb", "ccc"), func(s string) int { return len(s) })
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Get(2); v != "bb" {
		t.Fatalf("Get(2) = %q", v)
	}
}

func TestKeyByDuplicate(t *testing.T) {
	d, err := scalaps.KeyBy(scalaps.SeqOf("aa", "bb"), func(s string) int { return len(s) })
	if !errors.Is(err, scalaps.ErrDuplicateKey) {
		t.Fatalf("got %v, want ErrDuplicateKey", err)
	}
	if !strings.Contains(err.Error(), "2") {
		t.Fatalf("error should name the key: %v", err)
	}
	if d != nil {
		t.Fatal("no partial dict should be returned")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregation
// ─────────────────────────────────────────────────────────────────────────────

func TestAggregateBy(t *testing.T) {
	creates := 0
	d, err := scalaps.AggregateBy(scalaps.SeqOf(1, 2, 3, 4, 5),
		func(n int) bool { return n%2 == 0 },
		func() []int { creates++; return nil },
		func(acc []int, n int) []int { return append(acc, n) },
	)
	if err != nil {
		t.Fatal(err)
	}
	if creates != 2 {
		t.Fatalf("create ran %d times, want once per key", creates)
	}
	odds, _ := d.Get(false)
	assertSlice(t, odds, []int{1, 3, 5})
	evens, _ := d.Get(true)
	assertSlice(t, evens, []int{2, 4})
}

func TestAggregateByKeysByComputedKey(t *testing.T) {
	// distinct elements sharing a key must land in one aggregate
	d, err := scalaps.AggregateBy(scalaps.SeqOf("ant", "ape", "bee"),
		func(s string) byte { return s[0] },
		func() int { return 0 },
		func(n int, _ string) int { return n + 1 },
	)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := d.Get('a'); n != 2 {
		t.Fatalf("aggregate for 'a' = %d, want 2", n)
	}
}

func TestFoldBy(t *testing.T) {
	d, err := scalaps.FoldBy(scalaps.SeqOf(1, 2, 3, 4),
		func(n int) bool { return n%2 == 0 },
		100,
		func(acc, n int) int { return acc + n },
	)
	if err != nil {
		t.Fatal(err)
	}
	if odd, _ := d.Get(false); odd != 104 {
		t.Fatalf("fold for odds = %d, want 104", odd)
	}
	if even, _ := d.Get(true); even != 106 {
		t.Fatalf("fold for evens = %d, want 106", even)
	}
}

func TestReduceBy(t *testing.T) {
	type kv struct {
		k string
		v int
	}
	calls := 0
	d, err := scalaps.ReduceBy(scalaps.SeqOf(kv{"a", 1}, kv{"a", 2}, kv{"b", 5}),
		func(p kv) string { return p.k },
		func(a, b kv) kv { calls++; a.v += b.v; return a },
	)
	if err != nil {
		t.Fatal(err)
	}
	if a, _ := d.Get("a"); a.v != 3 {
		t.Fatalf("reduce for a = %+v, want 3", a)
	}
	if b, _ := d.Get("b"); b.v != 5 {
		t.Fatalf("reduce for b = %+v, want 5", b)
	}
	// b is a single-element group, so the reducer ran only for a
	if calls != 1 {
		t.Fatalf("reducer ran %d times, want 1", calls)
	}
}

func TestValueCounts(t *testing.T) {
	counts, err := scalaps.ValueCounts[int](scalaps.SeqOf(1, 1, 2, 3, 3, 3))
	if err != nil {
		t.Fatal(err)
	}
	assertSlice(t, drain(t, counts.Keys()), []int{1, 2, 3})
	assertSlice(t, drain(t, counts.Values()), []int{2, 1, 3})
}

// ─────────────────────────────────────────────────────────────────────────────
// Conversion & pairing
// ─────────────────────────────────────────────────────────────────────────────

func TestToDict(t *testing.T) {
	d, err := scalaps.ToDict[string, int](scalaps.SeqOf(
		scalaps.KV("a", 1), scalaps.KV("b", 2), scalaps.KV("a", 3),
	))
	if err != nil {
		t.Fatal(err)
	}
	// last value wins, first position kept
	assertSlice(t, drain(t, d.Keys()), []string{"a", "b"})
	if v, _ := d.Get("a"); v != 3 {
		t.Fatalf("Get(a) = %d, want 3", v)
	}
}

func TestEnumerate(t *testing.T) {
	got := drain(t, scalaps.Enumerate[string](scalaps.SeqOf("x", "y")))
	want := []scalaps.Pair[int, string]{{First: 0, Second: "x"}, {First: 1, Second: "y"}}
	assertSlice(t, got, want)
}

func TestZip(t *testing.T) {
	got := drain(t, scalaps.Zip(scalaps.SeqOf("a", "b", "c"), scalaps.NewList(1, 2)))
	want := []scalaps.Pair[string, int]{{First: "a", Second: 1}, {First: "b", Second: 2}}
	assertSlice(t, got, want)
}

func TestChainMany(t *testing.T) {
	got := drain(t, scalaps.Chain[int](scalaps.SeqOf(1), scalaps.NewList(2), scalaps.NewFrozenList(3)))
	assertSlice(t, got, []int{1, 2, 3})
}

func TestCountFunc(t *testing.T) {
	n, err := scalaps.Count[int](scalaps.NewList(1, 2, 3))
	if err != nil || n != 3 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}
