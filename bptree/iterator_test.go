package bptree

import "testing"

func TestIteratorNextPrevSymmetry(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, i)
	}

	it := tree.Begin()
	for i := 0; i < 9; i++ {
		it.Next()
	}
	if it.Key() != 9 {
		t.Fatalf("after 9 Next calls, Key() = %d, want 9", it.Key())
	}
	for i := 9; i > 0; i-- {
		it.Prev()
		if it.Key() != i-1 {
			t.Fatalf("Prev() landed on %d, want %d", it.Key(), i-1)
		}
	}
}

func TestIteratorPrevFromEnd(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 5; i++ {
		tree.Insert(i, i)
	}
	it := tree.End()
	it.Prev()
	if !it.Valid() || it.Key() != 4 {
		t.Errorf("Prev() from end should land on the last entry, got valid=%v", it.Valid())
	}
}

func TestIteratorBackward(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 10; i++ {
		tree.Insert(i, i)
	}
	want := 9
	for k := range tree.Backward() {
		if k != want {
			t.Errorf("Backward() yielded %d, want %d", k, want)
		}
		want--
	}
	if want != -1 {
		t.Errorf("Backward() stopped early, want was %d", want)
	}
}

func TestIteratorInvalidatedByInsertSplit(t *testing.T) {
	tree := New[int, int](WithOrder[int, int](4))
	for i := 0; i < 3; i++ {
		tree.Insert(i, i)
	}
	it := tree.Find(1)

	for i := 3; i < 20; i++ {
		tree.Insert(i, i)
	}

	defer func() {
		r := recover()
		if r != ErrIteratorInvalidated {
			t.Errorf("recovered %v, want ErrIteratorInvalidated", r)
		}
	}()
	it.Next()
	t.Fatal("Next() should have panicked after a structural mutation invalidated the iterator")
}

func TestIteratorInvalidatedByErase(t *testing.T) {
	tree := New[int, int](WithOrder[int, int](4))
	for i := 0; i < 20; i++ {
		tree.Insert(i, i)
	}
	it := tree.Find(19)

	tree.EraseKey(0)

	defer func() {
		r := recover()
		if r != ErrIteratorInvalidated {
			t.Errorf("recovered %v, want ErrIteratorInvalidated", r)
		}
	}()
	it.Value()
	t.Fatal("Value() should have panicked after an erase invalidated the iterator")
}

func TestIteratorNotInvalidatedBySetValue(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(1, 1)
	tree.Insert(2, 2)

	a := tree.Find(1)
	b := tree.Find(2)
	b.SetValue(22)

	if a.Value() != 1 {
		t.Errorf("SetValue on b should not disturb a, a.Value() = %d", a.Value())
	}
	if v, _ := tree.At(2); v != 22 {
		t.Errorf("At(2) = %d, want 22", v)
	}
}

func TestIteratorEqual(t *testing.T) {
	tree := New[int, int]()
	for i := 0; i < 5; i++ {
		tree.Insert(i, i)
	}
	a := tree.Find(3)
	b := tree.LowerBound(3)
	if !a.Equal(b) {
		t.Error("Find(3) and LowerBound(3) should be equal")
	}
	if !tree.End().Equal(tree.End()) {
		t.Error("two End() iterators should be equal")
	}
}
