package arena

import "testing"

func TestArenaIDsAreOneBasedAndStable(t *testing.T) {
	a := New[string](0)
	first := a.Alloc("first")
	second := a.Alloc("second")

	if first != 1 || second != 2 {
		t.Fatalf("Alloc IDs = %d, %d; want 1-based sequential handles", first, second)
	}
	if *a.Get(first) != "first" || *a.Get(second) != "second" {
		t.Fatalf("Get returned wrong values")
	}
	if a.Valid(0) {
		t.Fatalf("the zero ID must never be valid")
	}
	if !a.Valid(second) || a.Valid(ID(3)) {
		t.Fatalf("Valid should track the allocated range exactly")
	}
	if a.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", a.Len())
	}
}

func TestArenaGetZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Get(0) should panic")
		}
	}()
	New[int](0).Get(0)
}

// §4.D invariant: nothing published into the tree references pool-owned
// memory, so reusing the pool buffer cannot corrupt earlier results.
func TestPublishedCopiesOutOfPool(t *testing.T) {
	p := NewPool[int]()

	buf := p.Get()
	buf = append(buf, 1, 2, 3)
	published := Published(p, buf)

	reused := p.Get()
	reused = append(reused, 9, 9, 9)

	if len(published) != 3 || published[0] != 1 || published[2] != 3 {
		t.Fatalf("published = %v, want the original contents", published)
	}
	p.Put(reused)
}

func TestPublishedEmptyReturnsNil(t *testing.T) {
	p := NewPool[int]()
	if got := Published(p, p.Get()); got != nil {
		t.Fatalf("publishing an empty buffer should yield nil, got %v", got)
	}
}
