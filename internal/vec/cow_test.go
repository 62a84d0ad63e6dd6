package vec

import "testing"

// Cow copy-on-write tests

func TestCowBorrowedReadIsLive(t *testing.T) {
	src := []float64{1, 2, 3}
	c := CowBorrow(src)

	src[0] = 7
	if c.Read()[0] != 7 {
		t.Error("borrowed Cow should read the live referent")
	}
	if !c.IsBorrowed() {
		t.Error("reads must not force ownership")
	}
}

func TestCowMutateUpgradesOnce(t *testing.T) {
	src := []float64{1, 2, 3}
	c := CowBorrow(src)

	c.Mutate(func(data []float64) {
		data[0] = 10
	})

	if !c.IsOwned() {
		t.Error("first Mutate should upgrade to Owned")
	}
	if src[0] != 1 {
		t.Errorf("external referent mutated: %v", src)
	}
	if c.Read()[0] != 10 || c.Read()[1] != 2 {
		t.Errorf("Read() = %v, want [10 2 3]", c.Read())
	}

	// The second Mutate must find the storage already Owned: same buffer,
	// no further copy.
	first := &c.Read()[0]
	c.Mutate(func(data []float64) {
		data[1] = 20
	})
	if &c.Read()[0] != first {
		t.Error("second Mutate copied again; copy-on-write must fire at most once")
	}
	if c.Read()[1] != 20 {
		t.Errorf("Read() = %v, want [10 20 3]", c.Read())
	}
}

func TestCowSnapshotAtMutationTime(t *testing.T) {
	src := []float64{1, 2, 3}
	c := CowBorrow(src)

	// Referent changes before the first mutation are part of the snapshot.
	src[2] = 30
	c.Mutate(func(data []float64) {
		data[0] = 0
	})

	if c.Read()[2] != 30 {
		t.Errorf("Read() = %v, want snapshot taken at mutation time", c.Read())
	}

	// Referent changes after the upgrade are invisible.
	src[1] = 99
	if c.Read()[1] != 2 {
		t.Error("owned Cow should be detached from the referent")
	}
}

func TestCowOwnedMutatesInPlace(t *testing.T) {
	c := CowOf([]float64{1, 2})
	first := &c.Read()[0]

	c.Mutate(func(data []float64) {
		data[0] = 5
	})

	if &c.Read()[0] != first {
		t.Error("Mutate on owned storage should not copy")
	}
}

func TestCowToOwned(t *testing.T) {
	src := []float32{1, 2}
	c := CowBorrow(src)

	c.ToOwned()
	if !c.IsOwned() {
		t.Error("ToOwned should force ownership")
	}

	src[0] = 9
	if c.Read()[0] != 1 {
		t.Error("ToOwned should detach from the referent")
	}
}

func TestCowEqualAcrossVariants(t *testing.T) {
	src := []float64{1, 2, 3}
	borrowed := CowBorrow(src)
	owned := CowOf([]float64{1, 2, 3})

	if !borrowed.Equal(owned) {
		t.Error("Equal should compare by value, independent of variant")
	}
	if borrowed.String() != owned.String() {
		t.Errorf("String() differs across variants: %q vs %q", borrowed, owned)
	}

	owned.Mutate(func(data []float64) { data[0] = 0 })
	if borrowed.Equal(owned) {
		t.Error("Equal should observe mutated values")
	}
}

func TestNewCowMoves(t *testing.T) {
	src := []float64{1, 2, 3}
	c := NewCow(Borrow(src))

	// Wrapping by move keeps the variant and the referent.
	if c.IsOwned() {
		t.Error("NewCow should preserve the Borrowed variant")
	}
	src[0] = 4
	if c.Read()[0] != 4 {
		t.Error("NewCow should not copy the storage")
	}
}
