package board

import (
	"errors"
	"math/rand"
	"testing"
)

func TestGenerateEachIconTwice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		b, err := Generate(rng, 40, 6, 5)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if b.Width() != 6 || b.Height() != 5 {
			t.Fatalf("size = %dx%d, want 6x5", b.Width(), b.Height())
		}
		counts := make(map[IconID]int)
		cells := b.Cells()
		if len(cells) != 30 {
			t.Fatalf("len(Cells()) = %d, want 30", len(cells))
		}
		for _, c := range cells {
			id := b.IconAt(c)
			if id < 0 || id >= 40 {
				t.Fatalf("icon %d outside pool", id)
			}
			counts[id]++
		}
		if len(counts) != 15 {
			t.Fatalf("distinct icons = %d, want 15", len(counts))
		}
		for id, n := range counts {
			if n != 2 {
				t.Fatalf("icon %d appears %d times", id, n)
			}
		}
	}
}

func TestGenerateExactPool(t *testing.T) {
	b, err := Generate(rand.New(rand.NewSource(7)), 2, 2, 2)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seen := map[IconID]int{}
	for _, c := range b.Cells() {
		seen[b.IconAt(c)]++
	}
	if seen[0] != 2 || seen[1] != 2 {
		t.Errorf("icon counts = %v, want two of 0 and 1", seen)
	}
}

func TestGeneratePoolExhausted(t *testing.T) {
	_, err := Generate(rand.New(rand.NewSource(1)), 14, 6, 5)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("err = %v, want ErrPoolExhausted", err)
	}
}

func TestGenerateOddBoard(t *testing.T) {
	if _, err := Generate(rand.New(rand.NewSource(1)), 10, 3, 3); err == nil {
		t.Fatal("expected error for odd board")
	}
}

func TestGenerateShuffles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, _ := Generate(rng, 15, 6, 5)
	b, _ := Generate(rng, 15, 6, 5)
	if a.Equal(b) {
		t.Error("two consecutive boards are identical")
	}
	if !a.Equal(a) {
		t.Error("board not equal to itself")
	}
}

func TestNew(t *testing.T) {
	b, err := New([][]IconID{{0, 1}, {1, 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := b.IconAt(Cell{X: 1, Y: 0}); got != 1 {
		t.Errorf("IconAt(1,0) = %d, want 1", got)
	}

	bad := [][][]IconID{
		nil,
		{{0, 1}, {1}},
		{{0, 0}, {0, 1}},
	}
	for _, cols := range bad {
		if _, err := New(cols); err == nil {
			t.Errorf("New(%v) succeeded, want error", cols)
		}
	}
}

func TestIconAtPanicsOffBoard(t *testing.T) {
	b, _ := New([][]IconID{{0, 1}, {1, 0}})
	defer func() {
		if recover() == nil {
			t.Error("IconAt off board did not panic")
		}
	}()
	b.IconAt(Cell{X: 2, Y: 0})
}
