package lzrom

import "testing"

// triple lays out DirectCopy a, x, DirectCopy b back to back.
func triple(a int, kind Kind, x, b int) []Command {
	return []Command{
		{Kind: DirectCopy, Index: 0, Length: a},
		{Kind: kind, Index: a, Length: x},
		{Kind: DirectCopy, Index: a + x, Length: b},
	}
}

func TestOptimizeThresholds(t *testing.T) {
	tests := []struct {
		a    int
		kind Kind
		x, b int
		want bool
	}{
		{2, RepeatedByte, 3, 2, true},
		{2, RepeatedByte, 4, 2, false},
		{2, IncrementingByte, 3, 2, true},
		{2, RepeatedWord, 4, 2, true},
		{2, RepeatedWord, 5, 2, false},
		{2, CopySection, 4, 2, true},
		{2, CopySection, 5, 2, false},

		// Both sides short, but the merged run needs a long header.
		{16, RepeatedByte, 3, 16, false},
		{16, IncrementingByte, 2, 16, true},
		{16, RepeatedWord, 4, 16, false},
		{16, CopySection, 3, 16, true},
		{0x10, RepeatedByte, 3, 0x0D, true},

		// Both sides long.
		{0x21, RepeatedByte, 4, 0x21, true},
		{0x21, RepeatedByte, 5, 0x21, false},
		{0x21, CopySection, 5, 0x21, true},
		{0x21, CopySection, 6, 0x21, false},

		// One side long.
		{0x21, RepeatedByte, 3, 2, true},
		{0x21, RepeatedByte, 4, 2, false},
		{2, RepeatedWord, 4, 0x21, true},
		{2, RepeatedWord, 5, 0x21, false},
	}

	for _, tt := range tests {
		cmds := Optimize(triple(tt.a, tt.kind, tt.x, tt.b))
		merged := len(cmds) == 1
		if merged != tt.want {
			t.Errorf("a=%d %v x=%d b=%d: merged=%v, want %v", tt.a, tt.kind, tt.x, tt.b, merged, tt.want)
			continue
		}
		if merged && (cmds[0].Kind != DirectCopy || cmds[0].Index != 0 || cmds[0].Length != tt.a+tt.x+tt.b) {
			t.Errorf("a=%d %v x=%d b=%d: got %v", tt.a, tt.kind, tt.x, tt.b, cmds[0])
		}
	}
}

// A merge must happen exactly when it doesn't make the output larger.
func TestOptimizeNeverGrows(t *testing.T) {
	kinds := []Kind{RepeatedByte, RepeatedWord, IncrementingByte, CopySection}
	for a := 1; a <= 40; a++ {
		for b := 1; b <= 40; b++ {
			for _, k := range kinds {
				for x := 1; x <= 8; x++ {
					in := triple(a, k, x, b)
					separate := EncodedLen(in)
					merged := EncodedLen([]Command{{Kind: DirectCopy, Length: a + x + b}})
					got := len(Optimize(in)) == 1
					if want := merged <= separate; got != want {
						t.Fatalf("a=%d %v x=%d b=%d: merged=%v, sizes %d vs %d", a, k, x, b, got, merged, separate)
					}
				}
			}
		}
	}
}

func TestOptimizeChains(t *testing.T) {
	cmds := []Command{
		{Kind: DirectCopy, Index: 0, Length: 2},
		{Kind: RepeatedByte, Index: 2, Length: 3},
		{Kind: DirectCopy, Index: 5, Length: 2},
		{Kind: IncrementingByte, Index: 7, Length: 3},
		{Kind: DirectCopy, Index: 10, Length: 2},
		{Kind: RepeatedByte, Index: 12, Length: 9},
	}
	got := Optimize(cmds)
	want := []Command{
		{Kind: DirectCopy, Index: 0, Length: 12},
		{Kind: RepeatedByte, Index: 12, Length: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOptimizeLeavesOtherShapes(t *testing.T) {
	cmds := []Command{
		{Kind: RepeatedByte, Index: 0, Length: 3},
		{Kind: DirectCopy, Index: 3, Length: 1},
		{Kind: RepeatedByte, Index: 4, Length: 3},
		{Kind: RepeatedWord, Index: 7, Length: 4},
		{Kind: DirectCopy, Index: 11, Length: 1},
	}
	got := Optimize(append([]Command(nil), cmds...))
	if len(got) != len(cmds) {
		t.Fatalf("got %v, want unchanged", got)
	}
	if got := Optimize(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
