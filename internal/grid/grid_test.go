package grid

import (
	"errors"
	"strings"
	"testing"
)

const (
	easyPuzzle   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	easySolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{
			name:  "too short",
			input: "123",
			want:  ErrWrongLength,
		},
		{
			name:  "too long",
			input: easyPuzzle + ".",
			want:  ErrWrongLength,
		},
		{
			name:  "invalid character",
			input: "x" + strings.Repeat(".", 80),
			want:  ErrInvalidCharacter,
		},
		{
			name:  "duplicate in row",
			input: "11" + strings.Repeat(".", 79),
			want:  ErrContradiction,
		},
		{
			name:  "duplicate in column",
			input: "1" + strings.Repeat(".", 8) + "1" + strings.Repeat(".", 71),
			want:  ErrContradiction,
		},
		{
			name:  "duplicate in box",
			input: "1" + strings.Repeat(".", 9) + "1" + strings.Repeat(".", 70),
			want:  ErrContradiction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	g, err := Parse(easySolution)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if g.EmptyCount() != 0 {
		t.Errorf("EmptyCount() = %d, want 0", g.EmptyCount())
	}
	if got := g.String(); got != easySolution {
		t.Errorf("String() = %q, want %q", got, easySolution)
	}
}

func TestParseBlankMarkers(t *testing.T) {
	// '0' and '.' are interchangeable blank markers; String always uses '.'.
	zeros := strings.ReplaceAll(easyPuzzle, ".", "0")
	g, err := Parse(zeros)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := g.String(); got != easyPuzzle {
		t.Errorf("String() = %q, want %q", got, easyPuzzle)
	}
}

func TestParsePreservesClues(t *testing.T) {
	g, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for pos := 0; pos < CellCount; pos++ {
		ch := easyPuzzle[pos]
		want := Empty
		if ch != '.' {
			want = int(ch - '0')
		}
		if got := g.Get(pos); got != want {
			t.Errorf("Get(%d) = %d, want %d", pos, got, want)
		}
	}
}

func TestSetAndClear(t *testing.T) {
	g := New()

	if err := g.Set(0, 5); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := g.Get(0); got != 5 {
		t.Errorf("Get(0) = %d, want 5", got)
	}
	if got := g.EmptyCount(); got != CellCount-1 {
		t.Errorf("EmptyCount() = %d, want %d", got, CellCount-1)
	}

	if err := g.Clear(0); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if got := g.Get(0); got != Empty {
		t.Errorf("Get(0) after Clear = %d, want Empty", got)
	}
	if got := g.EmptyCount(); got != CellCount {
		t.Errorf("EmptyCount() = %d, want %d", got, CellCount)
	}
}

func TestSetRejectsPeerDuplicates(t *testing.T) {
	tests := []struct {
		name string
		pos  int
	}{
		{name: "same row", pos: 5},
		{name: "same column", pos: 18},
		{name: "same box", pos: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			if err := g.Set(0, 7); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			if err := g.Set(tt.pos, 7); !errors.Is(err, ErrIllegalMove) {
				t.Errorf("Set() error = %v, want %v", err, ErrIllegalMove)
			}
		})
	}
}

func TestSetBounds(t *testing.T) {
	g := New()
	if err := g.Set(-1, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Set(-1, 5) error = %v, want %v", err, ErrInvalidPosition)
	}
	if err := g.Set(CellCount, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Set(81, 5) error = %v, want %v", err, ErrInvalidPosition)
	}
	if err := g.Set(0, 10); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(0, 10) error = %v, want %v", err, ErrInvalidValue)
	}
}

func TestCandidatesExcludeFixedPeers(t *testing.T) {
	g, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	for pos := 0; pos < CellCount; pos++ {
		if g.Get(pos) != Empty {
			continue
		}
		mask := g.CandidatesMask(pos)
		for _, peer := range Peers(pos) {
			val := g.Get(peer)
			if val == Empty {
				continue
			}
			if mask&(1<<(val-1)) != 0 {
				t.Fatalf("cell %d still has candidate %d fixed at peer %d", pos, val, peer)
			}
		}
	}
}

func TestCandidatesAscending(t *testing.T) {
	g := New()
	got := g.Candidates(40)
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Candidates() = %v, want %v", got, want)
		}
	}
}

func TestPeers(t *testing.T) {
	for pos := 0; pos < CellCount; pos++ {
		peerSet := Peers(pos)
		if len(peerSet) != PeerCount {
			t.Fatalf("Peers(%d) has %d entries, want %d", pos, len(peerSet), PeerCount)
		}

		seen := map[int]bool{}
		for _, peer := range peerSet {
			if peer == pos {
				t.Fatalf("Peers(%d) contains the cell itself", pos)
			}
			if seen[peer] {
				t.Fatalf("Peers(%d) contains %d twice", pos, peer)
			}
			seen[peer] = true

			sameRow := posToRow[pos] == posToRow[peer]
			sameCol := posToCol[pos] == posToCol[peer]
			sameBox := posToBox[pos] == posToBox[peer]
			if !sameRow && !sameCol && !sameBox {
				t.Fatalf("Peers(%d) contains unrelated cell %d", pos, peer)
			}
		}
	}
}

func TestMakePos(t *testing.T) {
	if got := MakePos(4, 7); got != 43 {
		t.Errorf("MakePos(4, 7) = %d, want 43", got)
	}
	if got := MakePos(9, 0); got != InvalidCell {
		t.Errorf("MakePos(9, 0) = %d, want InvalidCell", got)
	}
	if got := MakePos(0, -1); got != InvalidCell {
		t.Errorf("MakePos(0, -1) = %d, want InvalidCell", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	clone := g.Clone()
	clone.SetForce(2, 4)

	if g.Get(2) != Empty {
		t.Error("mutating a clone changed the original")
	}
	if clone.Get(2) != 4 {
		t.Error("clone did not record the mutation")
	}
}

func TestIsValid(t *testing.T) {
	g, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !g.IsValid() {
		t.Error("IsValid() = false for a well-formed puzzle")
	}

	// SetForce skips rule checks, so it can build an invalid grid.
	g.SetForce(2, 5)
	if g.IsValid() {
		t.Error("IsValid() = true after forcing a duplicate into row 0")
	}
}

func TestIsSolved(t *testing.T) {
	g, err := Parse(easySolution)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !g.IsSolved() {
		t.Error("IsSolved() = false for a complete valid grid")
	}

	p, err := Parse(easyPuzzle)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if p.IsSolved() {
		t.Error("IsSolved() = true for a grid with open cells")
	}
}

func TestFormat(t *testing.T) {
	g, err := Parse(easySolution)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	out := g.Format()
	if !strings.Contains(out, "| 5 3 4 | 6 7 8 | 9 1 2 |") {
		t.Errorf("Format() missing first row, got:\n%s", out)
	}
	if got := strings.Count(out, "+-------+-------+-------+"); got != 4 {
		t.Errorf("Format() has %d separator lines, want 4", got)
	}
}
