package commit

import (
	"bytes"
	"testing"

	"github.com/DongLeiGryphonSecure/picnic3/mlog"
)

func mkbuf(n int, b byte) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = b
	}
	return out
}

func TestPartyCommitDiffersWithAux(t *testing.T) {
	seed := mkbuf(16, 1)
	salt := mkbuf(32, 2)
	withAux := Party(32, seed, mkbuf(16, 3), salt, 0, 15)
	withoutAux := Party(32, seed, nil, salt, 0, 15)
	if bytes.Equal(withAux, withoutAux) {
		t.Fatal("expected aux binding to change the digest")
	}
}

func TestPartyBatch4MatchesSingleLane(t *testing.T) {
	var seeds [4][]byte
	for i := range seeds {
		seeds[i] = mkbuf(16, byte(i+1))
	}
	salt := mkbuf(32, 9)
	batched := PartyBatch4(32, seeds, salt, 3, 4)
	for i := 0; i < 4; i++ {
		single := Party(32, seeds[i], nil, salt, 3, uint16(4+i))
		if !bytes.Equal(batched[i], single) {
			t.Fatalf("lane %d mismatch", i)
		}
	}
}

func TestRoundBatch4MatchesSingleLane(t *testing.T) {
	var css [4][][]byte
	for r := range css {
		for j := 0; j < 3; j++ {
			css[r] = append(css[r], mkbuf(32, byte(r*10+j)))
		}
	}
	batched := RoundBatch4(32, css)
	for r := 0; r < 4; r++ {
		single := Round(32, css[r])
		if !bytes.Equal(batched[r], single) {
			t.Fatalf("round %d mismatch", r)
		}
	}
}

func TestViewRequiresEqualCursors(t *testing.T) {
	round := mlog.NewRound(4, 16)
	round.WriteBit(0, 1)
	round.WriteBit(1, 1)
	round.WriteBit(2, 1)
	// party 3 never written -> cursor mismatch
	if _, err := View(32, mkbuf(16, 0), round); err == nil {
		t.Fatal("expected cursor-mismatch error")
	}
}

func TestViewDeterministic(t *testing.T) {
	round := mlog.NewRound(4, 16)
	for j := 0; j < 4; j++ {
		round.WriteBit(j, byte(j%2))
	}
	input := mkbuf(16, 7)
	a, err := View(32, input, round)
	if err != nil {
		t.Fatal(err)
	}
	b, err := View(32, input, round)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatal("view commitment not deterministic")
	}
}
