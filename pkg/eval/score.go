package eval

import (
	"fmt"

	"github.com/mackrabeau/chess-engine/pkg/board"
)

// Score is a signed position or move score in centipawns, from the perspective of the side to
// move (negamax convention): positive favors the side to move. If all pawns become queens and
// the opponent has only the king left, the standard material advantage is
// 8*900 (promoted p) + 900 (q) + 2*500 (r) + 2*320 (n) + 2*330 (b) = 10,400 centipawns, so a 32-bit int
// is comfortably wide; centipawns keep the unit human-interpretable.
type Score int32

const (
	// Mate is the sentinel magnitude for a forced checkmate. Mate scores are ply-relative: a
	// mate found at the current node scores Mate - plyFromRoot, so that shorter mates (larger
	// scores) are preferred by alpha-beta's ordinary maximization.
	Mate Score = 30000

	MinScore Score = -Mate
	MaxScore Score = Mate

	NegInf = MinScore - 1
	Inf    = MaxScore + 1
)

func (s Score) String() string {
	return fmt.Sprintf("%.2f", float64(s)/100)
}

// Unit returns the signed unit for the colour: 1 for White, -1 for Black. Used to flip a
// White-perspective evaluation into the side-to-move perspective expected by negamax.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// IsMateScore reports whether s represents some distance-to-mate rather than a material score.
func IsMateScore(s Score) bool {
	return s > Mate-1000 || s < -Mate+1000
}

// Crop clamps s into [MinScore, MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
