package board

import "fmt"

// MaxMoves is the maximum number of pseudo-legal or legal moves reachable in any legal chess
// position (the true maximum ever found is 218; a small margin is kept for safety).
const MaxMoves = 220

// MoveList is a fixed-capacity, heap-free sequence of moves, used as the return value of move
// generation. It lives on the caller's stack in spirit (no further allocation once built) even
// though Go itself decides escape analysis; callers on the search hot path pass it by pointer
// and reuse scratch instances where convenient.
type MoveList struct {
	moves [MaxMoves]Move
	n     int
}

// Add appends a move to the list. Panics if the list is already at capacity, which would
// indicate a generator bug (more pseudo-legal moves than any legal chess position permits).
func (ml *MoveList) Add(m Move) {
	if ml.n >= MaxMoves {
		panic("move list capacity exceeded")
	}
	ml.moves[ml.n] = m
	ml.n++
}

func (ml *MoveList) Len() int {
	return ml.n
}

func (ml *MoveList) At(i int) Move {
	return ml.moves[i]
}

// Slice returns the backing moves as a slice. The slice aliases the MoveList's internal array
// and is only valid until the MoveList is reused or goes out of scope.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.n]
}

func (ml *MoveList) String() string {
	return fmt.Sprintf("moves%v", ml.Slice())
}
