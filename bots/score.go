package bots

import (
	"math"
	"strconv"
)

// Score is a centipawn evaluation from White's point of view.
type Score int

// Inf is the White-wins sentinel; -Inf means Black wins. Material sums never
// come close to it.
const Inf Score = math.MaxInt32

func (s Score) String() string {
	switch s {
	case Inf:
		return "+inf"
	case -Inf:
		return "-inf"
	}
	return strconv.Itoa(int(s))
}
