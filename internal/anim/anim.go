// Package anim produces the coverage values and timings the board
// animations step through, one value per frame.
package anim

// RevealSequence is the cover width for each frame of a reveal: from
// boxSize down to -speed inclusive.
func RevealSequence(boxSize, speed int) []int {
	seq := make([]int, 0, boxSize/speed+2)
	for c := boxSize; c >= -speed; c -= speed {
		seq = append(seq, c)
	}
	return seq
}

// CoverSequence is the cover width for each frame of a cover: from 0 up
// to boxSize inclusive.
func CoverSequence(boxSize, speed int) []int {
	seq := make([]int, 0, boxSize/speed+1)
	for c := 0; c < boxSize+speed; c += speed {
		seq = append(seq, c)
	}
	return seq
}

// Ticks converts a pause in milliseconds to whole frames at fps, at least one.
func Ticks(ms, fps int) int {
	n := ms * fps / 1000
	if n < 1 {
		n = 1
	}
	return n
}

// Tone selects one of the two background colours.
type Tone int

const (
	ToneBase Tone = iota
	ToneLight
)

// Other returns the opposite tone.
func (t Tone) Other() Tone {
	if t == ToneBase {
		return ToneLight
	}
	return ToneBase
}

// WinFlashes is how many times the background flips when the board is cleared.
const WinFlashes = 13

// Flashes returns the background tone of each of n win flashes. The tones
// are swapped before every fill, starting from light, so the first flash
// shows the base tone.
func Flashes(n int) []Tone {
	tones := make([]Tone, n)
	cur := ToneLight
	for i := range tones {
		cur = cur.Other()
		tones[i] = cur
	}
	return tones
}
