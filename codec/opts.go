package codec

type EncodeOption func(*Encoder)

// LineWidth splits the encoded text into blocks of at most n characters.
// n <= 0 writes a single block.
func LineWidth(n int) EncodeOption {
	return func(e *Encoder) { e.width = n }
}

// Squish maximizes sharing in a copy of the tree before encoding so that
// every repeated subproof is written once.
func Squish(v bool) EncodeOption {
	return func(e *Encoder) { e.squish = v }
}

const DefaultLineWidth = 79
