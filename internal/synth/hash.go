package synth

// HashString is a rolling hash (h = h*31 + code, wrapped to int32) used for
// reproducible pseudo-random selection: the same string always hashes to the
// same value, and distinct strings may collide. Not for security and not for
// uniqueness; do not swap in a general-purpose RNG, reproducibility across
// identical inputs is part of the engine's contract.
func HashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}
