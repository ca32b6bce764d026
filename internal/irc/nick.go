package irc

// NickPolicy picks the next nickname to try after a collision.
type NickPolicy interface {
	// Next returns the nickname for the given retry attempt (1-based).
	// ok is false once the policy has no more candidates, which aborts
	// the handshake.
	Next(current string, attempt int) (next string, ok bool)
}

// SuffixPolicy appends a fixed suffix for every collision, so after N
// collisions the nickname is the original with N suffixes. Max bounds
// the number of retries; zero means unbounded.
type SuffixPolicy struct {
	Suffix string
	Max    int
}

func (p SuffixPolicy) Next(current string, attempt int) (string, bool) {
	if p.Max > 0 && attempt > p.Max {
		return "", false
	}
	return current + p.Suffix, true
}
