package contacts

// requestCeiling is how many upstream calls one credential may serve
// before the pool rotates to the next one.
const requestCeiling = 100

// keyPool is an ordered pool of API credentials with a cursor and a
// per-credential request counter. It is not safe for concurrent use on
// its own; the Client serializes access under its request mutex.
type keyPool struct {
	keys   []string
	cursor int
	counts []int
}

func newKeyPool(keys []string) *keyPool {
	return &keyPool{keys: keys, counts: make([]int, len(keys))}
}

func (p *keyPool) empty() bool { return len(p.keys) == 0 }

// current returns the credential under the cursor, rotating first if
// that credential has reached its request ceiling.
func (p *keyPool) current() string {
	if p.counts[p.cursor] >= requestCeiling {
		p.rotate()
	}
	return p.keys[p.cursor]
}

// rotate advances the cursor to the next credential, wrapping, and
// resets the new credential's counter.
func (p *keyPool) rotate() {
	p.cursor = (p.cursor + 1) % len(p.keys)
	p.counts[p.cursor] = 0
}

func (p *keyPool) increment() { p.counts[p.cursor]++ }
