package dedup

import (
	"hash/fnv"
	"math"
)

// Set is the minimal membership contract a beam search dedup pass needs:
// Insert reports whether the item was already present, Contains only tests
// membership.
type Set[T any] interface {
	Insert(item T) (alreadyPresent bool)
	Contains(item T) bool
}

// AlwaysEmptySet is a no-op Set: nothing is ever considered present. Wiring
// it in place of a BloomFilter disables duplicate pruning entirely, which is
// useful as a baseline in benchmarks and tests.
type AlwaysEmptySet[T any] struct{}

func (AlwaysEmptySet[T]) Insert(T) bool   { return false }
func (AlwaysEmptySet[T]) Contains(T) bool { return false }

// BloomFilter is a probabilistic Set: Contains never false-negatives, but
// may false-positive at a rate close to the target p the filter was built
// for. KeyFunc turns an item into the byte sequence that gets hashed; the
// caller owns how Sol/NeighborId values are serialised for this purpose,
// since dedup has no way to do so generically.
type BloomFilter[T any] struct {
	bits    *BitArray
	keyFunc func(T) []byte
	m       int
	k       int
}

// NewBloomFilter returns a BloomFilter sized for n expected items at a
// target false-positive rate p, following the standard formulas
// m = ceil(-n*ln(p) / ln(2)^2) and k = round((m/n) * ln(2)).
//
// Panics if n <= 0 or p is not in (0, 1) — these are programmer errors, not
// recoverable runtime conditions.
func NewBloomFilter[T any](n int, p float64, keyFunc func(T) []byte) *BloomFilter[T] {
	if n <= 0 {
		panic("dedup: NewBloomFilter requires n > 0")
	}
	if p <= 0 || p >= 1 {
		panic("dedup: NewBloomFilter requires p in (0, 1)")
	}
	if keyFunc == nil {
		panic("dedup: NewBloomFilter requires a non-nil keyFunc")
	}
	ln2 := math.Ln2
	m := int(math.Ceil(-float64(n) * math.Log(p) / (ln2 * ln2)))
	if m < 1 {
		m = 1
	}
	k := int(math.Round((float64(m) / float64(n)) * ln2))
	if k < 1 {
		k = 1
	}
	return &BloomFilter[T]{
		bits:    NewBitArray(m),
		keyFunc: keyFunc,
		m:       m,
		k:       k,
	}
}

// twoHashes returns the two independent base hashes item combines into its
// k probe positions, via fnv-1a over two distinct seed prefixes — the same
// "two hashers, k derived offsets" double-hashing scheme the original
// BloomFilter uses with its FxHasher pair.
func (bf *BloomFilter[T]) twoHashes(item T) (h0, h1 uint64) {
	key := bf.keyFunc(item)

	f0 := fnv.New64a()
	f0.Write([]byte{0x04})
	f0.Write(key)
	h0 = f0.Sum64()

	f1 := fnv.New64a()
	f1.Write([]byte{0x2a})
	f1.Write(key)
	h1 = f1.Sum64()
	return h0, h1
}

func (bf *BloomFilter[T]) probe(h0, h1 uint64, i int) int {
	if i == 0 {
		return int(h0 % uint64(bf.m))
	}
	if i == 1 {
		return int(h1 % uint64(bf.m))
	}
	return int((h0 + uint64(i)*h1) % uint64(bf.m))
}

// Insert adds item to the filter and reports whether every one of its k
// positions was already set — i.e. whether item was (probably) already a
// member before this call.
func (bf *BloomFilter[T]) Insert(item T) bool {
	h0, h1 := bf.twoHashes(item)
	present := true
	for i := 0; i < bf.k; i++ {
		pos := bf.probe(h0, h1, i)
		if !bf.bits.Get(pos) {
			present = false
		}
		bf.bits.Set(pos)
	}
	return present
}

// Contains reports whether item is (probably) a member.
func (bf *BloomFilter[T]) Contains(item T) bool {
	h0, h1 := bf.twoHashes(item)
	for i := 0; i < bf.k; i++ {
		if !bf.bits.Get(bf.probe(h0, h1, i)) {
			return false
		}
	}
	return true
}
