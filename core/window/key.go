// core/window/key.go
package window

import (
	"sort"

	"golang.org/x/crypto/blake2b"
)

// Key is the content address of a window's collapsed haplotype set. Distinct
// index tuples inducing the same haplotypes share a Key, so the expensive
// persistence computation runs once per distinct point cloud, not once per
// tuple.
type Key [blake2b.Size256]byte

// ContentKey canonicalizes the haplotype multiset (sorted, NUL-joined) and
// hashes it. Keying by content rather than by index tuple is what makes the
// engine cache effective across overlapping frames.
func (w Window) ContentKey() Key {
	canon := make([]string, len(w.Haplotypes))
	for i, h := range w.Haplotypes {
		canon[i] = string(h)
	}
	sort.Strings(canon)
	h, _ := blake2b.New256(nil)
	for _, s := range canon {
		_, _ = h.Write([]byte(s))
		_, _ = h.Write([]byte{0})
	}
	var k Key
	copy(k[:], h.Sum(nil))
	return k
}
