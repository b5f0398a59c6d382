package multihash

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	keccak "github.com/gxed/hashland/keccakpg"
	"golang.org/x/crypto/sha3"
)

// Hash identifies a hash algorithm. Its numeric value is the algorithm's
// single-byte code on the wire, as assigned by the multihash table.
//
// The set of valid values is the closed enumeration of constants below.
// Constructing a Hash from an arbitrary byte does not make it valid; use
// [FromCode] to resolve untrusted codes.
type Hash byte

// The supported hash algorithms. Every constant maps to a registry entry
// with a fixed digest size.
//
// [Blake2b] and [Blake2s] are enumerated (they decode, and their codes and
// sizes are reserved here) but have no digest routine bound to them, so
// [Encode] rejects them with [ErrUnsupportedType]. [Hash.Supported] reports
// the distinction.
const (
	SHA1      Hash = 0x11
	SHA2256   Hash = 0x12
	SHA2512   Hash = 0x13
	SHA3512   Hash = 0x14
	SHA3384   Hash = 0x15
	SHA3256   Hash = 0x16
	SHA3224   Hash = 0x17
	Keccak224 Hash = 0x1a
	Keccak256 Hash = 0x1b
	Keccak384 Hash = 0x1c
	Keccak512 Hash = 0x1d
	Blake2b   Hash = 0x40
	Blake2s   Hash = 0x41
)

// descriptor is one row of the algorithm registry: the exact digest size in
// bytes, the canonical multihash table name, and the constructor for the
// digest routine. A nil constructor marks an algorithm that is enumerated
// but has no implementation linked in.
//
// Sizes are fixed, compiled-in values — never inferred from the routine at
// runtime. The routine's output length matching size is a trust boundary:
// a mismatch is a bug in this table, not a handled error.
type descriptor struct {
	size byte
	name string
	new  func() hash.Hash
}

// descriptors is the algorithm registry. It is package-level immutable data
// and therefore safe for unlimited concurrent readers without locking.
//
// Invariants: codes are unique, and every code and size fits in seven bits
// (the single-byte header ceiling — see the package documentation).
var descriptors = map[Hash]descriptor{
	SHA1:      {size: 20, name: "sha1", new: sha1.New},
	SHA2256:   {size: 32, name: "sha2-256", new: sha256.New},
	SHA2512:   {size: 64, name: "sha2-512", new: sha512.New},
	SHA3512:   {size: 64, name: "sha3-512", new: sha3.New512},
	SHA3384:   {size: 48, name: "sha3-384", new: sha3.New384},
	SHA3256:   {size: 32, name: "sha3-256", new: sha3.New256},
	SHA3224:   {size: 28, name: "sha3-224", new: sha3.New224},
	Keccak224: {size: 28, name: "keccak-224", new: keccak.New224},
	Keccak256: {size: 32, name: "keccak-256", new: keccak.New256},
	Keccak384: {size: 48, name: "keccak-384", new: keccak.New384},
	Keccak512: {size: 64, name: "keccak-512", new: keccak.New512},
	Blake2b:   {size: 64, name: "blake2b", new: nil},
	Blake2s:   {size: 32, name: "blake2s", new: nil},
}

// FromCode resolves a wire code byte to its [Hash]. The second return value
// is false when the code is not present in the registry — either a genuinely
// unknown algorithm or reserved/unassigned code space.
func FromCode(code byte) (Hash, bool) {
	h := Hash(code)
	if _, ok := descriptors[h]; !ok {
		return 0, false
	}
	return h, true
}

// Code returns the algorithm's single-byte wire code.
func (h Hash) Code() byte { return byte(h) }

// Size returns the algorithm's exact digest length in bytes. It returns 0
// for values outside the enumerated constant set.
func (h Hash) Size() byte { return descriptors[h].size }

// Name returns the canonical multihash table name of the algorithm, such as
// "sha2-256". It returns "" for values outside the enumerated constant set.
func (h Hash) Name() string { return descriptors[h].name }

// Supported reports whether a digest routine is bound to the algorithm,
// i.e. whether [Encode] can produce a multihash of this type. Registry
// presence and implementation presence are allowed to diverge: an
// unsupported algorithm still decodes.
func (h Hash) Supported() bool { return descriptors[h].new != nil }

// String implements [fmt.Stringer]. Unknown values render as "unknown(0xNN)"
// so they remain identifiable in logs and error messages.
func (h Hash) String() string {
	if d, ok := descriptors[h]; ok {
		return d.name
	}
	return fmt.Sprintf("unknown(0x%02x)", byte(h))
}

// Algorithms returns every registered algorithm in ascending code order.
// The returned slice is freshly allocated and may be modified by the caller.
func Algorithms() []Hash {
	out := make([]Hash, 0, len(descriptors))
	for h := range descriptors {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
