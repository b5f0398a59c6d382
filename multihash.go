package multihash

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"github.com/mr-tron/base58/base58"
)

// Encode hashes input with the digest routine bound to h and returns the
// result wrapped in a multihash envelope: the algorithm code, the digest
// length, then the digest itself.
//
// Encode returns [ErrUnsupportedType] when no digest routine is bound to h
// (see [Hash.Supported]). That is the only way Encode can fail.
//
// The returned [Multihash] is valid by construction and is not re-validated:
// the header is written from the registry entry that also supplied the
// digest routine, so the two cannot disagree.
func Encode(h Hash, input []byte) (Multihash, error) {
	desc, ok := descriptors[h]
	if !ok || desc.new == nil {
		return Multihash{}, fmt.Errorf("%w: %s", ErrUnsupportedType, h)
	}

	buf := make([]byte, 2, 2+int(desc.size))
	buf[0] = byte(h)
	buf[1] = desc.size

	// hash.Hash.Sum appends the digest to buf in place; the capacity above
	// is exact, so the digest lands directly in the trailing bytes of the
	// envelope with no intermediate copy.
	digest := desc.new()
	digest.Write(input)
	buf = digest.Sum(buf)

	return Multihash{bytes: buf}, nil
}

// validate checks that input is a well-formed multihash. It is the single
// validation routine shared by every decoding construction path, owning and
// borrowing alike. Checks run in order and the first failure wins:
//
//  1. at least the two header bytes must be present
//  2. neither header byte may have its high bit set (varint headers are
//     rejected, not interpreted — see the package documentation)
//  3. the code must resolve in the registry
//  4. the total length must be exactly the registry digest size plus two
//  5. the declared length must equal the registry digest size
func validate(input []byte) error {
	if len(input) < 2 {
		return fmt.Errorf("%w: %d bytes is shorter than the two-byte header", ErrBadInputLength, len(input))
	}
	if input[0] >= 0x80 || input[1] >= 0x80 {
		return fmt.Errorf("%w: header bytes with the high bit set are not supported", ErrBadInputLength)
	}
	h, ok := FromCode(input[0])
	if !ok {
		return fmt.Errorf("%w: 0x%02x", ErrUnknownCode, input[0])
	}
	size := int(h.Size())
	if len(input) != size+2 {
		return fmt.Errorf("%w: %d bytes, want %d for %s", ErrBadInputLength, len(input), size+2, h)
	}
	if int(input[1]) != size {
		return fmt.Errorf("%w: declared digest length %d, but %s digests are %d bytes", ErrBadInputLength, input[1], h, size)
	}
	return nil
}

// Multihash is a validated multihash that owns its backing bytes. The zero
// value is not a valid multihash; obtain one from [Encode], [FromBytes],
// [FromHexString], [FromB58String], or [MultihashRef.ToOwned].
//
// A Multihash is immutable once constructed and safe for concurrent use.
type Multihash struct {
	bytes []byte
}

// FromBytes verifies that buf contains a valid multihash and wraps it
// without copying. FromBytes takes ownership of buf: the caller must not
// modify it afterwards.
//
// On failure the returned error is a [*DecodeOwnedError] carrying buf back
// to the caller unchanged, so the rejected allocation is not lost.
func FromBytes(buf []byte) (Multihash, error) {
	if err := validate(buf); err != nil {
		return Multihash{}, &DecodeOwnedError{Err: err, Data: buf}
	}
	return Multihash{bytes: buf}, nil
}

// FromHexString decodes a hex-encoded multihash, such as one previously
// produced by [Multihash.String].
func FromHexString(s string) (Multihash, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return Multihash{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return FromBytes(buf)
}

// FromB58String decodes a base58btc-encoded multihash, such as one
// previously produced by [Multihash.B58String].
func FromB58String(s string) (Multihash, error) {
	buf, err := base58.Decode(s)
	if err != nil {
		return Multihash{}, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}
	return FromBytes(buf)
}

// Bytes returns the multihash's underlying storage: code, length, digest.
// The slice is owned by the Multihash; callers must treat it as read-only.
func (m Multihash) Bytes() []byte { return m.bytes }

// Algorithm returns the hash algorithm identified by the envelope's code
// byte.
func (m Multihash) Algorithm() Hash { return m.Ref().Algorithm() }

// Digest returns the raw digest bytes, without the two-byte header.
// The slice aliases the Multihash's storage; callers must treat it as
// read-only.
func (m Multihash) Digest() []byte { return m.Ref().Digest() }

// Ref returns a borrowing view over the Multihash's bytes. It does not
// allocate.
func (m Multihash) Ref() MultihashRef { return MultihashRef{bytes: m.bytes} }

// Equal reports whether m and o are the same multihash. Equality is full
// byte equality over code, length, and digest; no weaker semantic equality
// exists.
func (m Multihash) Equal(o Multihash) bool { return bytes.Equal(m.bytes, o.bytes) }

// String implements [fmt.Stringer], rendering the full envelope as lowercase
// hex. The result round-trips through [FromHexString].
func (m Multihash) String() string { return hex.EncodeToString(m.bytes) }

// B58String renders the full envelope in base58btc, the conventional text
// form for multihashes in content-addressed systems. The result round-trips
// through [FromB58String].
func (m Multihash) B58String() string { return base58.Encode(m.bytes) }

// MultihashRef is a validated, read-only view over multihash bytes owned by
// someone else. It never copies. A MultihashRef must not be used after the
// underlying buffer is modified: the view's validity was established against
// the bytes as they were at construction.
//
// The zero value is not a valid view; obtain one from [FromSlice] or
// [Multihash.Ref]. Promote to an owning [Multihash] with
// [MultihashRef.ToOwned].
type MultihashRef struct {
	bytes []byte
}

// FromSlice verifies that input is a valid multihash and returns a view
// aliasing it. No bytes are copied; the caller retains ownership of input.
func FromSlice(input []byte) (MultihashRef, error) {
	if err := validate(input); err != nil {
		return MultihashRef{}, err
	}
	return MultihashRef{bytes: input}, nil
}

// Algorithm returns the hash algorithm identified by the view's code byte.
//
// Validation already proved the code resolves, so a failed lookup here can
// only mean the registry and the codec have diverged; that is an internal
// bug and panics rather than returning an error.
func (r MultihashRef) Algorithm() Hash {
	h, ok := FromCode(r.bytes[0])
	if !ok {
		panic("multihash: validated code no longer resolves in the registry")
	}
	return h
}

// Digest returns the raw digest bytes, without the two-byte header. The
// slice aliases the viewed buffer.
func (r MultihashRef) Digest() []byte { return r.bytes[2:] }

// Bytes returns the viewed bytes: code, length, digest. The slice aliases
// the viewed buffer.
func (r MultihashRef) Bytes() []byte { return r.bytes }

// Equal reports whether r and o view the same multihash value. Equality is
// full byte equality. Compare a view against an owning [Multihash] with
// r.Equal(m.Ref()); the relation is symmetric.
func (r MultihashRef) Equal(o MultihashRef) bool { return bytes.Equal(r.bytes, o.bytes) }

// ToOwned copies the viewed bytes into a fresh buffer and returns an owning
// [Multihash]. It always succeeds: the view is already known to be valid, so
// no re-validation is needed. This is the only operation on a view that
// allocates.
func (r MultihashRef) ToOwned() Multihash {
	buf := make([]byte, len(r.bytes))
	copy(buf, r.bytes)
	return Multihash{bytes: buf}
}
