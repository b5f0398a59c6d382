// Package multihash implements the multihash format: a self-describing
// container for cryptographic digests. Every value carries a two-byte
// header — an algorithm code and the digest length — ahead of the raw
// digest, so heterogeneous hash values can be stored, compared, and routed
// without external metadata.
//
// # Architecture
//
// The package has two layers. The algorithm registry ([Hash], [FromCode],
// [Algorithms]) is a static table mapping each algorithm to its wire code,
// its exact digest size, and the digest routine that computes it. The codec
// ([Encode], [FromBytes], [FromSlice]) assembles and validates envelopes
// against that table.
//
// Validated values come in two shapes:
//
//   - [Multihash] — owns its backing bytes. Produced by [Encode] (valid by
//     construction, never re-validated) or by the validating constructors
//     [FromBytes], [FromHexString], and [FromB58String].
//   - [MultihashRef] — a read-only, zero-copy view over bytes owned by the
//     caller, produced by [FromSlice]. Useful when validating a multihash
//     embedded in a larger message without paying for an allocation.
//
// Both shapes are immutable, carry identical invariants, and compare equal
// exactly when their byte sequences match. A view is promoted to an owning
// value with [MultihashRef.ToOwned]; an owning value yields a view for free
// with [Multihash.Ref].
//
// # Quick start
//
//	m, err := multihash.Encode(multihash.SHA2256, []byte("hello world"))
//	if err != nil { log.Fatal(err) }
//
//	fmt.Println(m)             // 1220b94d...
//	fmt.Println(m.Algorithm()) // sha2-256
//
//	r, err := multihash.FromSlice(m.Bytes()) // zero-copy validation
//	if err != nil { log.Fatal(err) }
//	_ = r.Digest()
//
// # Wire format
//
//	byte 0      algorithm code (0–127)
//	byte 1      digest length in bytes (0–127)
//	bytes 2..N  raw digest, exactly <byte 1> bytes
//
// There is no version field, checksum, or padding. The header is fixed
// width: two single bytes.
//
// # Supported algorithms
//
// SHA-1, SHA-256, SHA-512 (standard library), SHA3-224/256/384/512
// (golang.org/x/crypto/sha3), and Keccak-224/256/384/512
// (github.com/gxed/hashland/keccakpg). [Blake2b] and [Blake2s] are
// enumerated with reserved codes and sizes but have no digest routine bound
// to them: they decode, while [Encode] rejects them with
// [ErrUnsupportedType]. [Hash.Supported] reports which is which.
//
// # Known limitations
//
// The multihash specification allows the code and length to be unsigned
// varints. This package supports only the single-byte form: header bytes
// with the high bit set are rejected with [ErrBadInputLength] rather than
// interpreted, which caps the code and digest-length space at 127. No
// algorithm in the registry comes close to that ceiling. Extending to full
// varint headers would change the wire format and is intentionally out of
// scope.
//
// Hashing is single-shot over an in-memory input; there is no streaming or
// incremental interface.
package multihash
