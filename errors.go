package multihash

import "errors"

// Sentinel errors returned by encoding and decoding operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := multihash.FromSlice(buf)
//	if errors.Is(err, multihash.ErrUnknownCode) {
//	    // buf starts with a code this registry does not know
//	}
//
// Encode-time and decode-time failures are deliberately disjoint:
// [ErrUnsupportedType] is only ever returned by [Encode], while
// [ErrUnknownCode] and [ErrBadInputLength] are only ever returned when
// decoding untrusted bytes.
var (
	// ErrUnsupportedType is returned by [Encode] when the requested hash
	// type has no digest routine bound to it (for example [Blake2b] and
	// [Blake2s], which are enumerated but not implemented). This is a
	// caller-correctable configuration gap, not a data error: choose a
	// hash type for which [Hash.Supported] reports true.
	ErrUnsupportedType = errors.New("multihash: no digest routine bound to this hash type")

	// ErrUnknownCode is returned when the leading code byte of a decoded
	// multihash is not present in the algorithm registry. This covers both
	// genuinely unknown algorithms and reserved/unassigned code space.
	ErrUnknownCode = errors.New("multihash: unknown hash algorithm code")

	// ErrBadInputLength is returned when a decoded multihash is malformed:
	// the input is shorter than the two-byte header, a header byte has its
	// high bit set (varint headers are not supported, see the package
	// documentation), the total length does not match the registry's digest
	// size for the algorithm, or the declared length disagrees with the
	// registry.
	ErrBadInputLength = errors.New("multihash: bad input length")

	// ErrInvalidEncoding is returned by [FromHexString] and [FromB58String]
	// when the input is not valid hex or base58 text. It is distinct from
	// the byte-level decode errors above, which apply only after the text
	// layer has been stripped.
	ErrInvalidEncoding = errors.New("multihash: input is not valid hex or base58")
)

// DecodeOwnedError is the error type returned by [FromBytes]. It wraps the
// underlying decode error together with the rejected input, so a caller
// that handed its buffer to [FromBytes] does not lose the allocation when
// validation fails and may inspect or reuse it.
//
// [errors.Is] sees through the wrapper:
//
//	_, err := multihash.FromBytes(buf)
//	var owned *multihash.DecodeOwnedError
//	if errors.As(err, &owned) {
//	    buf = owned.Data // reclaim the rejected buffer
//	}
//	if errors.Is(err, multihash.ErrBadInputLength) { ... }
type DecodeOwnedError struct {
	// Err is the underlying decode error ([ErrUnknownCode] or
	// [ErrBadInputLength], possibly with added context).
	Err error

	// Data is the rejected input, returned to the caller unchanged.
	Data []byte
}

// Error implements the error interface.
func (e *DecodeOwnedError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying decode error to [errors.Is] / [errors.As].
func (e *DecodeOwnedError) Unwrap() error { return e.Err }
