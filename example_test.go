package multihash_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/hasbyte1/go-multihash"
)

// ExampleEncode demonstrates producing a multihash and its text renderings.
func ExampleEncode() {
	m, err := multihash.Encode(multihash.SHA2256, []byte("hello world"))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(m.Algorithm())
	fmt.Println(m)
	fmt.Println(m.B58String())
	// Output:
	// sha2-256
	// 1220b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9
	// QmaozNR7DZHQK1ZcU9p7QdrshMvXqWK6gpu5rmrkPdT3L4
}

// ExampleFromSlice demonstrates zero-copy validation of bytes the caller
// already holds — for instance a multihash embedded in a larger message.
func ExampleFromSlice() {
	m, _ := multihash.Encode(multihash.SHA3512, []byte("some payload"))

	r, err := multihash.FromSlice(m.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(r.Algorithm(), len(r.Digest()))
	// Output: sha3-512 64
}

// ExampleFromBytes demonstrates reclaiming a rejected buffer from the
// owning decode path.
func ExampleFromBytes() {
	buf := []byte{0x7f, 0x00} // 0x7f is an unassigned code

	_, err := multihash.FromBytes(buf)

	var owned *multihash.DecodeOwnedError
	if errors.As(err, &owned) {
		fmt.Println(errors.Is(err, multihash.ErrUnknownCode))
		fmt.Println(len(owned.Data)) // the original buffer, returned intact
	}
	// Output:
	// true
	// 2
}

// ExampleHash_Supported shows the difference between an algorithm being
// registered and having a digest routine bound to it.
func ExampleHash_Supported() {
	fmt.Println(multihash.SHA2256.Supported())
	fmt.Println(multihash.Blake2b.Supported())

	_, err := multihash.Encode(multihash.Blake2b, []byte("data"))
	fmt.Println(errors.Is(err, multihash.ErrUnsupportedType))
	// Output:
	// true
	// false
	// true
}

// ExampleMultihashRef_ToOwned promotes a borrowed view to an owning value
// that survives the original buffer.
func ExampleMultihashRef_ToOwned() {
	m, _ := multihash.Encode(multihash.SHA1, []byte("hello world"))
	buf := m.Bytes()

	r, _ := multihash.FromSlice(buf)
	owned := r.ToOwned() // independent copy

	fmt.Println(owned.Equal(m))
	fmt.Println(owned.Algorithm())
	// Output:
	// true
	// sha1
}

// ExampleAlgorithms lists the registry.
func ExampleAlgorithms() {
	for _, h := range multihash.Algorithms() {
		if h.Supported() {
			fmt.Printf("0x%02x %s/%d\n", h.Code(), h, h.Size())
		}
	}
	// Output:
	// 0x11 sha1/20
	// 0x12 sha2-256/32
	// 0x13 sha2-512/64
	// 0x14 sha3-512/64
	// 0x15 sha3-384/48
	// 0x16 sha3-256/32
	// 0x17 sha3-224/28
	// 0x1a keccak-224/28
	// 0x1b keccak-256/32
	// 0x1c keccak-384/48
	// 0x1d keccak-512/64
}
