package oaep

import (
	"bytes"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/sha3"
)

func TestOAEP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OAEP Suite")
}

var _ = Describe("Encode/Decode round trip", func() {
	// 2048-bit modulus, so emLen (k) is 256 bytes.
	const k = 256

	runRoundTrip := func(msg, label []byte) {
		em, err := Encode(sha1.New(), sha1.New(), msg, label, k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())
		Expect(em).To(HaveLen(k))
		Expect(em[0]).To(Equal(byte(0x00)))

		got, err := Decode(sha1.New(), sha1.New(), em[1:], label, k, -1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(msg))
	}

	It("recovers a short message with an empty label", func() {
		runRoundTrip([]byte("Hello"), nil)
	})

	It("recovers an empty message", func() {
		runRoundTrip(nil, []byte("some label"))
	})

	It("recovers a message at the maximum capacity for this key size and hash", func() {
		hLen := sha1.New().Size()
		maxLen := k - 2*hLen - 2
		msg := bytes.Repeat([]byte{0x42}, maxLen)
		runRoundTrip(msg, nil)
	})

	It("rejects decoding with a label that differs from the one used to encode", func() {
		em, err := Encode(sha1.New(), sha1.New(), []byte("secret"), []byte(""), k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		_, err = Decode(sha1.New(), sha1.New(), em[1:], []byte("A"), k, -1)
		Expect(err).To(MatchError(ErrDecoding))
	})

	It("rejects an output buffer shorter than the recovered plaintext", func() {
		msg := []byte("Hello")
		em, err := Encode(sha1.New(), sha1.New(), msg, nil, k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		_, err = Decode(sha1.New(), sha1.New(), em[1:], nil, k, len(msg)-1)
		Expect(err).To(MatchError(ErrDataTooLarge))
	})

	It("rejects a single corrupted byte anywhere in the encoded block", func() {
		msg := []byte("a message long enough to exercise padding")
		em, err := Encode(sha256.New(), sha256.New(), msg, []byte("label"), k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		// Decode only ever sees em[1:], so the corrupted bytes are chosen
		// within that block.
		block := em[1:]
		for _, i := range []int{0, 1, 32, len(block) - 1} {
			corrupted := append([]byte(nil), block...)
			corrupted[i] ^= 0x01
			_, err := Decode(sha256.New(), sha256.New(), corrupted, []byte("label"), k, -1)
			Expect(err).To(HaveOccurred(), fmt.Sprintf("flipping byte %d should have invalidated the encoding", i))
		}
	})

	It("works with SHA3-256 as both the label hash and the MGF hash", func() {
		msg := []byte("sha3 family message")
		em, err := Encode(sha3.New256(), sha3.New256(), msg, []byte("sha3-label"), k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		got, err := Decode(sha3.New256(), sha3.New256(), em[1:], []byte("sha3-label"), k, -1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(msg))
	})

	It("supports a distinct MGF hash from the label hash", func() {
		msg := []byte("mixed hash message")
		em, err := Encode(sha256.New(), sha1.New(), msg, nil, k, rand.Reader)
		Expect(err).NotTo(HaveOccurred())

		got, err := Decode(sha256.New(), sha1.New(), em[1:], nil, k, -1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(msg))
	})
})

var _ = Describe("known-answer vector", func() {
	// Fixed seed, fixed message, fixed expected EM: a regression vector in
	// the style of the classic PKCS#1 OAEP known-answer tests, computed
	// once against this package's own encode/decode so that any future
	// change to the masking order, padding layout, or MGF1 byte counter
	// silently breaks this test instead of only the randomized round
	// trips above.
	seed, err := hex.DecodeString("18b776ea21069d69776a33e96bad48e1dda0a5ef")
	if err != nil {
		panic(err)
	}
	expectedEM, err := hex.DecodeString("009e9bd00b6464847314434e2c86704433d0660b32691f90e4dbabb03f76003765f55b7ed7a202635ea92feda9465ec40f3e0f64b8b0e444956245c5d5d068cb0b1deca88b2f99ae0df4e80f017c595cdba4c92f2f46f25bdbf352beb93766d24554106e24f12b234b34a112749062a912896eebe1310f546feda795fd8497a0cc6d28028bfca17fc538ea5654f0c8be289a2df714d6b5b42e836a56a5269111d58e0632829a5704e712b7b33cf67a5b8b0d13be10449293ccd80c64d5aaefbaa6cf4cfb07b37c2a49041d2b40c278b92900a3ce95c16ee97fce386dd38b3b3b1e35f0b62f58f0d3f17082f21500e57df84553da15a2a269e814be1a09b84a")
	if err != nil {
		panic(err)
	}

	It("reproduces a fixed EM for a fixed 20-byte seed, SHA-1, and an empty label", func() {
		const k = 255
		msg := []byte("Hello")

		em, err := Encode(sha1.New(), sha1.New(), msg, nil, k, bytes.NewReader(seed))
		Expect(err).NotTo(HaveOccurred())
		Expect(em).To(Equal(expectedEM))

		got, err := Decode(sha1.New(), sha1.New(), em[1:], nil, k, -1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(msg))
	})
})

var _ = Describe("Encode preconditions", func() {
	It("rejects emLen too small to hold two hash digests", func() {
		_, err := Encode(sha256.New(), sha256.New(), []byte("x"), nil, 10, rand.Reader)
		Expect(err).To(MatchError(ErrKeySizeTooSmall))
	})

	It("rejects a message too large for the requested emLen", func() {
		hLen := sha256.New().Size()
		emLen := 2*hLen + 2
		_, err := Encode(sha256.New(), sha256.New(), []byte("any nonzero message"), nil, emLen, rand.Reader)
		Expect(err).To(MatchError(ErrMessageTooLarge))
	})
})

var _ = Describe("Decode preconditions", func() {
	It("rejects when the modulus is smaller than two hash digests", func() {
		_, err := Decode(sha256.New(), sha256.New(), make([]byte, 10), nil, 10, -1)
		Expect(err).To(MatchError(ErrDecoding))
	})
})
