package she

import "errors"

var (
	// ErrPlaintextRange rejects a message outside
	// [-DefaultMessageBound, DefaultMessageBound] at encryption time, before
	// an undecryptable ciphertext can be produced.
	ErrPlaintextRange = errors.New("she: message outside supported range")

	// ErrPlaintextOutOfRange reports a decryption whose discrete-log search
	// exhausted the bound: an out-of-range message, a homomorphic overflow,
	// or a wrong key.
	ErrPlaintextOutOfRange = errors.New("she: decrypted value outside supported range")

	ErrMalformedCiphertext = errors.New("she: malformed ciphertext")
	ErrMalformedKey        = errors.New("she: malformed key")
)
