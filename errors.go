package tdj

import (
    "errors"
)

// error kinds surfaced by the cryptosystem; callers match with errors.Is
var (
    // invalid parameter combination, or a fatal non-invertibility
    // discovered during share combination
    ErrConfiguration = errors.New("invalid cryptosystem configuration")

    // plaintext outside [0, n^s)
    ErrDomain = errors.New("plaintext outside the plaintext space")

    // operands produced under different public keys
    ErrCrossKey = errors.New("mismatched public keys")

    // ciphertexts with different exponent scales combined
    ErrScaleMismatch = errors.New("mismatched ciphertext exponent scales")

    // fewer shares than the decryption threshold
    ErrInsufficientShares = errors.New("insufficient key shares")

    // scalar division by a non-unit of the plaintext space
    ErrNonInvertibleScalar = errors.New("scalar is not invertible")
)
