package tdj

import (
    "fmt"
    "math/big"
)

// PrivateKeyShare is one holder's fragment of the decryption exponent,
// produced once at key generation and never mutated.
type PrivateKeyShare struct {
    Index int
    Value *big.Int
    Threshold int
    Shares int
    Key *PublicKey
}

// PartialDecryption is a single holder's contribution to a threshold
// decryption; below the threshold it reveals nothing about the plaintext.
type PartialDecryption struct {
    Index int
    Value *big.Int
}

// PartialDecrypt computes c^(2*delta*d_i) mod n^(s+1) with delta = shares!.
// The delta factor clears the Lagrange denominators during combination and
// the factor 2 keeps 4*delta^2 as the quantity inverted at recovery.
func (sk *PrivateKeyShare) PartialDecrypt(c *EncryptedNumber) (*PartialDecryption, error) {
    if !sk.Key.Equal(c.Key) {
        return nil, fmt.Errorf("%w: ciphertext from a different key", ErrCrossKey)
    }
    e := new(big.Int).Lsh(factorial(sk.Shares), 1)
    e.Mul(e, sk.Value)
    return &PartialDecryption{
        Index: sk.Index,
        Value: new(big.Int).Exp(c.Value, e, sk.Key.ns1),
    }, nil
}
