package tdj

import (
    "fmt"
    "io"
    "math/big"
)

var one = big.NewInt(1)

// PublicKey holds the modulus n, the exponent s and the base g = n+1,
// together with the cached plaintext modulus n^s and ciphertext modulus
// n^(s+1). Immutable once generated; every ciphertext keeps a reference to
// the key that produced it.
type PublicKey struct {
    N *big.Int
    S int
    G *big.Int
    ns *big.Int  // n^s
    ns1 *big.Int // n^(s+1)
}

func newPublicKey(n *big.Int, s int) *PublicKey {
    ns := new(big.Int).Exp(n, big.NewInt(int64(s)), nil)
    return &PublicKey{
        N: n,
        S: s,
        G: new(big.Int).Add(n, one),
        ns: ns,
        ns1: new(big.Int).Mul(ns, n),
    }
}

// size of the plaintext space
func (pk *PublicKey) PlaintextSpace() *big.Int {
    return pk.ns
}

// modulus of the ciphertext group
func (pk *PublicKey) CiphertextSpace() *big.Int {
    return pk.ns1
}

// two keys are the same if they agree on modulus and exponent; g is
// canonical so it needs no comparison
func (pk *PublicKey) Equal(other *PublicKey) bool {
    if pk == other {
        return true
    }
    if pk == nil || other == nil {
        return false
    }
    return pk.S == other.S && pk.N.Cmp(other.N) == 0
}

// Encrypt maps a plaintext in [0, n^s) to a fresh ciphertext
// g^m * r^(n^s) mod n^(s+1) with r a fresh unit of Z_n, so repeated
// encryptions of the same plaintext differ.
func (pk *PublicKey) Encrypt(random io.Reader, m *big.Int) (*EncryptedNumber, error) {
    if m == nil || m.Sign() < 0 || m.Cmp(pk.ns) >= 0 {
        return nil, fmt.Errorf("%w: %v not in [0, n^s)", ErrDomain, m)
    }
    r, err := sampleUnit(random, pk.N)
    if err != nil {
        return nil, err
    }
    c := new(big.Int).Exp(pk.G, m, pk.ns1)
    c.Mul(c, new(big.Int).Exp(r, pk.ns, pk.ns1))
    c.Mod(c, pk.ns1)
    return &EncryptedNumber{Value: c, Key: pk}, nil
}

// EncryptSequence encrypts each plaintext in order, each with independent
// randomness
func (pk *PublicKey) EncryptSequence(random io.Reader, ms []*big.Int) ([]*EncryptedNumber, error) {
    cs := make([]*EncryptedNumber, len(ms))
    for i, m := range ms {
        c, err := pk.Encrypt(random, m)
        if err != nil {
            return nil, err
        }
        cs[i] = c
    }
    return cs, nil
}
