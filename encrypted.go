package tdj

import (
    "fmt"
    "math/big"
)

// EncryptedNumber is a ciphertext in Z*_{n^(s+1)} bound to the public key
// that produced it. Exponent records the scale of the encoded value; scalar
// operations normalize eagerly (scalars are reduced modulo n^s before
// exponentiation) so the scale stays put, but operands whose scales differ
// anyway, e.g. after deserialization, are rejected. Values are immutable;
// every operation returns a new instance.
type EncryptedNumber struct {
    Value *big.Int
    Key *PublicKey
    Exponent int
}

func (c *EncryptedNumber) matching(other *EncryptedNumber) error {
    if !c.Key.Equal(other.Key) {
        return fmt.Errorf("%w: operands encrypted under different keys", ErrCrossKey)
    }
    if c.Exponent != other.Exponent {
        return fmt.Errorf("%w: %d and %d", ErrScaleMismatch, c.Exponent, other.Exponent)
    }
    return nil
}

// Add yields a ciphertext decrypting to (m1 + m2) mod n^s
func (c *EncryptedNumber) Add(other *EncryptedNumber) (*EncryptedNumber, error) {
    if err := c.matching(other); err != nil {
        return nil, err
    }
    sum := new(big.Int).Mul(c.Value, other.Value)
    sum.Mod(sum, c.Key.ns1)
    return &EncryptedNumber{Value: sum, Key: c.Key, Exponent: c.Exponent}, nil
}

// Neg yields a ciphertext decrypting to -m mod n^s
func (c *EncryptedNumber) Neg() (*EncryptedNumber, error) {
    inv := new(big.Int).ModInverse(c.Value, c.Key.ns1)
    if inv == nil {
        return nil, fmt.Errorf("%w: ciphertext is not a unit", ErrConfiguration)
    }
    return &EncryptedNumber{Value: inv, Key: c.Key, Exponent: c.Exponent}, nil
}

// Subtract yields a ciphertext decrypting to (m1 - m2) mod n^s
func (c *EncryptedNumber) Subtract(other *EncryptedNumber) (*EncryptedNumber, error) {
    if err := c.matching(other); err != nil {
        return nil, err
    }
    neg, err := other.Neg()
    if err != nil {
        return nil, err
    }
    return c.Add(neg)
}

// Mul yields a ciphertext decrypting to k*m mod n^s; k may be negative
// since the plaintext space is cyclic
func (c *EncryptedNumber) Mul(k *big.Int) (*EncryptedNumber, error) {
    e := new(big.Int).Mod(k, c.Key.ns)
    prod := new(big.Int).Exp(c.Value, e, c.Key.ns1)
    return &EncryptedNumber{Value: prod, Key: c.Key, Exponent: c.Exponent}, nil
}

// Div multiplies by k^-1 mod n^s; k must be a unit of the plaintext space
func (c *EncryptedNumber) Div(k *big.Int) (*EncryptedNumber, error) {
    inv := new(big.Int).Mod(k, c.Key.ns)
    if inv.ModInverse(inv, c.Key.ns) == nil {
        return nil, fmt.Errorf("%w: gcd(%v, n^s) != 1", ErrNonInvertibleScalar, k)
    }
    return c.Mul(inv)
}
