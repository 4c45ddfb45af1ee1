package tdj

import (
    "fmt"
    "io"
    "math/big"
)

// generation retries before the sampled parameters are declared hopeless
const maxKeygenAttempts = 100

// Keygen generates a public key and nShares private key shares such that
// any threshold of them can decrypt. The modulus is a product of two
// distinct random primes of nBits bits each; the decryption exponent d is
// the CRT solution of d = 0 mod lcm(p-1,q-1), d = 1 mod n^s and is split
// directly, never handed out whole.
func Keygen(random io.Reader, nBits, s, threshold, nShares int) (*PublicKey, []*PrivateKeyShare, error) {
    if nBits < 8 {
        return nil, nil, fmt.Errorf("%w: modulus primes of %d bits are too small", ErrConfiguration, nBits)
    }
    if s < 1 {
        return nil, nil, fmt.Errorf("%w: s must be positive, got %d", ErrConfiguration, s)
    }
    if threshold < 1 || threshold > nShares {
        return nil, nil, fmt.Errorf("%w: threshold %d outside [1, %d]", ErrConfiguration, threshold, nShares)
    }

    twoDelta := new(big.Int).Lsh(factorial(nShares), 1)
    gcd := new(big.Int)
    for attempt := 0; attempt < maxKeygenAttempts; attempt += 1 {
        p, q, err := primePair(random, nBits)
        if err != nil {
            return nil, nil, err
        }
        pk := newPublicKey(new(big.Int).Mul(p, q), s)

        // the recovery step inverts 4*delta^2 modulo n^s, so reject the
        // rare tiny-parameter draw where the primes divide 2*delta
        if gcd.GCD(nil, nil, twoDelta, pk.N).Cmp(one) != 0 {
            continue
        }

        lambda := lcm(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))
        d := new(big.Int).ModInverse(lambda, pk.ns)
        if d == nil {
            // lambda shares a factor with n, only possible for very
            // small primes; resample
            continue
        }
        d.Mul(d, lambda)

        bound := new(big.Int).Mul(pk.ns, lambda)
        values, err := shareSecret(random, d, bound, threshold, nShares)
        if err != nil {
            return nil, nil, err
        }
        shares := make([]*PrivateKeyShare, nShares)
        for i, v := range values {
            shares[i] = &PrivateKeyShare{
                Index: i + 1,
                Value: v,
                Threshold: threshold,
                Shares: nShares,
                Key: pk,
            }
        }
        return pk, shares, nil
    }
    return nil, nil, fmt.Errorf("%w: key generation attempts exhausted", ErrConfiguration)
}

func lcm(a, b *big.Int) *big.Int {
    gcd := new(big.Int).GCD(nil, nil, a, b)
    l := new(big.Int).Div(a, gcd)
    return l.Mul(l, b)
}
