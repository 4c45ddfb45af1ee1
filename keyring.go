package tdj

import (
    "fmt"
    "math/big"
)

// PrivateKeyRing wraps however many shares a consumer has collected; it has
// no identity beyond them. Decryption needs at least Threshold distinct
// shares of the same key.
type PrivateKeyRing struct {
    shares []*PrivateKeyShare
    key *PublicKey
    threshold int
    total int
}

// NewPrivateKeyRing collects shares, dropping duplicate indices. All shares
// must stem from the same key generation.
func NewPrivateKeyRing(shares []*PrivateKeyShare) (*PrivateKeyRing, error) {
    if len(shares) == 0 {
        return nil, fmt.Errorf("%w: no shares given", ErrConfiguration)
    }
    first := shares[0]
    seen := make(map[int]bool)
    unique := make([]*PrivateKeyShare, 0, len(shares))
    for _, sk := range shares {
        if !sk.Key.Equal(first.Key) {
            return nil, fmt.Errorf("%w: shares from different keys", ErrCrossKey)
        }
        if sk.Threshold != first.Threshold || sk.Shares != first.Shares {
            return nil, fmt.Errorf("%w: shares from different sharings", ErrConfiguration)
        }
        if seen[sk.Index] {
            continue
        }
        seen[sk.Index] = true
        unique = append(unique, sk)
    }
    return &PrivateKeyRing{
        shares: unique,
        key: first.Key,
        threshold: first.Threshold,
        total: first.Shares,
    }, nil
}

func (r *PrivateKeyRing) Size() int {
    return len(r.shares)
}

func (r *PrivateKeyRing) Threshold() int {
    return r.threshold
}

// Decrypt recovers the plaintext of c from any threshold-sized subset of
// the held shares; every valid subset yields the same plaintext.
func (r *PrivateKeyRing) Decrypt(c *EncryptedNumber) (*big.Int, error) {
    if len(r.shares) < r.threshold {
        return nil, fmt.Errorf("%w: need %d shares, have %d", ErrInsufficientShares, r.threshold, len(r.shares))
    }
    if !r.key.Equal(c.Key) {
        return nil, fmt.Errorf("%w: ciphertext from a different key", ErrCrossKey)
    }
    partials := make([]*PartialDecryption, r.threshold)
    for i, sk := range r.shares[:r.threshold] {
        p, err := sk.PartialDecrypt(c)
        if err != nil {
            return nil, err
        }
        partials[i] = p
    }
    return r.Combine(partials)
}

// DecryptSequence decrypts each ciphertext in order
func (r *PrivateKeyRing) DecryptSequence(cs []*EncryptedNumber) ([]*big.Int, error) {
    ms := make([]*big.Int, len(cs))
    for i, c := range cs {
        m, err := r.Decrypt(c)
        if err != nil {
            return nil, err
        }
        ms[i] = m
    }
    return ms, nil
}

// Combine merges independently computed partial decryptions, one per share
// index, into the plaintext. The partials may come from share holders on
// the far side of a trust boundary; no share value is needed here.
func (r *PrivateKeyRing) Combine(partials []*PartialDecryption) (*big.Int, error) {
    return combinePartials(r.key, r.threshold, r.total, partials)
}

func combinePartials(key *PublicKey, threshold, total int, partials []*PartialDecryption) (*big.Int, error) {
    seen := make(map[int]bool)
    unique := make([]*PartialDecryption, 0, len(partials))
    for _, p := range partials {
        if seen[p.Index] {
            continue
        }
        seen[p.Index] = true
        unique = append(unique, p)
    }
    if len(unique) < threshold {
        return nil, fmt.Errorf("%w: need %d partial decryptions, have %d", ErrInsufficientShares, threshold, len(unique))
    }
    unique = unique[:threshold]
    indices := make([]int, threshold)
    for i, p := range unique {
        indices[i] = p.Index
    }

    delta := factorial(total)
    combined := big.NewInt(1)
    for _, p := range unique {
        lam := lagrangeCoefficient(delta, p.Index, indices)
        lam.Lsh(lam, 1)
        f, err := expMod(p.Value, lam, key.ns1)
        if err != nil {
            return nil, err
        }
        combined.Mul(combined, f)
        combined.Mod(combined, key.ns1)
    }

    theta, err := reduce(combined, key.S, key.N)
    if err != nil {
        return nil, err
    }

    // combined = (1+n)^(4*delta^2*m), so divide the extracted exponent by
    // 4*delta^2; under sane parameters it is a unit of Z_{n^s}
    corr := new(big.Int).Mul(delta, delta)
    corr.Lsh(corr, 2)
    corr.Mod(corr, key.ns)
    if corr.ModInverse(corr, key.ns) == nil {
        return nil, fmt.Errorf("%w: 4*delta^2 not invertible modulo n^s", ErrConfiguration)
    }
    m := theta.Mul(theta, corr)
    return m.Mod(m, key.ns), nil
}

// modular exponentiation accepting negative exponents, via the inverse of
// the base
func expMod(base, exp, mod *big.Int) (*big.Int, error) {
    if exp.Sign() < 0 {
        inv := new(big.Int).ModInverse(base, mod)
        if inv == nil {
            return nil, fmt.Errorf("%w: base not invertible in the ciphertext group", ErrConfiguration)
        }
        return inv.Exp(inv, new(big.Int).Neg(exp), mod), nil
    }
    return new(big.Int).Exp(base, exp, mod), nil
}

// reduce extracts i from a = (1+n)^i mod n^(s+1), the generalized Paillier
// decryption recurrence: the discrete log L(u) = (u-1)/n is taken level by
// level, correcting with the binomial tail terms at each level.
func reduce(a *big.Int, s int, n *big.Int) (*big.Int, error) {
    npow := make([]*big.Int, s+2)
    npow[0] = big.NewInt(1)
    for j := 1; j <= s+1; j += 1 {
        npow[j] = new(big.Int).Mul(npow[j-1], n)
    }

    i := big.NewInt(0)
    t1 := new(big.Int)
    t2 := new(big.Int)
    term := new(big.Int)
    for j := 1; j <= s; j += 1 {
        t1.Mod(a, npow[j+1])
        t1.Sub(t1, one)
        t1.Div(t1, n)
        t2.Set(i)
        for k := 2; k <= j; k += 1 {
            i.Sub(i, one)
            t2.Mul(t2, i)
            t2.Mod(t2, npow[j])
            invfact := new(big.Int).Mod(factorial(k), npow[j])
            if invfact.ModInverse(invfact, npow[j]) == nil {
                return nil, fmt.Errorf("%w: %d! not invertible modulo n^%d", ErrConfiguration, k, j)
            }
            term.Mul(t2, npow[k-1])
            term.Mul(term, invfact)
            term.Mod(term, npow[j])
            t1.Sub(t1, term)
        }
        i.Set(t1)
    }
    return new(big.Int).Set(i), nil
}
