package tdj

import (
    "crypto/rand"
    "fmt"
    "io"
    "math/big"
)

// retry cap for rejection loops so misconfigured input cannot spin forever
const maxSampleAttempts = 1000

// sample a uniform random integer smaller than q
func SampleInt(random io.Reader, q *big.Int) (*big.Int, error) {
    return rand.Int(random, q)
}

// sample two distinct random primes of bits length each
func primePair(random io.Reader, bits int) (p, q *big.Int, err error) {
    p, err = rand.Prime(random, bits)
    if err != nil {return}
    for i := 0; ; i += 1 {
        if i >= maxSampleAttempts {
            return nil, nil, fmt.Errorf("%w: prime sampling attempts exhausted", ErrConfiguration)
        }
        q, err = rand.Prime(random, bits)
        if err != nil {return}
        if p.Cmp(q) != 0 {
            return
        }
    }
}

// sample a unit of Z_n, rejecting values sharing a factor with n
func sampleUnit(random io.Reader, n *big.Int) (*big.Int, error) {
    gcd := new(big.Int)
    for i := 0; i < maxSampleAttempts; i += 1 {
        r, err := rand.Int(random, n)
        if err != nil {
            return nil, err
        }
        if r.Sign() == 0 {
            continue
        }
        if gcd.GCD(nil, nil, r, n).Cmp(one) == 0 {
            return r, nil
        }
    }
    return nil, fmt.Errorf("%w: unit sampling attempts exhausted", ErrConfiguration)
}
