package tdj

import (
    "io"
    "math/big"
)

// Secret sharing of the decryption exponent. The order of the decryption
// group is unknown to every party, so the polynomial is evaluated over the
// integers rather than modulo the order, and reconstruction later uses
// Lagrange coefficients scaled by delta = nShares! to stay integral.

type polynomial struct {
    coeffs []*big.Int
}

// random polynomial of degree threshold-1 with constant term secret and
// remaining coefficients drawn uniformly from [0, bound)
func newPolynomial(random io.Reader, secret, bound *big.Int, threshold int) (*polynomial, error) {
    coeffs := make([]*big.Int, threshold)
    coeffs[0] = secret
    for i := 1; i < threshold; i += 1 {
        c, err := SampleInt(random, bound)
        if err != nil {
            return nil, err
        }
        coeffs[i] = c
    }
    return &polynomial{coeffs}, nil
}

// integer evaluation at x, no reduction
func (f *polynomial) eval(x int64) *big.Int {
    bx := big.NewInt(x)
    sum := new(big.Int).Set(f.coeffs[len(f.coeffs)-1])
    for i := len(f.coeffs) - 2; i >= 0; i -= 1 {
        sum.Mul(sum, bx)
        sum.Add(sum, f.coeffs[i])
    }
    return sum
}

// evaluate a fresh sharing polynomial at x = 1..nShares
func shareSecret(random io.Reader, secret, bound *big.Int, threshold, nShares int) ([]*big.Int, error) {
    f, err := newPolynomial(random, secret, bound, threshold)
    if err != nil {
        return nil, err
    }
    shares := make([]*big.Int, nShares)
    for x := 1; x <= nShares; x += 1 {
        shares[x-1] = f.eval(int64(x))
    }
    return shares, nil
}

// integer-scaled Lagrange coefficient delta * prod_{j != i} j/(j-i) for the
// given index set, evaluated exactly; the delta factor clears every
// denominator so the division is integral
func lagrangeCoefficient(delta *big.Int, i int, indices []int) *big.Int {
    num := new(big.Int).Set(delta)
    den := big.NewInt(1)
    t := new(big.Int)
    for _, j := range indices {
        if j == i {
            continue
        }
        num.Mul(num, t.SetInt64(int64(j)))
        den.Mul(den, t.SetInt64(int64(j-i)))
    }
    return num.Quo(num, den)
}

func factorial(n int) *big.Int {
    f := big.NewInt(1)
    for i := 2; i <= n; i += 1 {
        f.Mul(f, big.NewInt(int64(i)))
    }
    return f
}
