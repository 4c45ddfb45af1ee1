package tdj

// Setting ties a cryptosystem to the number of share holders and the
// decryption threshold of a deployment.
type Setting struct {
    cs Cryptosystem
    n int // number of share holders
    T int // threshold
}

func NewSetting(cs Cryptosystem, holders, threshold int) Setting {
    return Setting{cs: cs, n: holders, T: threshold}
}

func (s Setting) Cryptosystem() Cryptosystem {
    return s.cs
}

func (s Setting) Holders() int {
    return s.n
}

func (s Setting) Threshold() int {
    return s.T
}
