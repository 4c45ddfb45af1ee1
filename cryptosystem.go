package tdj

import (
    "math/big"

    gm "github.com/ontanj/generic-matrix"
)

// Cryptosystem is an additively homomorphic threshold scheme as seen by the
// batch, matrix and worker layers, which do not care whether the Damgård-
// Jurik or the lattice-backed scheme is underneath.
type Cryptosystem interface {
    Encrypt(plaintext *big.Int) (Ciphertext, error)
    Add(a, b Ciphertext) (Ciphertext, error)
    Scale(ciphertext Ciphertext, factor *big.Int) (Ciphertext, error)
    CombinePartials(parts []PartialResult) (*big.Int, error)
    EvaluationSpace() gm.Space
    N() *big.Int // size of plaintext space
}

// SecretShare is one holder's decryption capability
type SecretShare interface {
    PartialDecrypt(Ciphertext) (PartialResult, error)
}

type Ciphertext interface{}

type PartialResult interface{}
