package tdj

import (
    "fmt"
    "io"
    "math/big"

    gm "github.com/ontanj/generic-matrix"
)

// adapter binding the Damgård-Jurik scheme to the generic cryptosystem
// interface; ciphertexts are *EncryptedNumber, partial results are
// *PartialDecryption

type DJCryptosystem struct {
    Key *PublicKey
    threshold int
    shares int
    random io.Reader
}

type DJSecretShare struct {
    Share *PrivateKeyShare
}

// NewDJCryptosystem generates keys for n holders with the given threshold
// and wraps them for the generic layers; random is the scheme's only source
// of randomness, also for later encryptions
func NewDJCryptosystem(random io.Reader, bitSize, s, threshold, n int) (cryptosystem DJCryptosystem, secretShares []DJSecretShare, err error) {
    pk, sks, err := Keygen(random, bitSize, s, threshold, n)
    if err != nil {
        return
    }
    cryptosystem = DJCryptosystem{Key: pk, threshold: threshold, shares: n, random: random}
    secretShares = make([]DJSecretShare, n)
    for i, sk := range sks {
        secretShares[i] = DJSecretShare{sk}
    }
    return
}

func (cs DJCryptosystem) Encrypt(plaintext *big.Int) (Ciphertext, error) {
    return cs.Key.Encrypt(cs.random, plaintext)
}

func (cs DJCryptosystem) Add(a, b Ciphertext) (Ciphertext, error) {
    return a.(*EncryptedNumber).Add(b.(*EncryptedNumber))
}

func (cs DJCryptosystem) Scale(ciphertext Ciphertext, factor *big.Int) (Ciphertext, error) {
    return ciphertext.(*EncryptedNumber).Mul(factor)
}

func (cs DJCryptosystem) CombinePartials(parts []PartialResult) (*big.Int, error) {
    casted := make([]*PartialDecryption, len(parts))
    for i, p := range parts {
        casted[i] = p.(*PartialDecryption)
    }
    return combinePartials(cs.Key, cs.threshold, cs.shares, casted)
}

func (cs DJCryptosystem) EvaluationSpace() gm.Space {
    return djSpace{cs}
}

func (cs DJCryptosystem) N() *big.Int {
    return cs.Key.PlaintextSpace()
}

func (sk DJSecretShare) PartialDecrypt(ciphertext Ciphertext) (PartialResult, error) {
    return sk.Share.PartialDecrypt(ciphertext.(*EncryptedNumber))
}

func ConvertDJSecretShares(sksIn []DJSecretShare) []SecretShare {
    sksOut := make([]SecretShare, len(sksIn))
    for i, val := range sksIn {
        sksOut[i] = SecretShare(val)
    }
    return sksOut
}

// evaluation space over Damgård-Jurik ciphertexts

type djSpace struct {
    DJCryptosystem
}

func (cs djSpace) Add(a, b interface{}) (interface{}, error) {
    return cs.DJCryptosystem.Add(a, b)
}

func (cs djSpace) Subtract(a, b interface{}) (diff interface{}, err error) {
    return a.(*EncryptedNumber).Subtract(b.(*EncryptedNumber))
}

func (cs djSpace) Multiply(a, b interface{}) (product interface{}, err error) {
    return nil, fmt.Errorf("%w: no ciphertext multiplication in the Damgård-Jurik scheme", ErrConfiguration)
}

func (cs djSpace) Scale(ciphertext interface{}, factor interface{}) (product interface{}, err error) {
    return cs.DJCryptosystem.Scale(ciphertext, factor.(*big.Int))
}

func (cs djSpace) Scalarspace() bool {
    return false
}
