package tdj

import (
    "fmt"
    "math/big"

    "github.com/ldsec/lattigo/bfv"
    "github.com/ldsec/lattigo/dbfv"
    "github.com/ldsec/lattigo/ring"
    gm "github.com/ontanj/generic-matrix"
)

// Lattice-backed threshold cryptosystem behind the same interface as the
// Damgård-Jurik scheme. Key material is generated collectively: every
// holder runs as its own goroutine and only protocol shares cross the
// channels. Decryption key-switches the ciphertext to a target key pair via
// PCKS, so again only shares travel.

type BFVCryptosystem struct {
    params *bfv.Parameters
    crs *ring.Poly
    pk *bfv.PublicKey
    tpk *bfv.PublicKey
    tsk *bfv.SecretKey
}

type BFVSecretShare struct {
    sk *bfv.SecretKey
    cs BFVCryptosystem
}

type BFVCiphertext struct {
    msg *bfv.Ciphertext
}

type BFVPartial struct {
    part dbfv.PCKSShare
    ciphertext BFVCiphertext
}

type bfvInit struct {
    params *bfv.Parameters
    crs *ring.Poly
}

// common reference polynomial shared by all key generators
func GenCRS(params *bfv.Parameters) *ring.Poly {
    contextKeys, _ := ring.NewContextWithParams(1<<params.LogN, append(params.Qi, params.Pi...))
    crsGen := ring.NewCRPGenerator([]byte{'t', 'd', 'j'}, contextKeys)
    return crsGen.ClockNew()
}

// CentralBFVGenerator runs collective key generation as the aggregating
// party, over one channel per other holder
func CentralBFVGenerator(channels []chan interface{}) (BFVCryptosystem, BFVSecretShare) {
    var cs BFVCryptosystem
    cs.params = bfv.DefaultParams[bfv.PN14QP438]
    cs.params.T = 65537
    cs.crs = GenCRS(cs.params)
    for _, ch := range channels {
        ch <- bfvInit{params: cs.params, crs: cs.crs}
    }

    // generate secret key and collective public key
    sk := bfv.NewKeyGenerator(cs.params).GenSecretKey()
    ckg := dbfv.NewCKGProtocol(cs.params)
    ckgShare := ckg.AllocateShares()
    ckg.GenShare(sk.Get(), cs.crs, ckgShare)

    ckgCombined := ckg.AllocateShares()
    ckg.AggregateShares(ckgShare, ckgCombined, ckgCombined)
    for _, ch := range channels {
        ckg.AggregateShares((<-ch).(dbfv.CKGShare), ckgCombined, ckgCombined)
    }
    cs.pk = bfv.NewPublicKey(cs.params)
    ckg.GenPublicKey(ckgCombined, cs.crs, cs.pk)

    // target key pair for the key switch during decryption
    cs.tsk, cs.tpk = bfv.NewKeyGenerator(cs.params).GenKeyPair()

    for _, ch := range channels {
        ch <- cs
    }
    return cs, BFVSecretShare{sk: sk, cs: cs}
}

// OuterBFVGenerator is the non-aggregating side of the key generation
func OuterBFVGenerator(channel chan interface{}) (BFVCryptosystem, BFVSecretShare) {
    init := (<-channel).(bfvInit)

    sk := bfv.NewKeyGenerator(init.params).GenSecretKey()
    ckg := dbfv.NewCKGProtocol(init.params)
    ckgShare := ckg.AllocateShares()
    ckg.GenShare(sk.Get(), init.crs, ckgShare)
    channel <- ckgShare

    cs := (<-channel).(BFVCryptosystem)
    return cs, BFVSecretShare{sk: sk, cs: cs}
}

func (cs BFVCryptosystem) Encrypt(plaintext *big.Int) (Ciphertext, error) {
    if plaintext == nil || plaintext.Sign() < 0 || plaintext.Cmp(cs.N()) >= 0 {
        return nil, fmt.Errorf("%w: %v not in [0, t)", ErrDomain, plaintext)
    }
    encoder := bfv.NewEncoder(cs.params)
    pt := bfv.NewPlaintext(cs.params)
    encoder.EncodeUint([]uint64{plaintext.Uint64()}, pt)
    encryptor := bfv.NewEncryptorFromPk(cs.params, cs.pk)
    return BFVCiphertext{msg: encryptor.EncryptNew(pt)}, nil
}

func (cs BFVCryptosystem) Add(a, b Ciphertext) (Ciphertext, error) {
    evaluator := bfv.NewEvaluator(cs.params)
    return BFVCiphertext{msg: evaluator.AddNew(a.(BFVCiphertext).msg, b.(BFVCiphertext).msg)}, nil
}

func (cs BFVCryptosystem) Scale(ciphertext Ciphertext, factor *big.Int) (Ciphertext, error) {
    k := new(big.Int).Mod(factor, cs.N())
    evaluator := bfv.NewEvaluator(cs.params)
    return BFVCiphertext{msg: evaluator.MulScalarNew(ciphertext.(BFVCiphertext).msg, k.Uint64())}, nil
}

func (cs BFVCryptosystem) CombinePartials(parts []PartialResult) (*big.Int, error) {
    pcks := dbfv.NewPCKSProtocol(cs.params, 3.19)
    pcksCombined := pcks.AllocateShares()
    for _, part := range parts {
        pcks.AggregateShares(part.(BFVPartial).part, pcksCombined, pcksCombined)
    }

    enc := parts[0].(BFVPartial).ciphertext
    encOut := bfv.NewCiphertext(cs.params, 1)
    pcks.KeySwitch(pcksCombined, enc.msg, encOut)

    decryptor := bfv.NewDecryptor(cs.params, cs.tsk)
    ptres := bfv.NewPlaintext(cs.params)
    decryptor.Decrypt(encOut, ptres)
    encoder := bfv.NewEncoder(cs.params)
    dec := encoder.DecodeUint(ptres)

    return new(big.Int).SetUint64(dec[0]), nil
}

func (cs BFVCryptosystem) EvaluationSpace() gm.Space {
    return bfvSpace{cs}
}

func (cs BFVCryptosystem) N() *big.Int {
    return new(big.Int).SetUint64(cs.params.T)
}

func (sk BFVSecretShare) PartialDecrypt(ciphertext Ciphertext) (PartialResult, error) {
    pcks := dbfv.NewPCKSProtocol(sk.cs.params, 3.19)
    pcksShare := pcks.AllocateShares()
    pcks.GenShare(sk.sk.Get(), sk.cs.tpk, ciphertext.(BFVCiphertext).msg, pcksShare)
    return BFVPartial{part: pcksShare, ciphertext: ciphertext.(BFVCiphertext)}, nil
}

func ConvertBFVSecretShares(sksIn []BFVSecretShare) []SecretShare {
    sksOut := make([]SecretShare, len(sksIn))
    for i, val := range sksIn {
        sksOut[i] = SecretShare(val)
    }
    return sksOut
}

// evaluation space over lattice ciphertexts

type bfvSpace struct {
    BFVCryptosystem
}

func (cs bfvSpace) Add(a, b interface{}) (interface{}, error) {
    return cs.BFVCryptosystem.Add(a, b)
}

func (cs bfvSpace) Subtract(a, b interface{}) (diff interface{}, err error) {
    neg, err := cs.BFVCryptosystem.Scale(b, big.NewInt(-1))
    if err != nil {
        return nil, err
    }
    return cs.BFVCryptosystem.Add(a, neg)
}

func (cs bfvSpace) Multiply(a, b interface{}) (product interface{}, err error) {
    return nil, fmt.Errorf("%w: relinearization keys are not generated for this scheme", ErrConfiguration)
}

func (cs bfvSpace) Scale(ciphertext interface{}, factor interface{}) (product interface{}, err error) {
    return cs.BFVCryptosystem.Scale(ciphertext, factor.(*big.Int))
}

func (cs bfvSpace) Scalarspace() bool {
    return false
}
