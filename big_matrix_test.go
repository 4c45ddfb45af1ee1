package tdj

import (
    "crypto/rand"
    "math/big"
    "testing"
)

func sliceToBigInt(ints []int64) []*big.Int {
    bigs := make([]*big.Int, len(ints))
    for i, val := range ints {
        bigs[i] = big.NewInt(val)
    }
    return bigs
}

func testDJSetting(t *testing.T, threshold, n int) (Setting, []DJSecretShare) {
    cs, sks, err := NewDJCryptosystem(rand.Reader, 64, 1, threshold, n)
    if err != nil {
        t.Fatal(err)
    }
    return NewSetting(cs, n, threshold), sks
}

func decryptCipherMatrix(t *testing.T, cipher CipherMatrix, sks []DJSecretShare, setting Setting) BigMatrix {
    partMats := make([]PartialMatrix, setting.Threshold())
    for i := 0; i < setting.Threshold(); i += 1 {
        pm, err := PartialDecryptMatrix(cipher, sks[i])
        if err != nil {t.Fatal(err)}
        partMats[i] = pm
    }
    dec, err := CombineMatrixShares(partMats, setting)
    if err != nil {t.Fatal(err)}
    return dec
}

func TestPlainMatrixArithmetic(t *testing.T) {
    a := NewBigMatrix(2, 2, sliceToBigInt([]int64{1, 2, 3, 4}))
    b := NewBigMatrix(2, 2, sliceToBigInt([]int64{5, 6, 7, 8}))

    t.Run("multiplication", func(t *testing.T) {
        c := MatMul(a, b)
        corr := NewBigMatrix(2, 2, sliceToBigInt([]int64{19, 22, 43, 50}))
        for i := 0; i < 2; i += 1 {
            for j := 0; j < 2; j += 1 {
                if c.At(i, j).Cmp(corr.At(i, j)) != 0 {
                    t.Errorf("wrong value at (%d, %d)", i, j)
                }
            }
        }
    })

    t.Run("addition", func(t *testing.T) {
        c := MatAdd(a, b)
        corr := NewBigMatrix(2, 2, sliceToBigInt([]int64{6, 8, 10, 12}))
        for i := range c.values {
            if c.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in addition")
            }
        }
    })

    t.Run("subtraction", func(t *testing.T) {
        c := MatSub(b, a)
        corr := NewBigMatrix(2, 2, sliceToBigInt([]int64{4, 4, 4, 4}))
        for i := range c.values {
            if c.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in subtraction")
            }
        }
    })

    t.Run("scaling", func(t *testing.T) {
        c := MatScaMul(a, 3)
        corr := NewBigMatrix(2, 2, sliceToBigInt([]int64{3, 6, 9, 12}))
        for i := range c.values {
            if c.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in scaling")
            }
        }
    })

    t.Run("size mismatch", func(t *testing.T) {
        defer func() {
            if recover() == nil {
                t.Error("expected panic for mismatched sizes")
            }
        }()
        MatAdd(a, NewBigMatrix(1, 2, nil))
    })
}

func TestEncryptedMatrixRoundtrip(t *testing.T) {
    setting, sks := testDJSetting(t, 2, 3)
    a := NewBigMatrix(2, 3, sliceToBigInt([]int64{1, 2, 3, 4, 5, 6}))
    cipher, err := EncryptMatrix(a, setting)
    if err != nil {t.Fatal(err)}
    dec := decryptCipherMatrix(t, cipher, sks, setting)
    for i := range a.values {
        if dec.values[i].Cmp(a.values[i]) != 0 {
            t.Error("wrong value after matrix decryption")
        }
    }
}

func TestEncryptedMatrixArithmetic(t *testing.T) {
    setting, sks := testDJSetting(t, 2, 3)
    cs := setting.Cryptosystem()
    a := NewBigMatrix(2, 2, sliceToBigInt([]int64{1, 2, 3, 4}))
    b := NewBigMatrix(2, 2, sliceToBigInt([]int64{5, 6, 7, 8}))
    ea, err := EncryptMatrix(a, setting)
    if err != nil {t.Fatal(err)}
    eb, err := EncryptMatrix(b, setting)
    if err != nil {t.Fatal(err)}

    t.Run("addition", func(t *testing.T) {
        sum, err := MatEncAdd(ea, eb, cs)
        if err != nil {t.Fatal(err)}
        dec := decryptCipherMatrix(t, sum, sks, setting)
        corr := MatAdd(a, b)
        for i := range corr.values {
            if dec.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in encrypted addition")
            }
        }
    })

    t.Run("subtraction", func(t *testing.T) {
        diff, err := MatEncSub(eb, ea, cs)
        if err != nil {t.Fatal(err)}
        dec := decryptCipherMatrix(t, diff, sks, setting)
        corr := MatSub(b, a)
        for i := range corr.values {
            if dec.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in encrypted subtraction")
            }
        }
    })

    t.Run("scaling", func(t *testing.T) {
        prod, err := MatEncScale(ea, big.NewInt(7), cs)
        if err != nil {t.Fatal(err)}
        dec := decryptCipherMatrix(t, prod, sks, setting)
        corr := MatScaMul(a, 7)
        for i := range corr.values {
            if dec.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in encrypted scaling")
            }
        }
    })

    t.Run("right multiplication", func(t *testing.T) {
        prod, err := MatEncRightMul(ea, b, cs)
        if err != nil {t.Fatal(err)}
        dec := decryptCipherMatrix(t, prod, sks, setting)
        corr := MatMul(a, b)
        for i := range corr.values {
            if dec.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in encrypted right multiplication")
            }
        }
    })

    t.Run("left multiplication", func(t *testing.T) {
        prod, err := MatEncLeftMul(a, eb, cs)
        if err != nil {t.Fatal(err)}
        dec := decryptCipherMatrix(t, prod, sks, setting)
        corr := MatMul(a, b)
        for i := range corr.values {
            if dec.values[i].Cmp(corr.values[i]) != 0 {
                t.Error("wrong value in encrypted left multiplication")
            }
        }
    })
}

func TestSampleMatrix(t *testing.T) {
    q := big.NewInt(1000)
    a, err := SampleMatrix(rand.Reader, 3, 4, q)
    if err != nil {t.Fatal(err)}
    if a.Rows() != 3 || a.Cols() != 4 {
        t.Error("wrong dimensions")
    }
    for _, v := range a.values {
        if v.Sign() < 0 || v.Cmp(q) >= 0 {
            t.Error("sampled value out of range")
        }
    }
}

func TestEvaluationSpace(t *testing.T) {
    setting, sks := testDJSetting(t, 2, 3)
    space := setting.Cryptosystem().EvaluationSpace()
    if space.Scalarspace() {
        t.Error("ciphertext space reported as scalar space")
    }
    ca, err := setting.Cryptosystem().Encrypt(big.NewInt(10))
    if err != nil {t.Fatal(err)}
    cb, err := setting.Cryptosystem().Encrypt(big.NewInt(4))
    if err != nil {t.Fatal(err)}

    diff, err := space.Subtract(ca, cb)
    if err != nil {t.Fatal(err)}
    scaled, err := space.Scale(diff, big.NewInt(5))
    if err != nil {t.Fatal(err)}

    parts := make([]PartialResult, 2)
    for i := 0; i < 2; i += 1 {
        parts[i], err = sks[i].PartialDecrypt(scaled)
        if err != nil {t.Fatal(err)}
    }
    dec, err := setting.Cryptosystem().CombinePartials(parts)
    if err != nil {t.Fatal(err)}
    if dec.Cmp(big.NewInt(30)) != 0 {
        t.Errorf("wrong value through evaluation space: got %v, want 30", dec)
    }

    if _, err := space.Multiply(ca, cb); err == nil {
        t.Error("expected ciphertext multiplication to be unsupported")
    }
}
