package tdj

import (
    "errors"
    "fmt"
    "io"
    "math/big"
)

// matrices of plaintexts, ciphertexts and partial decryptions; the batch
// surface consumed by aggregation layers

type BigMatrix struct {
    values []*big.Int
    rows, cols int
}

type CipherMatrix struct {
    values []Ciphertext
    rows, cols int
}

type PartialMatrix struct {
    values []PartialResult
    rows, cols int
}

// Create a new 0-indexed BigMatrix with the given size and data. Panics if
// size and data mismatch.
func NewBigMatrix(rows, cols int, data []*big.Int) BigMatrix {
    if data == nil {
        data = make([]*big.Int, rows*cols)
        for i := range data {
            data[i] = big.NewInt(0)
        }
    } else if rows * cols != len(data) {
        panic(errors.New("data structure not matching matrix size"))
    }
    var m BigMatrix
    m.values = data
    m.rows = rows
    m.cols = cols
    return m
}

func (m BigMatrix) Rows() int {
    return m.rows
}

func (m BigMatrix) Cols() int {
    return m.cols
}

// get value of BigMatrix m at (row, col)
func (m BigMatrix) At(row, col int) *big.Int {
    if row >= m.rows || col >= m.cols || row < 0 || col < 0 {
        panic(fmt.Errorf("index out of bounds: (%d, %d)", row, col))
    }
    return m.values[m.cols*row + col]
}

// set value of BigMatrix m at (row, col)
func (m BigMatrix) Set(row, col int, value *big.Int) {
    if row >= m.rows || col >= m.cols || row < 0 || col < 0 {
        panic(fmt.Errorf("index out of bounds: (%d, %d)", row, col))
    }
    m.values[m.cols*row + col] = value
}

func (m CipherMatrix) At(row, col int) Ciphertext {
    if row >= m.rows || col >= m.cols || row < 0 || col < 0 {
        panic(fmt.Errorf("index out of bounds: (%d, %d)", row, col))
    }
    return m.values[m.cols*row + col]
}

// matrix multiplication of unencrypted matrices
func MatMul(a, b BigMatrix) BigMatrix {
    if a.cols != b.rows {
        panic(errors.New("matrices a and b are not compatible"))
    }
    cRows, cCols := a.rows, b.cols
    values := make([]*big.Int, cRows*cCols)
    r := big.NewInt(0)
    for i := 0; i < cRows; i += 1 {
        for j := 0; j < cCols; j += 1 {
            sum := big.NewInt(0)
            for k := 0; k < a.cols; k += 1 {
                r.Mul(a.At(i, k), b.At(k, j))
                sum.Add(r, sum)
            }
            values[i*cCols+j] = sum
        }
    }
    return NewBigMatrix(cRows, cCols, values)
}

// matrix addition of unencrypted matrices
func MatAdd(a, b BigMatrix) BigMatrix {
    if a.rows != b.rows {
        panic(errors.New("row mismatch in addition"))
    } else if a.cols != b.cols {
        panic(errors.New("column mismatch in addition"))
    }
    c := NewBigMatrix(a.rows, a.cols, nil)
    for i := range c.values {
        c.values[i].Add(a.values[i], b.values[i])
    }
    return c
}

// matrix subtraction of unencrypted matrices
func MatSub(a, b BigMatrix) BigMatrix {
    if a.rows != b.rows {
        panic(errors.New("row mismatch in subtraction"))
    } else if a.cols != b.cols {
        panic(errors.New("column mismatch in subtraction"))
    }
    c := NewBigMatrix(a.rows, a.cols, nil)
    for i := range c.values {
        c.values[i].Sub(a.values[i], b.values[i])
    }
    return c
}

// scalar multiplication of matrix for unencrypted values
func MatScaMul(a BigMatrix, b int64) BigMatrix {
    c := NewBigMatrix(a.rows, a.cols, nil)
    bb := big.NewInt(b)
    for i := range c.values {
        c.values[i].Mul(a.values[i], bb)
    }
    return c
}

// encrypt matrix item-wise
func EncryptMatrix(a BigMatrix, setting Setting) (b CipherMatrix, err error) {
    vals := make([]Ciphertext, len(a.values))
    for i := range a.values {
        vals[i], err = setting.cs.Encrypt(a.values[i])
        if err != nil {
            return
        }
    }
    return CipherMatrix{values: vals, rows: a.rows, cols: a.cols}, nil
}

// perform partial decryption for key share sk
func PartialDecryptMatrix(cipher CipherMatrix, sk SecretShare) (partMat PartialMatrix, err error) {
    decVals := make([]PartialResult, len(cipher.values))
    for i, encVal := range cipher.values {
        decVals[i], err = sk.PartialDecrypt(encVal)
        if err != nil {
            return
        }
    }
    partMat = PartialMatrix{values: decVals, rows: cipher.rows, cols: cipher.cols}
    return
}

// combine partial matrix decryptions to receive plaintext matrix
func CombineMatrixShares(partMats []PartialMatrix, setting Setting) (decrypted BigMatrix, err error) {
    decVals := make([]*big.Int, len(partMats[0].values))
    for i := range partMats[0].values {
        elVals := make([]PartialResult, len(partMats))
        for j := range partMats {
            elVals[j] = partMats[j].values[i]
        }
        decVals[i], err = setting.cs.CombinePartials(elVals)
        if err != nil {
            return
        }
    }
    decrypted = NewBigMatrix(partMats[0].rows, partMats[0].cols, decVals)
    return
}

// sample a matrix with size rows x cols, with elements below q
func SampleMatrix(random io.Reader, rows, cols int, q *big.Int) (a BigMatrix, err error) {
    vals := make([]*big.Int, rows*cols)
    for i := range vals {
        vals[i], err = SampleInt(random, q)
        if err != nil {
            return
        }
    }
    return NewBigMatrix(rows, cols, vals), nil
}

// matrix addition for encrypted matrices
func MatEncAdd(a, b CipherMatrix, cs Cryptosystem) (CipherMatrix, error) {
    if a.rows != b.rows {
        panic(errors.New("row mismatch in addition"))
    } else if a.cols != b.cols {
        panic(errors.New("column mismatch in addition"))
    }
    vals := make([]Ciphertext, len(a.values))
    for i := range vals {
        val, err := cs.Add(a.values[i], b.values[i])
        if err != nil {
            return CipherMatrix{}, err
        }
        vals[i] = val
    }
    return CipherMatrix{values: vals, rows: a.rows, cols: a.cols}, nil
}

// matrix subtraction for encrypted matrices
func MatEncSub(a, b CipherMatrix, cs Cryptosystem) (CipherMatrix, error) {
    if a.rows != b.rows {
        panic(errors.New("row mismatch in subtraction"))
    } else if a.cols != b.cols {
        panic(errors.New("column mismatch in subtraction"))
    }
    minusOne := big.NewInt(-1)
    vals := make([]Ciphertext, len(a.values))
    for i := range vals {
        negB, err := cs.Scale(b.values[i], minusOne)
        if err != nil {
            return CipherMatrix{}, err
        }
        val, err := cs.Add(a.values[i], negB)
        if err != nil {
            return CipherMatrix{}, err
        }
        vals[i] = val
    }
    return CipherMatrix{values: vals, rows: a.rows, cols: a.cols}, nil
}

// scalar multiplication for an encrypted matrix
func MatEncScale(a CipherMatrix, k *big.Int, cs Cryptosystem) (CipherMatrix, error) {
    vals := make([]Ciphertext, len(a.values))
    for i := range vals {
        val, err := cs.Scale(a.values[i], k)
        if err != nil {
            return CipherMatrix{}, err
        }
        vals[i] = val
    }
    return CipherMatrix{values: vals, rows: a.rows, cols: a.cols}, nil
}

// matrix multiplication encrypted * plain
func MatEncRightMul(encrypted CipherMatrix, plain BigMatrix, cs Cryptosystem) (c CipherMatrix, err error) {
    if encrypted.cols != plain.rows {
        panic(errors.New("matrices are not compatible"))
    }
    cRows, cCols := encrypted.rows, plain.cols
    values := make([]Ciphertext, cRows*cCols)
    var r Ciphertext
    for i := 0; i < cRows; i += 1 {
        for j := 0; j < cCols; j += 1 {
            var sum Ciphertext
            sum, err = cs.Scale(encrypted.At(i, 0), plain.At(0, j))
            if err != nil {
                return
            }
            for k := 1; k < encrypted.cols; k += 1 {
                r, err = cs.Scale(encrypted.At(i, k), plain.At(k, j))
                if err != nil {
                    return
                }
                sum, err = cs.Add(r, sum)
                if err != nil {
                    return
                }
            }
            values[i*cCols+j] = sum
        }
    }
    return CipherMatrix{values: values, rows: cRows, cols: cCols}, nil
}

// matrix multiplication plain * encrypted
func MatEncLeftMul(plain BigMatrix, encrypted CipherMatrix, cs Cryptosystem) (c CipherMatrix, err error) {
    if plain.cols != encrypted.rows {
        panic(errors.New("matrices are not compatible"))
    }
    cRows, cCols := plain.rows, encrypted.cols
    values := make([]Ciphertext, cRows*cCols)
    var r Ciphertext
    for i := 0; i < cRows; i += 1 {
        for j := 0; j < cCols; j += 1 {
            var sum Ciphertext
            sum, err = cs.Scale(encrypted.At(0, j), plain.At(i, 0))
            if err != nil {
                return
            }
            for k := 1; k < plain.cols; k += 1 {
                r, err = cs.Scale(encrypted.At(k, j), plain.At(i, k))
                if err != nil {
                    return
                }
                sum, err = cs.Add(r, sum)
                if err != nil {
                    return
                }
            }
            values[i*cCols+j] = sum
        }
    }
    return CipherMatrix{values: values, rows: cRows, cols: cCols}, nil
}
