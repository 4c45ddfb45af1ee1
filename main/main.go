package main

import (
    "crypto/rand"
    "fmt"
    "io/ioutil"
    "math/big"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/cryptovote/tdj"
)

func main() {
    startT := time.Now()

    if len(os.Args) != 6 {
        fmt.Println("Wrong number of arguments: n-bits s threshold n-shares file-with-values")
        os.Exit(1)
    }

    nBits, err := strconv.Atoi(os.Args[1])
    if err != nil {
        fmt.Println("Error when parsing n-bits")
        os.Exit(1)
    }
    s, err := strconv.Atoi(os.Args[2])
    if err != nil {
        fmt.Println("Error when parsing s")
        os.Exit(1)
    }
    threshold, err := strconv.Atoi(os.Args[3])
    if err != nil {
        fmt.Println("Error when parsing threshold")
        os.Exit(1)
    }
    nShares, err := strconv.Atoi(os.Args[4])
    if err != nil {
        fmt.Println("Error when parsing n-shares")
        os.Exit(1)
    }
    values := parseValueFile(os.Args[5])

    pk, shares, err := tdj.Keygen(rand.Reader, nBits, s, threshold, nShares)
    if err != nil {
        fmt.Printf("Key generation failed: %v\n", err)
        os.Exit(1)
    }
    fmt.Printf("Generated %d key shares with threshold %d\n", nShares, threshold)

    ciphers, err := pk.EncryptSequence(rand.Reader, values)
    if err != nil {
        fmt.Printf("Encryption failed: %v\n", err)
        os.Exit(1)
    }

    sum := ciphers[0]
    for _, c := range ciphers[1:] {
        sum, err = sum.Add(c)
        if err != nil {
            fmt.Printf("Homomorphic addition failed: %v\n", err)
            os.Exit(1)
        }
    }

    ring, err := tdj.NewPrivateKeyRing(shares[:threshold])
    if err != nil {
        fmt.Printf("Ring construction failed: %v\n", err)
        os.Exit(1)
    }
    plains, err := ring.DecryptSequence(ciphers)
    if err != nil {
        fmt.Printf("Decryption failed: %v\n", err)
        os.Exit(1)
    }
    for i, m := range plains {
        fmt.Printf("value %d: %v\n", i+1, m)
    }
    total, err := ring.Decrypt(sum)
    if err != nil {
        fmt.Printf("Decryption failed: %v\n", err)
        os.Exit(1)
    }
    fmt.Printf("homomorphic sum: %v\n", total)

    fmt.Printf("done in %v\n", time.Since(startT))
}

func parseValueFile(filename string) []*big.Int {
    content, err := ioutil.ReadFile(filename)
    if err != nil {
        fmt.Printf("Error when reading %s\n", filename)
        os.Exit(1)
    }
    fields := strings.Fields(string(content))
    values := make([]*big.Int, len(fields))
    for i, f := range fields {
        v, ok := new(big.Int).SetString(f, 10)
        if !ok {
            fmt.Printf("Error when parsing value %s\n", f)
            os.Exit(1)
        }
        values[i] = v
    }
    if len(values) == 0 {
        fmt.Println("No values to encrypt")
        os.Exit(1)
    }
    return values
}
