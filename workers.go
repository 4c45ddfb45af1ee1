package tdj

import (
    "fmt"
    "math/big"
)

// Parallel batch operations. Share holders run as separate goroutines that
// hold their share for the whole batch; only ciphertexts go in and only
// partial decryptions come out, so the worker layout mirrors the trust
// boundary between principals.

type indexedPlain struct {
    index int
    value *big.Int
}

type indexedCipher struct {
    index int
    value Ciphertext
}

// encryptionWorker encrypts every value received on its job channel
func encryptionWorker(cs Cryptosystem, jobs <-chan indexedPlain, results chan<- indexedCipher) {
    for job := range jobs {
        cipher, err := cs.Encrypt(job.value)
        if err != nil {panic(err)}
        results <- indexedCipher{index: job.index, value: cipher}
    }
}

// EncryptSequenceParallel encrypts a sequence across workers goroutines,
// preserving order; each value still gets independent randomness
func EncryptSequenceParallel(values []*big.Int, setting Setting, workers int) ([]Ciphertext, error) {
    if workers < 1 {
        return nil, fmt.Errorf("%w: need at least one worker", ErrConfiguration)
    }
    jobs := make(chan indexedPlain, len(values))
    results := make(chan indexedCipher, len(values))
    for w := 0; w < workers; w += 1 {
        go encryptionWorker(setting.cs, jobs, results)
    }
    for i, v := range values {
        jobs <- indexedPlain{index: i, value: v}
    }
    close(jobs)
    ciphers := make([]Ciphertext, len(values))
    for range values {
        res := <-results
        ciphers[res.index] = res.value
    }
    return ciphers, nil
}

// ShareHolderWorker partially decrypts every ciphertext received on its
// channel; the share itself never leaves the goroutine
func ShareHolderWorker(sk SecretShare, ciphers <-chan Ciphertext, partials chan<- PartialResult) {
    for cipher := range ciphers {
        part, err := sk.PartialDecrypt(cipher)
        if err != nil {panic(err)}
        partials <- part
    }
}

// DecryptSequenceParallel hands each ciphertext to threshold share-holder
// goroutines and combines their partial decryptions, preserving order
func DecryptSequenceParallel(ciphers []Ciphertext, sks []SecretShare, setting Setting) ([]*big.Int, error) {
    if len(sks) < setting.T {
        return nil, fmt.Errorf("%w: need %d shares, have %d", ErrInsufficientShares, setting.T, len(sks))
    }
    holders := sks[:setting.T]
    cipherChannels := make([]chan Ciphertext, len(holders))
    partialChannels := make([]chan PartialResult, len(holders))
    for i, sk := range holders {
        cipherChannels[i] = make(chan Ciphertext)
        partialChannels[i] = make(chan PartialResult)
        go ShareHolderWorker(sk, cipherChannels[i], partialChannels[i])
    }
    defer func() {
        for _, ch := range cipherChannels {
            close(ch)
        }
    }()

    plains := make([]*big.Int, len(ciphers))
    parts := make([]PartialResult, len(holders))
    for i, cipher := range ciphers {
        for _, ch := range cipherChannels {
            ch <- cipher
        }
        for j, ch := range partialChannels {
            parts[j] = <-ch
        }
        plain, err := setting.cs.CombinePartials(parts)
        if err != nil {
            return nil, err
        }
        plains[i] = plain
    }
    return plains, nil
}
