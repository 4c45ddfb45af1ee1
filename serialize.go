package tdj

import (
    "encoding/json"
    "fmt"
    "math/big"
)

// Wire encodings. JSON carries arbitrary-precision integers exactly, so a
// serialize/deserialize round trip is lossless. A ciphertext travels with
// the modulus and exponent of its key so the receiver can rebind it; a key
// share travels without its key, which the holder binds after loading.

type publicKeyJSON struct {
    N *big.Int `json:"n"`
    S int `json:"s"`
    G *big.Int `json:"g"`
}

func (pk *PublicKey) MarshalJSON() ([]byte, error) {
    return json.Marshal(publicKeyJSON{N: pk.N, S: pk.S, G: pk.G})
}

func (pk *PublicKey) UnmarshalJSON(data []byte) error {
    var enc publicKeyJSON
    if err := json.Unmarshal(data, &enc); err != nil {
        return err
    }
    if enc.N == nil || enc.N.Sign() <= 0 || enc.S < 1 {
        return fmt.Errorf("%w: malformed public key encoding", ErrConfiguration)
    }
    *pk = *newPublicKey(enc.N, enc.S)
    if enc.G != nil {
        pk.G = enc.G
    }
    return nil
}

type privateKeyShareJSON struct {
    Index int `json:"index"`
    Value *big.Int `json:"value"`
    Threshold int `json:"threshold"`
    Shares int `json:"shares"`
}

func (sk *PrivateKeyShare) MarshalJSON() ([]byte, error) {
    return json.Marshal(privateKeyShareJSON{
        Index: sk.Index,
        Value: sk.Value,
        Threshold: sk.Threshold,
        Shares: sk.Shares,
    })
}

func (sk *PrivateKeyShare) UnmarshalJSON(data []byte) error {
    var enc privateKeyShareJSON
    if err := json.Unmarshal(data, &enc); err != nil {
        return err
    }
    if enc.Value == nil || enc.Index < 1 || enc.Threshold < 1 || enc.Shares < enc.Threshold {
        return fmt.Errorf("%w: malformed key share encoding", ErrConfiguration)
    }
    sk.Index = enc.Index
    sk.Value = enc.Value
    sk.Threshold = enc.Threshold
    sk.Shares = enc.Shares
    sk.Key = nil
    return nil
}

// Bind attaches the public key a deserialized share belongs to
func (sk *PrivateKeyShare) Bind(pk *PublicKey) {
    sk.Key = pk
}

type encryptedNumberJSON struct {
    Value *big.Int `json:"value"`
    Exponent int `json:"exponent"`
    N *big.Int `json:"n"`
    S int `json:"s"`
}

func (c *EncryptedNumber) MarshalJSON() ([]byte, error) {
    return json.Marshal(encryptedNumberJSON{
        Value: c.Value,
        Exponent: c.Exponent,
        N: c.Key.N,
        S: c.Key.S,
    })
}

func (c *EncryptedNumber) UnmarshalJSON(data []byte) error {
    var enc encryptedNumberJSON
    if err := json.Unmarshal(data, &enc); err != nil {
        return err
    }
    if enc.Value == nil || enc.N == nil || enc.N.Sign() <= 0 || enc.S < 1 {
        return fmt.Errorf("%w: malformed ciphertext encoding", ErrConfiguration)
    }
    c.Value = enc.Value
    c.Exponent = enc.Exponent
    c.Key = newPublicKey(enc.N, enc.S)
    return nil
}
