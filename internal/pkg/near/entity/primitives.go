package entity

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/mr-tron/base58"
)

type (
	AccountId    string
	CryptoHash   string
	PublicKey    string
	Signature    string
	EpochId      string
	PeerId       string
	Balance      string
	Gas          uint64
	Nonce        uint64
	BlockHeight  uint64
	ShardId      uint64
	StorageUsage uint64
)

func (a AccountId) String() string { return string(a) }

func (a AccountId) MarshalText() ([]byte, error) { return []byte(a), nil }

func (a *AccountId) UnmarshalText(text []byte) error {
	*a = AccountId(text)
	return nil
}

func (h CryptoHash) String() string { return string(h) }

func (h CryptoHash) MarshalText() ([]byte, error) { return []byte(h), nil }

func (h *CryptoHash) UnmarshalText(text []byte) error {
	*h = CryptoHash(text)
	return nil
}

// Bytes decodes the base58 hash.
func (h CryptoHash) Bytes() ([]byte, error) {
	return base58.Decode(string(h))
}

func (k PublicKey) String() string { return string(k) }

func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k), nil }

func (k *PublicKey) UnmarshalText(text []byte) error {
	*k = PublicKey(text)
	return nil
}

const (
	KeyTypeED25519   = "ed25519"
	KeyTypeSECP256K1 = "secp256k1"
)

// KeyType returns the curve prefix, ed25519 when the key has none.
func (k PublicKey) KeyType() string {
	if prefix, _, ok := strings.Cut(string(k), ":"); ok {
		return prefix
	}
	return KeyTypeED25519
}

// Data decodes the base58 key material.
func (k PublicKey) Data() ([]byte, error) {
	raw := string(k)
	if _, data, ok := strings.Cut(raw, ":"); ok {
		raw = data
	}
	return base58.Decode(raw)
}

func (b Balance) String() string { return string(b) }

// BigInt parses the yoctoNEAR amount.
func (b Balance) BigInt() (*big.Int, error) {
	v, ok := new(big.Int).SetString(string(b), 10)
	if !ok {
		return nil, fmt.Errorf("invalid balance %q", string(b))
	}
	return v, nil
}

func NewBalance(v *big.Int) Balance {
	return Balance(v.String())
}

// Rational is a [numerator, denominator] pair.
type Rational [2]int32

// ByteArray is a byte slice encoded as a JSON array of numbers.
type ByteArray []byte

func (b ByteArray) MarshalJSON() ([]byte, error) {
	nums := make([]uint16, len(b))
	for i, v := range b {
		nums[i] = uint16(v)
	}
	return json.Marshal(nums)
}

func (b *ByteArray) UnmarshalJSON(data []byte) error {
	var nums []uint16
	if err := json.Unmarshal(data, &nums); err != nil {
		return err
	}
	if nums == nil {
		*b = nil
		return nil
	}

	out := make(ByteArray, len(nums))
	for i, v := range nums {
		if v > 0xff {
			return fmt.Errorf("byte value %d out of range", v)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}
