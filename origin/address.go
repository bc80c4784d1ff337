package origin

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
)

const (
	// AddressLength length of address in bytes.
	AddressLength = 32
)

// Address address of an account or object.
type Address [AddressLength]byte

var (
	_ json.Marshaler   = (*Address)(nil)
	_ json.Unmarshaler = (*Address)(nil)
)

// String implements the stringer interface
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bytes returns byte slice form of address.
func (a Address) Bytes() []byte {
	return a[:]
}

// IsZero returns if Address has all zero bytes.
func (a Address) IsZero() bool {
	return a == Address{}
}

// MarshalJSON implements json.Marshaler.
func (a *Address) MarshalJSON() ([]byte, error) {
	if a == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err != nil {
		return err
	}
	parsed, err := ParseAddress(hex)
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}

// ParseAddress convert string presented address into Address type.
func ParseAddress(s string) (*Address, error) {
	if len(s) == AddressLength*2 {
	} else if len(s) == AddressLength*2+2 {
		if strings.ToLower(s[:2]) != "0x" {
			return nil, errors.New("invalid prefix")
		}
		s = s[2:]
	} else {
		return nil, errors.New("invalid length")
	}

	var addr Address
	_, err := hex.Decode(addr[:], []byte(s))
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

// MustParseAddress convert string presented address into Address type, panic on error.
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return *addr
}

// BytesToAddress converts bytes slice into address.
// If b is larger than address length, b will be cropped (from the left).
// If b is smaller than address length, b will be extended (from the left).
func BytesToAddress(b []byte) Address {
	var addr Address
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(addr[AddressLength-len(b):], b)
	return addr
}
