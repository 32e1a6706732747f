// Package types defines the string-backed scalar types shared by the models,
// the services and the API.
package types

import (
	"fmt"
	"math/big"
	"strconv"
)

// Address hexadecimal string with 0x prefix, always lowercase, 42 characters
type Address string

// UnmarshalJSON implements json.Unmarshaler.
func (a *Address) UnmarshalJSON(input []byte) error {
	return a.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *Address) UnmarshalText(input []byte) error {
	*a = Address(input)
	return nil
}

// Hash hexadecimal string with 0x prefix, 66 characters
type Hash string

// UnmarshalJSON implements json.Unmarshaler.
func (h *Hash) UnmarshalJSON(input []byte) error {
	return h.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler
func (h *Hash) UnmarshalText(input []byte) error {
	*h = Hash(input)
	return nil
}

// Data hexadecimal string with 0x prefix and no length limit
type Data string

// UnmarshalJSON implements json.Unmarshaler.
func (d *Data) UnmarshalJSON(input []byte) error {
	return d.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Data) UnmarshalText(input []byte) error {
	*d = Data(input)
	return nil
}

// Uint64 decodes from both decimal and 0x-prefixed hexadecimal
type Uint64 uint64

// UnmarshalJSON implements json.Unmarshaler.
func (u *Uint64) UnmarshalJSON(input []byte) error {
	if len(input) > 2 && input[0] == '"' {
		input = input[1 : len(input)-1]
	}
	return u.UnmarshalText(input)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (u *Uint64) UnmarshalText(input []byte) error {
	value, err := strconv.ParseUint(string(input), 0, 64)
	*u = Uint64(value)
	return err
}

func (u Uint64) Hex() string {
	return "0x" + strconv.FormatUint(uint64(u), 16)
}

// BigInt big number represented by decimal string
type BigInt string

// UnmarshalJSON implements json.Unmarshaler.
func (b *BigInt) UnmarshalJSON(input []byte) error {
	return b.UnmarshalText(input[1 : len(input)-1])
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *BigInt) UnmarshalText(input []byte) error {
	t := new(big.Int)
	if err := t.UnmarshalText(input); err != nil {
		return err
	}
	*b = BigInt(t.String())
	return nil
}

func (b BigInt) Hex() string {
	t, ok := new(big.Int).SetString(string(b), 0)
	if !ok {
		return "0x0"
	}
	return "0x" + t.Text(16)
}

// Category NFT sub-type, decides which specialized entity and search fields apply
type Category string

const (
	CategoryParcel   Category = "parcel"
	CategoryEstate   Category = "estate"
	CategoryWearable Category = "wearable"
	CategoryENS      Category = "ens"
	CategoryOther    Category = "other"
)

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(input []byte) error {
	switch Category(input) {
	case CategoryParcel, CategoryEstate, CategoryWearable, CategoryENS, CategoryOther:
		*c = Category(input)
		return nil
	}
	return fmt.Errorf("unknown category %q", input)
}

// OrderStatus marketplace order state, open is the only non-absorbing state
type OrderStatus string

const (
	OrderOpen      OrderStatus = "open"
	OrderSold      OrderStatus = "sold"
	OrderCancelled OrderStatus = "cancelled"
)
