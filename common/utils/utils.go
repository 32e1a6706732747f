package utils

import (
	"fmt"
	"math/big"
	"strings"

	"marketscan/common/types"
)

// ZeroAddress transfers from this address are mints
const ZeroAddress = types.Address("0x0000000000000000000000000000000000000000")

// NFTId derives the canonical NFT id from its identifying triple. The id is a
// pure function of the triple, re-deriving it always yields the same value.
func NFTId(category types.Category, contract types.Address, tokenId types.BigInt) string {
	return string(category) + "-" + string(contract) + "-" + string(tokenId)
}

// ParseTokenId normalizes a token id to a decimal string, ok is false when the
// input cannot be parsed to a non-empty value.
func ParseTokenId(raw string) (types.BigInt, bool) {
	if raw == "" {
		return "", false
	}
	b, ok := new(big.Int).SetString(raw, 0)
	if !ok || b.Sign() < 0 {
		return "", false
	}
	return types.BigInt(b.Text(10)), true
}

// HexToBigInt converts a hexadecimal string without 0x prefix to a decimal
// BigInt (illegal input will return 0)
func HexToBigInt(hex string) types.BigInt {
	b := new(big.Int)
	b.SetString(hex, 16)
	return types.BigInt(b.Text(10))
}

var (
	two128 = new(big.Int).Lsh(big.NewInt(1), 128)
	two127 = new(big.Int).Lsh(big.NewInt(1), 127)
)

// DecodeLANDTokenId splits a LAND token id into its coordinates. The registry
// packs x into the high 128 bits and y into the low 128 bits, both as 128-bit
// two's complement.
func DecodeLANDTokenId(tokenId types.BigInt) (x, y int32, err error) {
	b, ok := new(big.Int).SetString(string(tokenId), 0)
	if !ok || b.Sign() < 0 || b.BitLen() > 256 {
		return 0, 0, fmt.Errorf("illegal LAND token id %q", tokenId)
	}
	hi, lo := new(big.Int).Rsh(b, 128), new(big.Int).And(b, new(big.Int).Sub(two128, big.NewInt(1)))
	return signed128(hi), signed128(lo), nil
}

// EncodeLANDTokenId packs coordinates into a LAND token id, inverse of
// DecodeLANDTokenId.
func EncodeLANDTokenId(x, y int32) types.BigInt {
	b := new(big.Int).Lsh(unsigned128(x), 128)
	b.Or(b, unsigned128(y))
	return types.BigInt(b.Text(10))
}

func signed128(b *big.Int) int32 {
	if b.Cmp(two127) >= 0 {
		b = new(big.Int).Sub(b, two128)
	}
	return int32(b.Int64())
}

func unsigned128(v int32) *big.Int {
	b := big.NewInt(int64(v))
	if v < 0 {
		b.Add(b, two128)
	}
	return b
}

// ParsePage parses pagination parameters, maximum 100 records, default 10
// records on page 1
func ParsePage(pagePtr, sizePtr *int) (int, int, error) {
	page, size := 1, 10
	if pagePtr != nil {
		if page = *pagePtr; page < 1 {
			return 0, 0, fmt.Errorf("illegal page %v", page)
		}
	}
	if sizePtr != nil {
		if size = *sizePtr; size < 1 || size > 100 {
			return 0, 0, fmt.Errorf("illegal page_size %v", size)
		}
	}
	return page, size, nil
}

// LowerAddress normalizes an address for use as a map or table key.
func LowerAddress(addr types.Address) types.Address {
	return types.Address(strings.ToLower(string(addr)))
}
