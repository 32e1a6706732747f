package utils

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"marketscan/common/types"
)

var (
	tokenURISelector = "0xc87b56dd" //tokenURI(uint256)
	ownerOfSelector  = "0x6352211e" //ownerOf(uint256)
)

type ContractClient interface {
	CallContract(ctx context.Context, msg map[string]interface{}, number *types.BigInt) (types.Data, error)
}

// TokenURI queries the metadata URI of a token (optional ERC721 interface)
func TokenURI(client ContractClient, ctx context.Context, address types.Address, tokenId types.BigInt) (string, error) {
	msg := map[string]interface{}{
		"to":   address,
		"data": tokenURISelector + abiEncodeUint256(tokenId),
	}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return "", err
	}
	return ABIDecodeString(string(out))
}

// OwnerOf queries the current owner of a token
func OwnerOf(client ContractClient, ctx context.Context, address types.Address, tokenId types.BigInt) (types.Address, error) {
	msg := map[string]interface{}{
		"to":   address,
		"data": ownerOfSelector + abiEncodeUint256(tokenId),
	}
	out, err := client.CallContract(ctx, msg, nil)
	if err != nil {
		return "", err
	}
	return ABIDecodeAddress(string(out))
}

func abiEncodeUint256(value types.BigInt) string {
	b, ok := new(big.Int).SetString(string(value), 0)
	if !ok {
		b = new(big.Int)
	}
	return fmt.Sprintf("%064x", b)
}

// ABIDecodeString decodes a single dynamic string return value
func ABIDecodeString(out string) (string, error) {
	out = strings.TrimPrefix(out, "0x")
	if len(out) < 128 {
		return "", fmt.Errorf("return value length %v is illegal", len(out))
	}
	length, ok := new(big.Int).SetString(out[64:128], 16)
	if !ok || 128+length.Int64()*2 > int64(len(out)) {
		return "", fmt.Errorf("return value is illegal")
	}
	data, err := hex.DecodeString(out[128 : 128+length.Int64()*2])
	return string(data), err
}

// ABIDecodeAddress decodes a single address return value
func ABIDecodeAddress(out string) (types.Address, error) {
	out = strings.TrimPrefix(out, "0x")
	if len(out) != 64 {
		return "", fmt.Errorf("return value length %v is illegal", len(out))
	}
	return types.Address("0x" + out[24:]), nil
}
