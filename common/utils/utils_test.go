package utils

import (
	"encoding/hex"
	"fmt"
	"testing"

	"marketscan/common/types"
)

func TestNFTId(t *testing.T) {
	contract := types.Address("0xf87e31492faf9a91b02ee0deaad50d51d56d5d4d")
	id := NFTId(types.CategoryParcel, contract, "3402823669209384634633746074317682114565")
	if id != "parcel-0xf87e31492faf9a91b02ee0deaad50d51d56d5d4d-3402823669209384634633746074317682114565" {
		t.Error("unexpected NFT id", id)
	}
	if id != NFTId(types.CategoryParcel, contract, "3402823669209384634633746074317682114565") {
		t.Error("NFT id is not deterministic")
	}
}

func TestParseTokenId(t *testing.T) {
	if v, ok := ParseTokenId("0x0a"); !ok || v != "10" {
		t.Error("hex token id", v, ok)
	}
	if v, ok := ParseTokenId("42"); !ok || v != "42" {
		t.Error("decimal token id", v, ok)
	}
	for _, raw := range []string{"", "-1", "bad"} {
		if _, ok := ParseTokenId(raw); ok {
			t.Error("accepted illegal token id", raw)
		}
	}
}

func TestLANDTokenId(t *testing.T) {
	for _, c := range []struct{ x, y int32 }{
		{0, 0}, {1, 2}, {10, -5}, {-150, 150}, {-72, -72},
	} {
		tokenId := EncodeLANDTokenId(c.x, c.y)
		x, y, err := DecodeLANDTokenId(tokenId)
		if err != nil {
			t.Fatal(err)
		}
		if x != c.x || y != c.y {
			t.Errorf("round trip (%v,%v) became (%v,%v)", c.x, c.y, x, y)
		}
	}
	// x=1 y=1 packs to 2^128+1
	if EncodeLANDTokenId(1, 1) != "340282366920938463463374607431768211457" {
		t.Error("unexpected packing", EncodeLANDTokenId(1, 1))
	}
	if _, _, err := DecodeLANDTokenId("bad"); err == nil {
		t.Error("decoded illegal token id")
	}
}

func TestRecoverAddress(t *testing.T) {
	hexKey := "7bbfec284ee43e328438d46ec803863c8e1367ab46072f7864c07e0a03ba61fd"
	key, err := HexToECDSA(hexKey)
	if err != nil {
		t.Fatal(err)
	}
	addr := PubkeyToAddress(key.PubKey())
	msg := "alice"

	prefixed := fmt.Sprintf("\x19Ethereum Signed Message:\n%d%s", len(msg), msg)
	sig, err := Sign(Keccak256([]byte(prefixed)), key)
	if err != nil {
		t.Fatal(err)
	}
	sig[64] += 27

	recovered, err := RecoverAddress(msg, "0x"+hex.EncodeToString(sig))
	if err != nil {
		t.Fatal(err)
	}
	if recovered != addr {
		t.Error("recovered", recovered, "want", addr)
	}
}

func TestParsePage(t *testing.T) {
	page, size, err := ParsePage(nil, nil)
	if err != nil || page != 1 || size != 10 {
		t.Error("defaults", page, size, err)
	}
	bad := 0
	if _, _, err = ParsePage(&bad, nil); err == nil {
		t.Error("accepted page 0")
	}
	big := 101
	if _, _, err = ParsePage(nil, &big); err == nil {
		t.Error("accepted page_size 101")
	}
}
