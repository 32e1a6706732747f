package service

import (
	"math/big"
)

// ErrRes interface error message returned
type ErrRes struct {
	ErrStr string `json:"err_str"` //Error message
}

// BigIntAdd adds two large number strings and returns a decimal large number string
func BigIntAdd(a, b string) string {
	aa, ok := new(big.Int).SetString(a, 0)
	if !ok {
		panic("big add err:" + a)
	}
	bb, ok := new(big.Int).SetString(b, 0)
	if !ok {
		panic("big add err:" + b)
	}
	cc := aa.Add(aa, bb)
	if cc.Sign() == -1 {
		panic("big add err:" + cc.String())
	}
	return cc.Text(10)
}

// DaoCut the fee collector share of a sale, cut is expressed per million.
// Integer division, the remainder stays with the seller.
func DaoCut(price string, cutPerMillion int64) string {
	value, ok := new(big.Int).SetString(price, 0)
	if !ok || value.Sign() == -1 {
		return "0"
	}
	value = value.Mul(value, big.NewInt(cutPerMillion))
	return value.Div(value, big.NewInt(1000000)).Text(10)
}
