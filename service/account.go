package service

import (
	"errors"
	"strings"

	"marketscan/common/model"
	"marketscan/common/types"
	"marketscan/common/utils"
)

// AccountsRes account paging return parameters
type AccountsRes struct {
	Total    int64            `json:"total"`    //Total number of accounts
	Accounts []*model.Account `json:"accounts"` //Account list
}

func FetchAccounts(page, size int, order string) (res AccountsRes, err error) {
	db := DB.Model(&model.Account{})
	if order != "" {
		db = db.Order(order)
	}
	err = db.Offset((page - 1) * size).Limit(size).Scan(&res.Accounts).Error
	// use stats to speed up queries
	res.Total = stats.TotalAccount
	return
}

type AccountRes struct {
	model.Account
	NFTCount   int64 `json:"nftCount"`   // hold NFT number
	OrderCount int64 `json:"orderCount"` // open order number
}

func GetAccount(addr string) (res AccountRes, err error) {
	s := "*, (SELECT COUNT(*) FROM nfts WHERE owner=accounts.address) AS nft_count"
	s += ", (SELECT COUNT(*) FROM orders WHERE owner=accounts.address AND status='open') AS order_count"
	err = DB.Model(model.Account{}).Where("address=?", strings.ToLower(addr)).Select(s).Scan(&res).Error
	return
}

// SetAccountName sets the display name of a signed account. The signature must
// recover to the account address itself.
func SetAccountName(addr, name, sign string) error {
	recovered, err := utils.RecoverAddress(name, sign)
	if err != nil {
		return err
	}
	if !strings.EqualFold(addr, string(recovered)) {
		return errors.New("signature does not match account")
	}
	addr = strings.ToLower(addr)
	account := model.Account{Address: types.Address(addr), Spent: "0", Earned: "0"}
	if err = DB.Where("address=?", addr).FirstOrCreate(&account).Error; err != nil {
		return err
	}
	return DB.Model(&model.Account{}).Where("address=?", addr).Update("name", name).Error
}
