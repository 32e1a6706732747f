// Package model defines the database tables
package model

import (
	"gorm.io/gorm"
	"marketscan/common/types"
)

var Tables = []interface{}{
	&Block{},
	&Account{},
	&NFT{},
	&Order{},
	&Parcel{},
	&Estate{},
	&Wearable{},
	&ENS{},
	&Count{},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables...)
}

func DropTable(db *gorm.DB) error {
	return db.Migrator().DropTable(Tables...)
}

// Block processed block information, records indexing progress
type Block struct {
	Number         types.Uint64 `json:"number" gorm:"primaryKey"`        //block number
	Hash           types.Hash   `json:"hash" gorm:"type:CHAR(66)"`       //block hash
	Timestamp      types.Uint64 `json:"timestamp"`                       //block timestamp, seconds
	TotalTransfers types.Uint64 `json:"totalTransfers"`                  //number of NFT transfer events in the block
	TotalOrders    types.Uint64 `json:"totalOrders"`                     //number of marketplace order events in the block
}

// Account owner account, created lazily on first reference, never deleted
type Account struct {
	Address   types.Address `json:"address" gorm:"type:CHAR(42);primaryKey"` //account address
	Name      *string       `json:"name" gorm:"type:VARCHAR(64)"`            //display name, set by signed request
	Sales     types.Uint64  `json:"sales"`                                   //number of NFTs sold
	Purchases types.Uint64  `json:"purchases"`                               //number of NFTs bought
	Spent     types.BigInt  `json:"spent" gorm:"type:VARCHAR(80)"`           //cumulative amount spent, wei
	Earned    types.BigInt  `json:"earned" gorm:"type:VARCHAR(80)"`          //cumulative amount earned, wei
}

// NFT canonical token record, one per (category, contract, tokenId)
type NFT struct {
	ID              string         `json:"id" gorm:"type:VARCHAR(128);primaryKey"`  //category + "-" + contract + "-" + tokenId
	TokenId         types.BigInt   `json:"tokenId" gorm:"type:VARCHAR(80);index"`   //token id
	ContractAddress types.Address  `json:"contractAddress" gorm:"type:CHAR(42)"`    //contract address
	Category        types.Category `json:"category" gorm:"type:VARCHAR(16);index"`  //parcel, estate, wearable, ens or other
	Owner           types.Address  `json:"owner" gorm:"type:CHAR(42);index"`        //owner account address
	TokenURI        *string        `json:"tokenURI"`                                //metadata URI, null for contracts without one
	Name            *string        `json:"name" gorm:"type:VARCHAR(128)"`           //display name from the sub-entity
	Image           *string        `json:"image"`                                   //image URL from the sub-entity

	ActiveOrderId *types.Hash `json:"activeOrderId" gorm:"type:CHAR(66)"` //open order id, null when there is none

	// denormalized copy of the active order, written only by the order lifecycle
	SearchOrderStatus    *types.OrderStatus `json:"searchOrderStatus" gorm:"type:VARCHAR(16)"` //active order status
	SearchOrderPrice     *types.BigInt      `json:"searchOrderPrice" gorm:"type:VARCHAR(80)"`  //active order price, wei
	SearchOrderCreatedAt *types.Uint64      `json:"searchOrderCreatedAt"`                      //active order creation timestamp
	SearchOrderExpiresAt *types.BigInt      `json:"searchOrderExpiresAt"`                      //active order expiration, milliseconds

	// category search fields
	SearchText             string  `json:"searchText" gorm:"type:VARCHAR(256);index"` //lowercase free text
	SearchIsLand           bool    `json:"searchIsLand" gorm:"index"`                 //parcel or estate
	SearchParcelX          *int32  `json:"searchParcelX"`                             //parcel x
	SearchParcelY          *int32  `json:"searchParcelY"`                             //parcel y
	SearchParcelIsInBounds *bool   `json:"searchParcelIsInBounds"`                    //inside the playable map
	SearchDistanceToPlaza  int32   `json:"searchDistanceToPlaza"`                     //parcels to the nearest plaza, -1 when unknown
	SearchAdjacentToRoad   bool    `json:"searchAdjacentToRoad"`                      //touches a road parcel
	SearchEstateSize       int32   `json:"searchEstateSize"`                          //number of parcels in the estate
	SearchIsWearableHead   bool    `json:"searchIsWearableHead"`                      //wearable replaces the head
	SearchIsWearableAccessory bool `json:"searchIsWearableAccessory"`                 //wearable is an accessory
	SearchWearableCategory *string `json:"searchWearableCategory" gorm:"type:VARCHAR(32)"` //wearable slot
	SearchWearableRarity   *string `json:"searchWearableRarity" gorm:"type:VARCHAR(16)"`   //wearable rarity
	SearchWearableBodyShapes string `json:"searchWearableBodyShapes" gorm:"type:VARCHAR(64)"` //comma separated body shapes

	CreatedAt     types.Uint64  `json:"createdAt"`     //mint timestamp
	UpdatedAt     types.Uint64  `json:"updatedAt"`     //last mutation timestamp
	TransferredAt types.Uint64  `json:"transferredAt"` //last transfer timestamp
	SoldAt        *types.Uint64 `json:"soldAt"`        //last sale timestamp, null until sold

	// per-NFT trade figures since the last transfer; cumulative totals live on Count
	Sales  types.Uint64 `json:"sales"`                          //sales since last transfer
	Volume types.BigInt `json:"volume" gorm:"type:VARCHAR(80)"` //sale volume since last transfer, wei
}

// Order marketplace listing, created by OrderCreated and mutated here only
type Order struct {
	ID        types.Hash        `json:"id" gorm:"type:CHAR(66);primaryKey"`       //order id from the marketplace contract
	NFTId     string            `json:"nftId" gorm:"type:VARCHAR(128);index"`     //listed NFT id
	Category  types.Category    `json:"category" gorm:"type:VARCHAR(16);index"`   //listed NFT category
	Owner     types.Address     `json:"owner" gorm:"type:CHAR(42);index"`         //seller address
	Buyer     *types.Address    `json:"buyer" gorm:"type:CHAR(42)"`               //buyer address, null until sold
	Status    types.OrderStatus `json:"status" gorm:"type:VARCHAR(16);index"`     //open, sold or cancelled
	Price     types.BigInt      `json:"price" gorm:"type:VARCHAR(80)"`            //listing price, wei
	ExpiresAt types.BigInt      `json:"expiresAt" gorm:"type:VARCHAR(80)"`        //expiration, milliseconds
	CreatedAt types.Uint64      `json:"createdAt"`                                //creation timestamp
	UpdatedAt types.Uint64      `json:"updatedAt"`                                //last state change timestamp
}

// Parcel one LAND parcel, keyed by its NFT id
type Parcel struct {
	ID      string        `json:"id" gorm:"type:VARCHAR(128);primaryKey"` //same id as the owning NFT
	TokenId types.BigInt  `json:"tokenId" gorm:"type:VARCHAR(80)"`        //token id, encodes the coordinates
	X       int32         `json:"x" gorm:"index"`                         //x coordinate
	Y       int32         `json:"y" gorm:"index"`                         //y coordinate
	Owner   types.Address `json:"owner" gorm:"type:CHAR(42);index"`       //mirrors the NFT owner
	EstateId *string        `json:"estateId" gorm:"type:VARCHAR(128)"`    //estate the parcel belongs to, null when none
}

// Estate a set of parcels traded as one token, keyed by its NFT id
type Estate struct {
	ID      string        `json:"id" gorm:"type:VARCHAR(128);primaryKey"` //same id as the owning NFT
	TokenId types.BigInt  `json:"tokenId" gorm:"type:VARCHAR(80)"`        //token id
	Owner   types.Address `json:"owner" gorm:"type:CHAR(42);index"`       //mirrors the NFT owner
	Size    int32         `json:"size"`                                   //number of parcels
}

// Wearable avatar item, keyed by its NFT id
type Wearable struct {
	ID             string        `json:"id" gorm:"type:VARCHAR(128);primaryKey"`  //same id as the owning NFT
	Representation string        `json:"representation" gorm:"type:VARCHAR(128)"` //catalog representation id from the tokenURI
	Name           string        `json:"name" gorm:"type:VARCHAR(128)"`           //catalog name
	Category       string        `json:"category" gorm:"type:VARCHAR(32)"`        //slot: hat, mask, upper_body...
	Rarity         string        `json:"rarity" gorm:"type:VARCHAR(16)"`          //catalog rarity
	BodyShapes     string        `json:"bodyShapes" gorm:"type:VARCHAR(64)"`      //comma separated body shapes
	Owner          types.Address `json:"owner" gorm:"type:CHAR(42);index"`        //mirrors the NFT owner
}

// ENS name registration, keyed by its NFT id
type ENS struct {
	ID        string        `json:"id" gorm:"type:VARCHAR(128);primaryKey"` //same id as the owning NFT
	TokenId   types.BigInt  `json:"tokenId" gorm:"type:VARCHAR(80)"`        //token id, keccak of the label
	Subdomain *string       `json:"subdomain" gorm:"type:VARCHAR(128)"`     //registered name, null until known
	Owner     types.Address `json:"owner" gorm:"type:CHAR(42);index"`       //mirrors the NFT owner
}

// CountId the Count table holds exactly one row under this key
const CountId = "all"

// Count global aggregate statistics, singleton, created once and mutated forever
type Count struct {
	ID            string       `json:"id" gorm:"type:VARCHAR(8);primaryKey"` //fixed key, see CountId
	Started       uint8        `json:"started"`                              //set to 1 on first creation
	ParcelTotal   types.Uint64 `json:"parcelTotal"`                          //parcels minted
	EstateTotal   types.Uint64 `json:"estateTotal"`                          //estates minted
	WearableTotal types.Uint64 `json:"wearableTotal"`                        //wearables minted
	ENSTotal      types.Uint64 `json:"ensTotal"`                             //names minted
	OrderTotal    types.Uint64 `json:"orderTotal"`                           //orders created, any category
	OrderParcel   types.Uint64 `json:"orderParcel"`                          //parcel orders created
	OrderEstate   types.Uint64 `json:"orderEstate"`                          //estate orders created
	OrderWearable types.Uint64 `json:"orderWearable"`                        //wearable orders created
	OrderENS      types.Uint64 `json:"orderENS"`                             //name orders created
	SalesTotal    types.Uint64 `json:"salesTotal"`                           //orders settled
	SalesManaTotal       types.BigInt `json:"salesManaTotal" gorm:"type:VARCHAR(80)"`       //cumulative sale volume, wei
	DaoEarningsManaTotal types.BigInt `json:"daoEarningsManaTotal" gorm:"type:VARCHAR(80)"` //cumulative DAO fee earnings, wei
}
