package model

import (
	"marketscan/common/types"
)

// EventLog one receipt log as returned by eth_getLogs
type EventLog struct {
	Address     types.Address `json:"address"`         //emitting contract address
	Topics      []types.Hash  `json:"topics"`          //topics
	Data        string        `json:"data"`            //data
	Removed     bool          `json:"removed"`         //whether removed
	TxHash      types.Hash    `json:"transactionHash"` //containing transaction hash
	BlockNumber types.Uint64  `json:"blockNumber"`     //containing block number
	Index       types.Uint64  `json:"logIndex"`        //index within the block
}

// TransferEvent one ERC721 Transfer log, already resolved to a category
type TransferEvent struct {
	Contract  types.Address  `json:"address"` //emitting contract
	Category  types.Category `json:"-"`       //category resolved for the contract
	TokenId   types.BigInt   `json:"tokenId"` //transferred token
	From      types.Address  `json:"from"`    //sender, zero address on mint
	To        types.Address  `json:"to"`      //receiver
	TxHash    types.Hash     `json:"txHash"`  //containing transaction
	Index     types.Uint64   `json:"-"`       //log index within the block
	Timestamp types.Uint64   `json:"-"`       //block timestamp, seconds
}

// OrderEventKind marketplace event discriminator
type OrderEventKind int

const (
	OrderEventCreated OrderEventKind = iota + 1
	OrderEventSuccessful
	OrderEventCancelled
)

// OrderEvent one marketplace order log
type OrderEvent struct {
	Kind      OrderEventKind //created, successful or cancelled
	OrderId   types.Hash     //order id from the contract
	Contract  types.Address  //listed NFT contract
	Category  types.Category //category resolved for the listed contract
	TokenId   types.BigInt   //listed token
	Seller    types.Address  //seller address
	Buyer     types.Address  //buyer address, successful only
	Price     types.BigInt   //price, wei
	ExpiresAt types.BigInt   //expiration, milliseconds, created only
	TxHash    types.Hash     //containing transaction
	Index     types.Uint64   //log index within the block
	Timestamp types.Uint64   //block timestamp, seconds
}

// Coordinate LAND parcel position
type Coordinate struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Parsed one decoded block plus the staged entity maps mutated while its
// events are reconciled. The maps are owned by the driver for the duration of
// the block; handlers read and write them freely and the driver flushes them
// to the database in one transaction afterwards.
type Parsed struct {
	Block *Block

	TransferEvents []*TransferEvent //in log order
	OrderEvents    []*OrderEvent    //in log order

	// externally supplied lookups
	Coordinates map[types.BigInt]Coordinate //LAND tokenId to coordinates
	TokenURIs   map[string]string           //contract + "-" + tokenId to tokenURI

	// staged entities, keyed by entity id
	NFTs      map[string]*NFT
	Accounts  map[types.Address]*Account
	Orders    map[types.Hash]*Order
	Counts    map[string]*Count
	Parcels   map[string]*Parcel
	Estates   map[string]*Estate
	Wearables map[string]*Wearable
	ENSs      map[string]*ENS
}

// NewParsed returns a Parsed with all maps allocated.
func NewParsed(block *Block) *Parsed {
	return &Parsed{
		Block:       block,
		Coordinates: make(map[types.BigInt]Coordinate),
		TokenURIs:   make(map[string]string),
		NFTs:        make(map[string]*NFT),
		Accounts:    make(map[types.Address]*Account),
		Orders:      make(map[types.Hash]*Order),
		Counts:      make(map[string]*Count),
		Parcels:     make(map[string]*Parcel),
		Estates:     make(map[string]*Estate),
		Wearables:   make(map[string]*Wearable),
		ENSs:        make(map[string]*ENS),
	}
}

// TokenURIKey lookup key for the tokenURI cache
func TokenURIKey(contract types.Address, tokenId types.BigInt) string {
	return string(contract) + "-" + string(tokenId)
}
