package node

import (
	"context"
	"fmt"
	"strconv"

	"marketscan/common/model"
	"marketscan/common/types"
)

var NotFound = fmt.Errorf("not found")

// Client defines typed wrappers for the Ethereum RPC API.
type Client struct {
	*RPC
}

// Dial connects a client to the given URL.
func Dial(rawurl string) (*Client, error) {
	rpc, err := NewRPC(rawurl)
	return &Client{rpc}, err
}

func (c *Client) ChainId(ctx context.Context) (int64, error) {
	var result string
	if err := c.CallContext(ctx, &result, "eth_chainId"); err != nil {
		return 0, err
	}
	return strconv.ParseInt(result, 0, 64)
}

func (c *Client) BlockNumber(ctx context.Context) (types.Uint64, error) {
	var result types.Uint64
	err := c.CallContext(ctx, &result, "eth_blockNumber")
	return result, err
}

// BlockHeader queries the header of the given block, NotFound when the chain
// has not reached the number yet.
func (c *Client) BlockHeader(ctx context.Context, number types.Uint64) (*model.Block, error) {
	header := struct {
		Number    types.Uint64 `json:"number"`
		Hash      types.Hash   `json:"hash"`
		Timestamp types.Uint64 `json:"timestamp"`
	}{}
	ret := &header
	if err := c.CallContext(ctx, &ret, "eth_getBlockByNumber", number.Hex(), false); err != nil {
		return nil, fmt.Errorf("eth_getBlockByNumber err:%v", err)
	} else if ret == nil {
		return nil, NotFound
	}
	return &model.Block{Number: header.Number, Hash: header.Hash, Timestamp: header.Timestamp}, nil
}

// FilterLogs queries the logs the given contracts emitted in one block.
func (c *Client) FilterLogs(ctx context.Context, number types.Uint64, addresses []types.Address) ([]*model.EventLog, error) {
	var logs []*model.EventLog
	filter := map[string]interface{}{
		"fromBlock": number.Hex(),
		"toBlock":   number.Hex(),
		"address":   addresses,
	}
	if err := c.CallContext(ctx, &logs, "eth_getLogs", filter); err != nil {
		return nil, fmt.Errorf("eth_getLogs err:%v", err)
	}
	return logs, nil
}

func (c *Client) CallContract(ctx context.Context, msg map[string]interface{}, number *types.BigInt) (types.Data, error) {
	var hex types.Data
	err := c.CallContext(ctx, &hex, "eth_call", msg, toBlockNumArg(number))
	if err != nil {
		return "", err
	}
	return hex, nil
}

func toBlockNumArg(number *types.BigInt) string {
	if number == nil {
		return "latest"
	}
	if *number == "-1" {
		return "pending"
	}
	return number.Hex()
}
