package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
)

// ErrCodePairNotFound is the in-band error code the swap contract returns
// when no pair exists for the queried token ordering. It is the only code
// worth retrying with the arguments reversed.
const ErrCodePairNotFound uint32 = 201

const swapABIJSON = `[
  {"inputs": [{"internalType": "address", "name": "tokenX", "type": "address"}, {"internalType": "address", "name": "tokenY", "type": "address"}], "name": "getPairDetails", "outputs": [{"internalType": "bool", "name": "ok", "type": "bool"}, {"internalType": "uint32", "name": "errCode", "type": "uint32"}, {"internalType": "uint256", "name": "reserveX", "type": "uint256"}, {"internalType": "uint256", "name": "reserveY", "type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

const oracleABIJSON = `[
  {"inputs": [{"internalType": "string", "name": "symbol", "type": "string"}], "name": "getPrice", "outputs": [{"internalType": "uint256", "name": "lastPriceInCents", "type": "uint256"}], "stateMutability": "view", "type": "function"}
]`

var (
	swapABI      abi.ABI
	swapABIOnce  sync.Once
	swapABIErr   error
	oracleABI    abi.ABI
	oracleOnce   sync.Once
	oracleABIErr error
)

func getSwapABI() (abi.ABI, error) {
	swapABIOnce.Do(func() {
		swapABI, swapABIErr = abi.JSON(strings.NewReader(swapABIJSON))
	})
	return swapABI, swapABIErr
}

func getOracleABI() (abi.ABI, error) {
	oracleOnce.Do(func() {
		oracleABI, oracleABIErr = abi.JSON(strings.NewReader(oracleABIJSON))
	})
	return oracleABI, oracleABIErr
}

// PairDetails is the raw result of a getPairDetails call. When OK is false
// the reserves are meaningless and ErrCode says why the lookup failed.
type PairDetails struct {
	OK       bool
	ErrCode  uint32
	ReserveX *big.Int
	ReserveY *big.Int
}

// Client wraps go-ethereum RPC and provides the read-only contract calls
// the quoting core depends on.
type Client struct {
	rpcClient *rpc.Client
	ethClient *ethclient.Client

	swapContract   common.Address
	oracleContract common.Address
}

// NewClient creates a new chain client from the RPC URL and the deployed
// swap and oracle contract addresses.
func NewClient(ctx context.Context, rpcURL string, swapContract, oracleContract common.Address) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, err
	}

	return &Client{
		rpcClient:      rpcClient,
		ethClient:      ethclient.NewClient(rpcClient),
		swapContract:   swapContract,
		oracleContract: oracleContract,
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

// ChainID returns the chain ID.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	return c.ethClient.ChainID(ctx)
}

// PairDetails queries the swap contract for the pool reserves of the
// (tokenX, tokenY) ordering. Contract-level failure comes back in-band as
// OK=false plus an error code; only transport failure returns an error.
func (c *Client) PairDetails(ctx context.Context, tokenX, tokenY common.Address) (PairDetails, error) {
	parsed, err := getSwapABI()
	if err != nil {
		return PairDetails{}, fmt.Errorf("parse swap abi: %w", err)
	}

	data, err := parsed.Pack("getPairDetails", tokenX, tokenY)
	if err != nil {
		return PairDetails{}, fmt.Errorf("pack getPairDetails: %w", err)
	}

	msg := ethereum.CallMsg{To: &c.swapContract, Data: data}
	resp, err := c.ethClient.CallContract(ctx, msg, nil)
	if err != nil {
		return PairDetails{}, fmt.Errorf("call getPairDetails: %w", err)
	}

	values, err := parsed.Unpack("getPairDetails", resp)
	if err != nil {
		return PairDetails{}, fmt.Errorf("unpack getPairDetails: %w", err)
	}

	return parsePairDetails(values)
}

// PriceCents queries the oracle for the last posted price of a symbol,
// in cents.
func (c *Client) PriceCents(ctx context.Context, symbol string) (uint64, error) {
	parsed, err := getOracleABI()
	if err != nil {
		return 0, fmt.Errorf("parse oracle abi: %w", err)
	}

	data, err := parsed.Pack("getPrice", symbol)
	if err != nil {
		return 0, fmt.Errorf("pack getPrice: %w", err)
	}

	msg := ethereum.CallMsg{To: &c.oracleContract, Data: data}
	resp, err := c.ethClient.CallContract(ctx, msg, nil)
	if err != nil {
		return 0, fmt.Errorf("call getPrice: %w", err)
	}

	values, err := parsed.Unpack("getPrice", resp)
	if err != nil {
		return 0, fmt.Errorf("unpack getPrice: %w", err)
	}
	if len(values) != 1 {
		return 0, fmt.Errorf("getPrice return size %d", len(values))
	}

	cents, err := asBigInt(values[0])
	if err != nil {
		return 0, fmt.Errorf("getPrice: %w", err)
	}
	if !cents.IsUint64() {
		return 0, fmt.Errorf("price does not fit in uint64: %s", cents)
	}
	return cents.Uint64(), nil
}

func parsePairDetails(values []interface{}) (PairDetails, error) {
	if len(values) != 4 {
		return PairDetails{}, fmt.Errorf("getPairDetails return size %d", len(values))
	}

	ok, isBool := values[0].(bool)
	if !isBool {
		return PairDetails{}, fmt.Errorf("getPairDetails ok: unsupported type %T", values[0])
	}

	errCode, err := asUint32(values[1])
	if err != nil {
		return PairDetails{}, fmt.Errorf("getPairDetails errCode: %w", err)
	}

	reserveX, err := asBigInt(values[2])
	if err != nil {
		return PairDetails{}, fmt.Errorf("getPairDetails reserveX: %w", err)
	}

	reserveY, err := asBigInt(values[3])
	if err != nil {
		return PairDetails{}, fmt.Errorf("getPairDetails reserveY: %w", err)
	}

	return PairDetails{OK: ok, ErrCode: errCode, ReserveX: reserveX, ReserveY: reserveY}, nil
}

func asBigInt(value interface{}) (*big.Int, error) {
	switch v := value.(type) {
	case *big.Int:
		return new(big.Int).Set(v), nil
	case big.Int:
		return new(big.Int).Set(&v), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(v)), nil
	case uint64:
		return new(big.Int).SetUint64(v), nil
	default:
		return nil, fmt.Errorf("unsupported int type %T", value)
	}
}

func asUint32(value interface{}) (uint32, error) {
	switch v := value.(type) {
	case uint32:
		return v, nil
	case uint64:
		return uint32(v), nil
	case *big.Int:
		return uint32(v.Uint64()), nil
	default:
		return 0, fmt.Errorf("unsupported uint32 type %T", value)
	}
}
