// Package ledger records user message counts on a smart contract.
package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/config"
)

var (
	ErrSubmit         = fmt.Errorf("ledger submit: %w", entity.ErrExternalService)
	ErrReceiptTimeout = fmt.Errorf("ledger receipt timeout: %w", entity.ErrExternalService)
	ErrReverted       = fmt.Errorf("ledger transaction reverted: %w", entity.ErrExternalService)
)

const gwei = 1_000_000_000

// Backend is the part of an Ethereum node API the client needs.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Client signs and submits contract calls with legacy transactions.
type Client struct {
	backend      Backend
	contract     common.Address
	abi          abi.ABI
	method       string
	key          *ecdsa.PrivateKey
	from         common.Address
	gasLimit     uint64
	gasPrice     *big.Int
	maxRetries   int
	pollInterval time.Duration
	callTimeout  time.Duration

	mu      sync.Mutex
	chainID *big.Int
}

// Dial connects to cfg.Endpoint. The returned func closes the connection.
func Dial(ctx context.Context, cfg config.LedgerConfig) (*Client, func(), error) {
	rpc, err := ethclient.DialContext(ctx, cfg.Endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("dial ledger endpoint: %w", err)
	}
	c, err := NewClient(rpc, cfg)
	if err != nil {
		rpc.Close()
		return nil, nil, err
	}
	return c, rpc.Close, nil
}

// NewClient validates cfg and binds it to backend.
func NewClient(backend Backend, cfg config.LedgerConfig) (*Client, error) {
	if !common.IsHexAddress(cfg.ContractAddress) {
		return nil, fmt.Errorf("ledger: invalid contract address %q", cfg.ContractAddress)
	}
	parsed, err := loadABI(cfg)
	if err != nil {
		return nil, err
	}
	method := cfg.Method
	if method == "" {
		method = "update_member_msg_count"
	}
	if _, ok := parsed.Methods[method]; !ok {
		return nil, fmt.Errorf("ledger: method %q not found in ABI", method)
	}
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(cfg.PrivateKey), "0x"))
	if err != nil {
		return nil, fmt.Errorf("ledger: parse private key: %w", err)
	}
	from := crypto.PubkeyToAddress(key.PublicKey)
	if cfg.Account != "" && common.HexToAddress(cfg.Account) != from {
		return nil, fmt.Errorf("ledger: account %s does not match private key address %s", cfg.Account, from.Hex())
	}

	c := &Client{
		backend:      backend,
		contract:     common.HexToAddress(cfg.ContractAddress),
		abi:          parsed,
		method:       method,
		key:          key,
		from:         from,
		gasLimit:     cfg.GasLimit,
		maxRetries:   cfg.MaxRetries,
		pollInterval: cfg.PollInterval,
		callTimeout:  cfg.CallTimeout,
	}
	if c.gasLimit == 0 {
		c.gasLimit = 200000
	}
	if cfg.GasPriceGwei > 0 {
		c.gasPrice = new(big.Int).Mul(big.NewInt(cfg.GasPriceGwei), big.NewInt(gwei))
	}
	if cfg.ChainID > 0 {
		c.chainID = big.NewInt(cfg.ChainID)
	}
	if c.maxRetries <= 0 {
		c.maxRetries = 10
	}
	if c.pollInterval <= 0 {
		c.pollInterval = time.Second
	}
	if c.callTimeout <= 0 {
		c.callTimeout = 30 * time.Second
	}
	return c, nil
}

func loadABI(cfg config.LedgerConfig) (abi.ABI, error) {
	raw := strings.TrimSpace(cfg.ABI)
	if raw == "" && cfg.ABIFile != "" {
		b, err := os.ReadFile(cfg.ABIFile)
		if err != nil {
			return abi.ABI{}, fmt.Errorf("ledger: read ABI file: %w", err)
		}
		raw = string(b)
	}
	if raw == "" {
		return abi.ABI{}, errors.New("ledger: contract ABI is required")
	}
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		return abi.ABI{}, fmt.Errorf("ledger: parse ABI: %w", err)
	}
	return parsed, nil
}

// From returns the sender address derived from the private key.
func (c *Client) From() common.Address { return c.from }

// Submit sends the message count update for memberID and returns the
// transaction hash.
func (c *Client) Submit(ctx context.Context, memberID int64) (common.Hash, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	data, err := c.abi.Pack(c.method, big.NewInt(memberID))
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: pack %s: %v", ErrSubmit, c.method, err)
	}
	nonce, err := c.backend.PendingNonceAt(ctx, c.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: nonce: %v", ErrSubmit, err)
	}
	gasPrice := c.gasPrice
	if gasPrice == nil {
		if gasPrice, err = c.backend.SuggestGasPrice(ctx); err != nil {
			return common.Hash{}, fmt.Errorf("%w: gas price: %v", ErrSubmit, err)
		}
	}
	chainID, err := c.resolveChainID(ctx)
	if err != nil {
		return common.Hash{}, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &c.contract,
		Gas:      c.gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), c.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w: sign: %v", ErrSubmit, err)
	}
	if err := c.backend.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("%w: send: %v", ErrSubmit, err)
	}
	return signed.Hash(), nil
}

func (c *Client) resolveChainID(ctx context.Context) (*big.Int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.chainID != nil {
		return c.chainID, nil
	}
	id, err := c.backend.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: chain id: %v", ErrSubmit, err)
	}
	c.chainID = id
	return id, nil
}

// WaitReceipt polls for the receipt of hash up to the configured number of
// attempts. It returns the receipt and the attempts used.
func (c *Client) WaitReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, int, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
		receipt, err := c.backend.TransactionReceipt(callCtx, hash)
		cancel()
		if err == nil {
			return receipt, attempt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			lastErr = err
		}
		if attempt == c.maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, attempt, fmt.Errorf("%w: %s: %v", ErrReceiptTimeout, hash.Hex(), ctx.Err())
		case <-time.After(c.pollInterval):
		}
	}
	if lastErr != nil {
		return nil, c.maxRetries, fmt.Errorf("%w: %s after %d attempts: %v", ErrReceiptTimeout, hash.Hex(), c.maxRetries, lastErr)
	}
	return nil, c.maxRetries, fmt.Errorf("%w: %s after %d attempts", ErrReceiptTimeout, hash.Hex(), c.maxRetries)
}
