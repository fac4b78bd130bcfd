package ledger

import (
	"context"
	"encoding/hex"
	"errors"
	"math/big"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eslsoft/luci/internal/entity"
	"github.com/eslsoft/luci/internal/infrastructure/config"
)

const testABI = `[{"inputs":[{"internalType":"uint256","name":"member_id","type":"uint256"}],"name":"update_member_msg_count","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"nonpayable","type":"function"}]`

type fakeBackend struct {
	mu        sync.Mutex
	nonce     uint64
	chainID   *big.Int
	sent      []*types.Transaction
	sendErr   error
	notFound  int
	receipt   *types.Receipt
	receiptTx []common.Hash
}

func (b *fakeBackend) PendingNonceAt(context.Context, common.Address) (uint64, error) {
	return b.nonce, nil
}

func (b *fakeBackend) SuggestGasPrice(context.Context) (*big.Int, error) {
	return big.NewInt(7), nil
}

func (b *fakeBackend) ChainID(context.Context) (*big.Int, error) {
	return b.chainID, nil
}

func (b *fakeBackend) SendTransaction(_ context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.sendErr != nil {
		return b.sendErr
	}
	b.sent = append(b.sent, tx)
	return nil
}

func (b *fakeBackend) TransactionReceipt(_ context.Context, hash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.receiptTx = append(b.receiptTx, hash)
	if b.notFound > 0 {
		b.notFound--
		return nil, ethereum.NotFound
	}
	if b.receipt == nil {
		return nil, ethereum.NotFound
	}
	return b.receipt, nil
}

func testLedgerConfig(t *testing.T) config.LedgerConfig {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return config.LedgerConfig{
		Endpoint:        "http://127.0.0.1:8545",
		ContractAddress: "0x00000000000000000000000000000000000000aa",
		ABI:             testABI,
		PrivateKey:      "0x" + hex.EncodeToString(crypto.FromECDSA(key)),
		GasLimit:        200000,
		GasPriceGwei:    40,
		MaxRetries:      3,
		PollInterval:    time.Millisecond,
		CallTimeout:     time.Second,
	}
}

func TestClientSubmitSignsLegacyTransaction(t *testing.T) {
	backend := &fakeBackend{nonce: 5, chainID: big.NewInt(11155111)}
	cfg := testLedgerConfig(t)
	client, err := NewClient(backend, cfg)
	require.NoError(t, err)

	hash, err := client.Submit(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)

	tx := backend.sent[0]
	assert.Equal(t, hash, tx.Hash())
	assert.Equal(t, uint8(types.LegacyTxType), tx.Type())
	assert.Equal(t, uint64(5), tx.Nonce())
	assert.Equal(t, uint64(200000), tx.Gas())
	assert.Equal(t, big.NewInt(40_000_000_000), tx.GasPrice())
	assert.Equal(t, common.HexToAddress(cfg.ContractAddress), *tx.To())

	parsed, err := abi.JSON(strings.NewReader(testABI))
	require.NoError(t, err)
	want, err := parsed.Pack("update_member_msg_count", big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, want, tx.Data())

	sender, err := types.Sender(types.LatestSignerForChainID(big.NewInt(11155111)), tx)
	require.NoError(t, err)
	assert.Equal(t, client.From(), sender)
}

func TestClientSubmitErrorsAreExternal(t *testing.T) {
	backend := &fakeBackend{chainID: big.NewInt(1), sendErr: errors.New("nonce too low")}
	client, err := NewClient(backend, testLedgerConfig(t))
	require.NoError(t, err)

	_, err = client.Submit(context.Background(), 1)
	assert.ErrorIs(t, err, ErrSubmit)
	assert.ErrorIs(t, err, entity.ErrExternalService)
}

func TestClientWaitReceiptRetries(t *testing.T) {
	backend := &fakeBackend{chainID: big.NewInt(1), notFound: 2, receipt: &types.Receipt{GasUsed: 21000, Status: types.ReceiptStatusSuccessful}}
	client, err := NewClient(backend, testLedgerConfig(t))
	require.NoError(t, err)

	receipt, attempts, err := client.WaitReceipt(context.Background(), common.HexToHash("0x01"))
	require.NoError(t, err)
	assert.Equal(t, 3, attempts)
	assert.Equal(t, uint64(21000), receipt.GasUsed)
}

func TestClientWaitReceiptTimesOut(t *testing.T) {
	backend := &fakeBackend{chainID: big.NewInt(1)}
	client, err := NewClient(backend, testLedgerConfig(t))
	require.NoError(t, err)

	_, attempts, err := client.WaitReceipt(context.Background(), common.HexToHash("0x02"))
	assert.ErrorIs(t, err, ErrReceiptTimeout)
	assert.ErrorIs(t, err, entity.ErrExternalService)
	assert.Equal(t, 3, attempts)
	assert.Len(t, backend.receiptTx, 3)
}

func TestNewClientValidatesConfig(t *testing.T) {
	backend := &fakeBackend{}
	tests := []struct {
		name   string
		mutate func(*config.LedgerConfig)
	}{
		{"bad address", func(c *config.LedgerConfig) { c.ContractAddress = "nope" }},
		{"no abi", func(c *config.LedgerConfig) { c.ABI = "" }},
		{"unknown method", func(c *config.LedgerConfig) { c.Method = "burn" }},
		{"bad key", func(c *config.LedgerConfig) { c.PrivateKey = "zz" }},
		{"account mismatch", func(c *config.LedgerConfig) { c.Account = "0x00000000000000000000000000000000000000bb" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testLedgerConfig(t)
			tt.mutate(&cfg)
			_, err := NewClient(backend, cfg)
			assert.Error(t, err)
		})
	}
}
