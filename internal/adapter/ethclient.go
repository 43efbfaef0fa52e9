package adapter

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/ethclient"
)

//go:generate mockgen -source=ethclient.go -destination=../mocks/ethclient.go -package=mocks -mock_names=EthClient=MockEthClient

// EthClient abstracts the go-ethereum client for contract reads
type EthClient interface {
	// CallContract executes an eth_call against the given block (nil for latest)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	// BlockNumber returns the current head block number
	BlockNumber(ctx context.Context) (uint64, error)
	// Close releases the underlying RPC connection
	Close()
}

// DialEthClient connects to an EVM JSON-RPC endpoint
func DialEthClient(ctx context.Context, endpoint string) (EthClient, error) {
	return ethclient.DialContext(ctx, endpoint)
}
