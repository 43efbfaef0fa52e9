package chain

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/deedlane/marketplace/internal/adapter"
	"github.com/deedlane/marketplace/internal/domain"
)

//go:generate mockgen -source=resolver.go -destination=../mocks/resolver.go -package=mocks -mock_names=OwnerResolver=MockOwnerResolver

const erc721ABIJSON = `[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"ownerOf","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}]`

// OwnerResolver answers "who owns this token right now" from chain state
type OwnerResolver interface {
	// OwnerOf returns the current owner of tokenNumber under contractAddress,
	// normalized to EIP-55. Returns domain.ErrUpstreamUnavailable when the
	// node cannot be reached or the call fails.
	OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error)
}

type resolver struct {
	client      adapter.EthClient
	erc721      abi.ABI
	callTimeout time.Duration
}

// NewOwnerResolver builds an OwnerResolver over an EVM client. callTimeout
// bounds each individual eth_call.
func NewOwnerResolver(client adapter.EthClient, callTimeout time.Duration) (OwnerResolver, error) {
	parsed, err := abi.JSON(strings.NewReader(erc721ABIJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ERC721 ABI: %w", err)
	}
	if callTimeout <= 0 {
		callTimeout = 5 * time.Second
	}
	return &resolver{
		client:      client,
		erc721:      parsed,
		callTimeout: callTimeout,
	}, nil
}

func (r *resolver) OwnerOf(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	if !common.IsHexAddress(contractAddress) {
		return "", fmt.Errorf("%w: invalid contract address %q", domain.ErrValidation, contractAddress)
	}
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("%w: invalid token number %q", domain.ErrValidation, tokenNumber)
	}

	data, err := r.erc721.Pack("ownerOf", tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to pack ownerOf call: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	contractAddr := common.HexToAddress(contractAddress)
	result, err := r.client.CallContract(callCtx, ethereum.CallMsg{
		To:   &contractAddr,
		Data: data,
	}, nil)
	if err != nil {
		return "", fmt.Errorf("%w: ownerOf call failed: %v", domain.ErrUpstreamUnavailable, err)
	}

	outputs, err := r.erc721.Unpack("ownerOf", result)
	if err != nil {
		return "", fmt.Errorf("%w: failed to unpack ownerOf result: %v", domain.ErrUpstreamUnavailable, err)
	}
	owner, ok := outputs[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("%w: unexpected ownerOf output type", domain.ErrUpstreamUnavailable)
	}

	return owner.Hex(), nil
}
