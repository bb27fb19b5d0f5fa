package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	gethRpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/common"
)

var ErrInvalidProviderURI = errors.New("invalid provider URI: only http and https are supported")

// IRPCClient is the chain data provider used by the export workers.
type IRPCClient interface {
	// GetBlockWithTransactions returns the block with its full transactions.
	// It fails with common.ErrBlockNotFound when the node has no such block
	// and with *common.TransportError when the call itself fails.
	GetBlockWithTransactions(ctx context.Context, blockNumber uint64) (*RawBlock, error)
	GetURL() string
	Close()
}

type Client struct {
	RPCClient *gethRpc.Client
	url       string
}

// ValidateProviderURI checks that the URI parses and uses a supported scheme.
func ValidateProviderURI(providerURI string) error {
	parsed, err := url.Parse(providerURI)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProviderURI, err)
	}
	switch parsed.Scheme {
	case "http", "https":
		return nil
	default:
		return ErrInvalidProviderURI
	}
}

func Initialize(ctx context.Context, providerURI string) (IRPCClient, error) {
	if err := ValidateProviderURI(providerURI); err != nil {
		return nil, err
	}
	log.Debug().Str("provider_uri", providerURI).Msg("Initializing RPC")
	rpcClient, dialErr := gethRpc.DialContext(ctx, providerURI)
	if dialErr != nil {
		return nil, fmt.Errorf("failed to create HTTP provider: %w", dialErr)
	}
	return IRPCClient(&Client{
		RPCClient: rpcClient,
		url:       providerURI,
	}), nil
}

func (rpc *Client) GetURL() string {
	return rpc.url
}

func (rpc *Client) Close() {
	rpc.RPCClient.Close()
}

func (rpc *Client) GetBlockWithTransactions(ctx context.Context, blockNumber uint64) (*RawBlock, error) {
	var block *RawBlock
	err := rpc.RPCClient.CallContext(ctx, &block, "eth_getBlockByNumber", GetBlockWithTransactionsParams(blockNumber)...)
	if err != nil {
		return nil, &common.TransportError{BlockNumber: blockNumber, Err: err}
	}
	if block == nil {
		return nil, common.NewNotFoundError(blockNumber)
	}
	return block, nil
}
