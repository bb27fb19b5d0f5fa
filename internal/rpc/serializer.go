package rpc

import (
	"math/big"

	gethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/thirdweb-dev/ethereum-etl/internal/common"
)

// RawBlock is the eth_getBlockByNumber response with full transactions.
// Fields the node may omit are pointers.
type RawBlock struct {
	Number           *hexutil.Uint64     `json:"number"`
	Hash             *gethCommon.Hash    `json:"hash"`
	ParentHash       gethCommon.Hash     `json:"parentHash"`
	Nonce            *types.BlockNonce   `json:"nonce"`
	Sha3Uncles       gethCommon.Hash     `json:"sha3Uncles"`
	LogsBloom        *types.Bloom        `json:"logsBloom"`
	TransactionsRoot gethCommon.Hash     `json:"transactionsRoot"`
	StateRoot        gethCommon.Hash     `json:"stateRoot"`
	ReceiptsRoot     gethCommon.Hash     `json:"receiptsRoot"`
	Miner            *gethCommon.Address `json:"miner"`
	Difficulty       *hexutil.Big        `json:"difficulty"`
	TotalDifficulty  *hexutil.Big        `json:"totalDifficulty"`
	Size             *hexutil.Uint64     `json:"size"`
	ExtraData        hexutil.Bytes       `json:"extraData"`
	GasLimit         hexutil.Uint64      `json:"gasLimit"`
	GasUsed          hexutil.Uint64      `json:"gasUsed"`
	Timestamp        hexutil.Uint64      `json:"timestamp"`
	BaseFeePerGas    *hexutil.Big        `json:"baseFeePerGas"`
	WithdrawalsRoot  *gethCommon.Hash    `json:"withdrawalsRoot"`
	BlobGasUsed      *hexutil.Uint64     `json:"blobGasUsed"`
	ExcessBlobGas    *hexutil.Uint64     `json:"excessBlobGas"`
	Transactions     []RawTransaction    `json:"transactions"`
}

type RawTransaction struct {
	Hash                 gethCommon.Hash     `json:"hash"`
	Nonce                hexutil.Uint64      `json:"nonce"`
	BlockHash            *gethCommon.Hash    `json:"blockHash"`
	BlockNumber          *hexutil.Uint64     `json:"blockNumber"`
	TransactionIndex     *hexutil.Uint64     `json:"transactionIndex"`
	From                 gethCommon.Address  `json:"from"`
	To                   *gethCommon.Address `json:"to"`
	Value                *hexutil.Big        `json:"value"`
	Gas                  hexutil.Uint64      `json:"gas"`
	GasPrice             *hexutil.Big        `json:"gasPrice"`
	Input                hexutil.Bytes       `json:"input"`
	MaxFeePerGas         *hexutil.Big        `json:"maxFeePerGas"`
	MaxPriorityFeePerGas *hexutil.Big        `json:"maxPriorityFeePerGas"`
	Type                 *hexutil.Uint64     `json:"type"`
	MaxFeePerBlobGas     *hexutil.Big        `json:"maxFeePerBlobGas"`
	BlobVersionedHashes  []gethCommon.Hash   `json:"blobVersionedHashes"`
}

// SerializeBlock maps a provider block and its embedded transactions into
// the export domain. It fails with *common.MappingError when one of number,
// hash, nonce, logs bloom, miner or size is missing.
func SerializeBlock(block *RawBlock) (common.BlockData, error) {
	var blockNumber uint64
	if block.Number != nil {
		blockNumber = uint64(*block.Number)
	}
	if field := missingRequiredField(block); field != "" {
		return common.BlockData{}, &common.MappingError{BlockNumber: blockNumber, Field: field}
	}

	serialized := common.Block{
		Number:           blockNumber,
		Hash:             block.Hash.Hex(),
		ParentHash:       block.ParentHash.Hex(),
		Nonce:            hexutil.Encode(block.Nonce[:]),
		Sha3Uncles:       block.Sha3Uncles.Hex(),
		LogsBloom:        hexutil.Encode(block.LogsBloom[:]),
		TransactionsRoot: block.TransactionsRoot.Hex(),
		StateRoot:        block.StateRoot.Hex(),
		ReceiptsRoot:     block.ReceiptsRoot.Hex(),
		Miner:            addressToString(*block.Miner),
		Difficulty:       hexToBigIntOrZero(block.Difficulty),
		TotalDifficulty:  hexToBigInt(block.TotalDifficulty),
		Size:             uint64(*block.Size),
		ExtraData:        hexutil.Encode(block.ExtraData),
		GasLimit:         uint64(block.GasLimit),
		GasUsed:          uint64(block.GasUsed),
		Timestamp:        uint64(block.Timestamp),
		TransactionCount: uint64(len(block.Transactions)),
		BaseFeePerGas:    hexToBigInt(block.BaseFeePerGas),
		WithdrawalsRoot:  hashToStringPtr(block.WithdrawalsRoot),
		BlobGasUsed:      hexToUint64Ptr(block.BlobGasUsed),
		ExcessBlobGas:    hexToUint64Ptr(block.ExcessBlobGas),
	}

	return common.BlockData{
		Block:        serialized,
		Transactions: serializeTransactions(block.Transactions, serialized.Timestamp),
	}, nil
}

func missingRequiredField(block *RawBlock) string {
	switch {
	case block.Number == nil:
		return "number"
	case block.Hash == nil:
		return "hash"
	case block.Nonce == nil:
		return "nonce"
	case block.LogsBloom == nil:
		return "logsBloom"
	case block.Miner == nil:
		return "miner"
	case block.Size == nil:
		return "size"
	}
	return ""
}

func serializeTransactions(transactions []RawTransaction, blockTimestamp uint64) []common.Transaction {
	if len(transactions) == 0 {
		return []common.Transaction{}
	}
	serializedTransactions := make([]common.Transaction, 0, len(transactions))
	for i := range transactions {
		serializedTransactions = append(serializedTransactions, SerializeTransaction(&transactions[i], blockTimestamp))
	}
	return serializedTransactions
}

// SerializeTransaction maps a provider transaction, stamping it with the
// timestamp of the block that contains it.
func SerializeTransaction(tx *RawTransaction, blockTimestamp uint64) common.Transaction {
	var toAddress *string
	if tx.To != nil {
		to := addressToString(*tx.To)
		toAddress = &to
	}
	blobHashes := make([]string, 0, len(tx.BlobVersionedHashes))
	for _, h := range tx.BlobVersionedHashes {
		blobHashes = append(blobHashes, h.Hex())
	}
	return common.Transaction{
		Hash:                 tx.Hash.Hex(),
		Nonce:                uint64(tx.Nonce),
		BlockHash:            hashToStringPtr(tx.BlockHash),
		BlockNumber:          hexToUint64Ptr(tx.BlockNumber),
		TransactionIndex:     hexToUint64Ptr(tx.TransactionIndex),
		FromAddress:          addressToString(tx.From),
		ToAddress:            toAddress,
		Value:                hexToBigIntOrZero(tx.Value),
		Gas:                  uint64(tx.Gas),
		GasPrice:             hexToBigIntOrZero(tx.GasPrice),
		Input:                hexutil.Encode(tx.Input),
		BlockTimestamp:       blockTimestamp,
		MaxFeePerGas:         hexToBigInt(tx.MaxFeePerGas),
		MaxPriorityFeePerGas: hexToBigInt(tx.MaxPriorityFeePerGas),
		TransactionType:      hexToUint64Ptr(tx.Type),
		MaxFeePerBlobGas:     hexToBigInt(tx.MaxFeePerBlobGas),
		BlobVersionedHashes:  blobHashes,
	}
}

// addressToString renders lowercase hex; Address.Hex applies the EIP-55
// checksum casing.
func addressToString(address gethCommon.Address) string {
	return hexutil.Encode(address.Bytes())
}

func hashToStringPtr(hash *gethCommon.Hash) *string {
	if hash == nil {
		return nil
	}
	s := hash.Hex()
	return &s
}

func hexToBigInt(value *hexutil.Big) *big.Int {
	if value == nil {
		return nil
	}
	return new(big.Int).Set(value.ToInt())
}

func hexToBigIntOrZero(value *hexutil.Big) *big.Int {
	if value == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Set(value.ToInt())
}

func hexToUint64Ptr(value *hexutil.Uint64) *uint64 {
	if value == nil {
		return nil
	}
	v := uint64(*value)
	return &v
}
