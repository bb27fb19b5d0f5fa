package common

import (
	"math/big"
	"strconv"
	"strings"
)

// TransactionColumns is the header of the transactions output, in row order.
var TransactionColumns = []string{
	"hash",
	"nonce",
	"block_hash",
	"block_number",
	"transaction_index",
	"from_address",
	"to_address",
	"value",
	"gas",
	"gas_price",
	"input",
	"block_timestamp",
	"max_fee_per_gas",
	"max_priority_fee_per_gas",
	"transaction_type",
	"max_fee_per_blob_gas",
	"blob_versioned_hashes",
}

type Transaction struct {
	Hash                 string
	Nonce                uint64
	BlockHash            *string
	BlockNumber          *uint64
	TransactionIndex     *uint64
	FromAddress          string
	ToAddress            *string
	Value                *big.Int
	Gas                  uint64
	GasPrice             *big.Int
	Input                string
	BlockTimestamp       uint64
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	TransactionType      *uint64
	MaxFeePerBlobGas     *big.Int
	BlobVersionedHashes  []string
}

// Row renders the transaction as a transactions output row. A contract
// creation has an empty to_address cell.
func (t *Transaction) Row() []string {
	return []string{
		t.Hash,
		strconv.FormatUint(t.Nonce, 10),
		stringToCell(t.BlockHash),
		uint64ToCell(t.BlockNumber),
		uint64ToCell(t.TransactionIndex),
		t.FromAddress,
		stringToCell(t.ToAddress),
		bigIntToCell(t.Value),
		strconv.FormatUint(t.Gas, 10),
		bigIntToCell(t.GasPrice),
		t.Input,
		strconv.FormatUint(t.BlockTimestamp, 10),
		bigIntToCell(t.MaxFeePerGas),
		bigIntToCell(t.MaxPriorityFeePerGas),
		uint64ToCell(t.TransactionType),
		bigIntToCell(t.MaxFeePerBlobGas),
		strings.Join(t.BlobVersionedHashes, ","),
	}
}
