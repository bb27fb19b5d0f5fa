package common

import (
	"math/big"
	"strconv"
)

// BlockColumns is the header of the blocks output, in row order.
var BlockColumns = []string{
	"number",
	"hash",
	"parent_hash",
	"nonce",
	"sha3_uncles",
	"logs_bloom",
	"transactions_root",
	"state_root",
	"receipts_root",
	"miner",
	"difficulty",
	"total_difficulty",
	"size",
	"extra_data",
	"gas_limit",
	"gas_used",
	"timestamp",
	"transaction_count",
	"base_fee_per_gas",
	"withdrawals_root",
	"blob_gas_used",
	"excess_blob_gas",
}

type Block struct {
	Number           uint64
	Hash             string
	ParentHash       string
	Nonce            string
	Sha3Uncles       string
	LogsBloom        string
	TransactionsRoot string
	StateRoot        string
	ReceiptsRoot     string
	Miner            string
	Difficulty       *big.Int
	TotalDifficulty  *big.Int
	Size             uint64
	ExtraData        string
	GasLimit         uint64
	GasUsed          uint64
	Timestamp        uint64
	TransactionCount uint64
	BaseFeePerGas    *big.Int
	WithdrawalsRoot  *string
	BlobGasUsed      *uint64
	ExcessBlobGas    *uint64
}

type BlockData struct {
	Block        Block
	Transactions []Transaction
}

// Row renders the block as a blocks output row. Absent optional values
// become empty cells.
func (b *Block) Row() []string {
	return []string{
		strconv.FormatUint(b.Number, 10),
		b.Hash,
		b.ParentHash,
		b.Nonce,
		b.Sha3Uncles,
		b.LogsBloom,
		b.TransactionsRoot,
		b.StateRoot,
		b.ReceiptsRoot,
		b.Miner,
		bigIntToCell(b.Difficulty),
		bigIntToCell(b.TotalDifficulty),
		strconv.FormatUint(b.Size, 10),
		b.ExtraData,
		strconv.FormatUint(b.GasLimit, 10),
		strconv.FormatUint(b.GasUsed, 10),
		strconv.FormatUint(b.Timestamp, 10),
		strconv.FormatUint(b.TransactionCount, 10),
		bigIntToCell(b.BaseFeePerGas),
		stringToCell(b.WithdrawalsRoot),
		uint64ToCell(b.BlobGasUsed),
		uint64ToCell(b.ExcessBlobGas),
	}
}

// Rows renders the block row and the rows of all its transactions in
// on-chain order.
func (d *BlockData) Rows() ([]string, [][]string) {
	txRows := make([][]string, 0, len(d.Transactions))
	for i := range d.Transactions {
		txRows = append(txRows, d.Transactions[i].Row())
	}
	return d.Block.Row(), txRows
}

func bigIntToCell(v *big.Int) string {
	if v == nil {
		return ""
	}
	return v.String()
}

func uint64ToCell(v *uint64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(*v, 10)
}

func stringToCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
