package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRow(t *testing.T) {
	blockHash := "0x" + "ab"
	blockNumber := uint64(19_426_587)
	index := uint64(3)
	to := "0x388c818ca8b9251b393131c08a736a67ccb19297"
	txType := uint64(3)
	value, ok := new(big.Int).SetString("1000000000000000000000000", 10)
	require.True(t, ok)

	tx := Transaction{
		Hash:                 "0xcd",
		Nonce:                7,
		BlockHash:            &blockHash,
		BlockNumber:          &blockNumber,
		TransactionIndex:     &index,
		FromAddress:          "0xa9d1e08c7793af67e9d92fe308d5697fb81d3e43",
		ToAddress:            &to,
		Value:                value,
		Gas:                  21000,
		GasPrice:             big.NewInt(20_000_000_000),
		Input:                "0x",
		BlockTimestamp:       1710338139,
		MaxFeePerGas:         big.NewInt(30_000_000_000),
		MaxPriorityFeePerGas: big.NewInt(1_000_000_000),
		TransactionType:      &txType,
		MaxFeePerBlobGas:     big.NewInt(1),
		BlobVersionedHashes:  []string{"0x01aa", "0x01bb"},
	}

	row := tx.Row()
	require.Len(t, row, len(TransactionColumns))
	assert.Equal(t, []string{
		"0xcd", "7", "0xab", "19426587", "3",
		"0xa9d1e08c7793af67e9d92fe308d5697fb81d3e43",
		"0x388c818ca8b9251b393131c08a736a67ccb19297",
		"1000000000000000000000000", "21000", "20000000000", "0x", "1710338139",
		"30000000000", "1000000000", "3", "1", "0x01aa,0x01bb",
	}, row)
}

func TestTransactionRowAbsentFields(t *testing.T) {
	tx := Transaction{
		Hash:        "0xcd",
		FromAddress: "0xa9d1e08c7793af67e9d92fe308d5697fb81d3e43",
		Value:       big.NewInt(0),
		GasPrice:    big.NewInt(0),
		Input:       "0x6080",
	}

	row := tx.Row()
	require.Len(t, row, len(TransactionColumns))
	for _, idx := range []int{2, 3, 4, 6, 12, 13, 14, 15, 16} {
		assert.Empty(t, row[idx], "column %s", TransactionColumns[idx])
	}
	for _, cell := range row {
		assert.NotEqual(t, "null", cell)
		assert.NotEqual(t, "<nil>", cell)
	}
}

func TestBlockDataRows(t *testing.T) {
	blobGasUsed := uint64(131072)
	data := BlockData{
		Block: Block{
			Number:           42,
			Hash:             "0xaa",
			Difficulty:       big.NewInt(0),
			Timestamp:        1_700_000_000,
			TransactionCount: 2,
			BaseFeePerGas:    big.NewInt(7),
			BlobGasUsed:      &blobGasUsed,
		},
		Transactions: []Transaction{
			{Hash: "0x01", BlockTimestamp: 1_700_000_000},
			{Hash: "0x02", BlockTimestamp: 1_700_000_000},
		},
	}

	blockRow, txRows := data.Rows()
	require.Len(t, blockRow, len(BlockColumns))
	assert.Equal(t, "42", blockRow[0])
	assert.Equal(t, "0", blockRow[10])
	assert.Empty(t, blockRow[11], "total_difficulty")
	assert.Equal(t, "2", blockRow[17])
	assert.Equal(t, "7", blockRow[18])
	assert.Empty(t, blockRow[19], "withdrawals_root")
	assert.Equal(t, "131072", blockRow[20])
	assert.Empty(t, blockRow[21], "excess_blob_gas")

	require.Len(t, txRows, 2)
	assert.Equal(t, "0x01", txRows[0][0])
	assert.Equal(t, "0x02", txRows[1][0])
	for _, row := range txRows {
		assert.Equal(t, blockRow[16], row[11])
	}
}
