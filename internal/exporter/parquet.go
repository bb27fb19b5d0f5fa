package exporter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/parquet-go/parquet-go"
)

// ErrParquetOutputExists is returned when a parquet output already exists.
// Parquet files cannot be appended to, so rows of an earlier run are never
// overwritten; remove or rename the file first.
var ErrParquetOutputExists = errors.New("output exists, parquet cannot append")

var writerOptions = []parquet.WriterOption{
	parquet.Compression(&parquet.Zstd),
	parquet.DataPageStatistics(true),
	parquet.PageBufferSize(8 * 1024 * 1024), // 8MB pages
	parquet.ColumnIndexSizeLimit(16 * 1024), // 16KB limit for column index
}

// Field order matches common.BlockColumns.
type blockParquetRow struct {
	Number           string `parquet:"number"`
	Hash             string `parquet:"hash"`
	ParentHash       string `parquet:"parent_hash"`
	Nonce            string `parquet:"nonce"`
	Sha3Uncles       string `parquet:"sha3_uncles"`
	LogsBloom        string `parquet:"logs_bloom"`
	TransactionsRoot string `parquet:"transactions_root"`
	StateRoot        string `parquet:"state_root"`
	ReceiptsRoot     string `parquet:"receipts_root"`
	Miner            string `parquet:"miner"`
	Difficulty       string `parquet:"difficulty"`
	TotalDifficulty  string `parquet:"total_difficulty"`
	Size             string `parquet:"size"`
	ExtraData        string `parquet:"extra_data"`
	GasLimit         string `parquet:"gas_limit"`
	GasUsed          string `parquet:"gas_used"`
	Timestamp        string `parquet:"timestamp"`
	TransactionCount string `parquet:"transaction_count"`
	BaseFeePerGas    string `parquet:"base_fee_per_gas"`
	WithdrawalsRoot  string `parquet:"withdrawals_root"`
	BlobGasUsed      string `parquet:"blob_gas_used"`
	ExcessBlobGas    string `parquet:"excess_blob_gas"`
}

func newBlockParquetRow(r []string) blockParquetRow {
	return blockParquetRow{
		Number: r[0], Hash: r[1], ParentHash: r[2], Nonce: r[3], Sha3Uncles: r[4],
		LogsBloom: r[5], TransactionsRoot: r[6], StateRoot: r[7], ReceiptsRoot: r[8],
		Miner: r[9], Difficulty: r[10], TotalDifficulty: r[11], Size: r[12],
		ExtraData: r[13], GasLimit: r[14], GasUsed: r[15], Timestamp: r[16],
		TransactionCount: r[17], BaseFeePerGas: r[18], WithdrawalsRoot: r[19],
		BlobGasUsed: r[20], ExcessBlobGas: r[21],
	}
}

// Field order matches common.TransactionColumns.
type transactionParquetRow struct {
	Hash                 string `parquet:"hash"`
	Nonce                string `parquet:"nonce"`
	BlockHash            string `parquet:"block_hash"`
	BlockNumber          string `parquet:"block_number"`
	TransactionIndex     string `parquet:"transaction_index"`
	FromAddress          string `parquet:"from_address"`
	ToAddress            string `parquet:"to_address"`
	Value                string `parquet:"value"`
	Gas                  string `parquet:"gas"`
	GasPrice             string `parquet:"gas_price"`
	Input                string `parquet:"input"`
	BlockTimestamp       string `parquet:"block_timestamp"`
	MaxFeePerGas         string `parquet:"max_fee_per_gas"`
	MaxPriorityFeePerGas string `parquet:"max_priority_fee_per_gas"`
	TransactionType      string `parquet:"transaction_type"`
	MaxFeePerBlobGas     string `parquet:"max_fee_per_blob_gas"`
	BlobVersionedHashes  string `parquet:"blob_versioned_hashes"`
}

func newTransactionParquetRow(r []string) transactionParquetRow {
	return transactionParquetRow{
		Hash: r[0], Nonce: r[1], BlockHash: r[2], BlockNumber: r[3], TransactionIndex: r[4],
		FromAddress: r[5], ToAddress: r[6], Value: r[7], Gas: r[8], GasPrice: r[9],
		Input: r[10], BlockTimestamp: r[11], MaxFeePerGas: r[12], MaxPriorityFeePerGas: r[13],
		TransactionType: r[14], MaxFeePerBlobGas: r[15], BlobVersionedHashes: r[16],
	}
}

// ParquetRowWriter writes rows of one stream. Each WriteRows call is flushed
// as its own row group and synced; the footer is written on Close, so the
// file is only readable once the export finished.
type ParquetRowWriter[T any] struct {
	file     *os.File
	writer   *parquet.GenericWriter[T]
	width    int
	toRecord func([]string) T
}

// NewParquetRowWriter creates path for the given stream. It fails with
// ErrParquetOutputExists when path already exists.
func NewParquetRowWriter(path string, id StreamID) (RowWriter, error) {
	switch id {
	case BlocksStream:
		w, err := newParquetRowWriter(path, len(id.Columns()), newBlockParquetRow)
		if err != nil {
			return nil, err
		}
		return w, nil
	case TransactionsStream:
		w, err := newParquetRowWriter(path, len(id.Columns()), newTransactionParquetRow)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown stream %s", id)
	}
}

func newParquetRowWriter[T any](path string, width int, toRecord func([]string) T) (*ParquetRowWriter[T], error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, fmt.Errorf("%w: %s", ErrParquetOutputExists, path)
		}
		return nil, fmt.Errorf("failed to create parquet file: %w", err)
	}
	return &ParquetRowWriter[T]{
		file:     file,
		writer:   parquet.NewGenericWriter[T](file, writerOptions...),
		width:    width,
		toRecord: toRecord,
	}, nil
}

func (w *ParquetRowWriter[T]) WriteRows(rows [][]string) error {
	records := make([]T, 0, len(rows))
	for _, row := range rows {
		if len(row) != w.width {
			return fmt.Errorf("row has %d cells, schema has %d columns", len(row), w.width)
		}
		records = append(records, w.toRecord(row))
	}

	if _, err := w.writer.Write(records); err != nil {
		return fmt.Errorf("failed to write parquet data: %w", err)
	}
	if err := w.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush parquet row group: %w", err)
	}
	return w.file.Sync()
}

func (w *ParquetRowWriter[T]) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	if err := w.file.Close(); err != nil {
		return fmt.Errorf("failed to close parquet file: %w", err)
	}
	return nil
}
