package exporter

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thirdweb-dev/ethereum-etl/internal/common"
)

type StreamID int

const (
	BlocksStream StreamID = iota
	TransactionsStream
)

func (s StreamID) String() string {
	switch s {
	case BlocksStream:
		return "blocks"
	case TransactionsStream:
		return "transactions"
	default:
		return fmt.Sprintf("stream(%d)", int(s))
	}
}

// Columns returns the header of the stream.
func (s StreamID) Columns() []string {
	switch s {
	case TransactionsStream:
		return common.TransactionColumns
	default:
		return common.BlockColumns
	}
}

type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

// IRowSink receives rows for the blocks and transactions streams.
type IRowSink interface {
	// AppendRows durably appends rows to the stream before returning. Writes
	// to a disabled stream are discarded.
	AppendRows(stream StreamID, rows [][]string) error
	// Paths returns the output files of the enabled streams.
	Paths() []string
	Close() error
}

// RowWriter encodes rows into one output destination.
type RowWriter interface {
	WriteRows(rows [][]string) error
	Close() error
}

type SinkConfig struct {
	BlocksOutput       string
	TransactionsOutput string
	Format             Format
}

type stream struct {
	mu     sync.Mutex
	id     StreamID
	path   string
	writer RowWriter
}

// RowSink owns one writer per stream. Each stream has its own lock so block
// and transaction writers never contend.
type RowSink struct {
	streams [2]*stream
}

// NewRowSink opens the enabled streams. A stream with an empty output path
// is disabled and no file is created for it.
func NewRowSink(cfg SinkConfig) (*RowSink, error) {
	sink := &RowSink{}
	outputs := map[StreamID]string{
		BlocksStream:       cfg.BlocksOutput,
		TransactionsStream: cfg.TransactionsOutput,
	}
	for _, id := range []StreamID{BlocksStream, TransactionsStream} {
		s := &stream{id: id, path: outputs[id]}
		if s.path != "" {
			writer, err := newRowWriter(cfg.Format, s.path, id)
			if err != nil {
				sink.Close()
				return nil, fmt.Errorf("failed to open %s output %s: %w", id, s.path, err)
			}
			s.writer = writer
			log.Debug().Str("stream", id.String()).Str("path", s.path).Str("format", string(cfg.Format)).Msg("Opened output stream")
		}
		sink.streams[id] = s
	}
	return sink, nil
}

func newRowWriter(format Format, path string, id StreamID) (RowWriter, error) {
	switch format {
	case FormatParquet:
		return NewParquetRowWriter(path, id)
	case FormatCSV, "":
		return NewCSVRowWriter(path, id.Columns())
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}

func (s *RowSink) AppendRows(id StreamID, rows [][]string) error {
	if int(id) < 0 || int(id) >= len(s.streams) {
		return fmt.Errorf("unknown stream %s", id)
	}
	st := s.streams[id]
	if st == nil || len(rows) == 0 {
		return nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if st.writer == nil {
		return nil
	}
	if err := st.writer.WriteRows(rows); err != nil {
		return &common.SinkWriteError{Stream: id.String(), Err: err}
	}
	return nil
}

func (s *RowSink) Paths() []string {
	var paths []string
	for _, st := range s.streams {
		if st != nil && st.path != "" {
			paths = append(paths, st.path)
		}
	}
	return paths
}

func (s *RowSink) Close() error {
	var firstErr error
	for _, st := range s.streams {
		if st == nil || st.writer == nil {
			continue
		}
		st.mu.Lock()
		if err := st.writer.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to close %s output: %w", st.id, err)
		}
		st.writer = nil
		st.mu.Unlock()
	}
	return firstErr
}

// ExportBlock appends the block row and then its transaction rows.
func ExportBlock(sink IRowSink, blockData *common.BlockData) error {
	blockRow, txRows := blockData.Rows()
	if err := sink.AppendRows(BlocksStream, [][]string{blockRow}); err != nil {
		return err
	}
	return sink.AppendRows(TransactionsStream, txRows)
}
