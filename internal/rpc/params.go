package rpc

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

func GetBlockWithTransactionsParams(blockNum uint64) []interface{} {
	return []interface{}{hexutil.EncodeUint64(blockNum), true}
}
