package common

import (
	"iter"
	"math"
)

// BlockRange is a closed range of block numbers. A range whose Start is
// greater than its End is empty.
type BlockRange struct {
	Start uint64
	End   uint64
}

func (r BlockRange) IsEmpty() bool {
	return r.Start > r.End
}

// Len returns the number of blocks in the range, saturating at math.MaxUint64.
func (r BlockRange) Len() uint64 {
	if r.IsEmpty() {
		return 0
	}
	if r.End-r.Start == math.MaxUint64 {
		return math.MaxUint64
	}
	return r.End - r.Start + 1
}

// Numbers returns every block number in the range in ascending order.
func (r BlockRange) Numbers() []uint64 {
	if r.IsEmpty() {
		return nil
	}
	numbers := make([]uint64, 0, r.Len())
	for n := r.Start; ; n++ {
		numbers = append(numbers, n)
		if n == r.End {
			break
		}
	}
	return numbers
}

// Batches yields consecutive sub-ranges of at most size blocks covering the
// range in ascending order. The last batch may be shorter.
func (r BlockRange) Batches(size uint64) iter.Seq[BlockRange] {
	return func(yield func(BlockRange) bool) {
		if r.IsEmpty() || size == 0 {
			return
		}
		for start := r.Start; ; {
			end := start + size - 1
			if end < start || end > r.End {
				end = r.End
			}
			if !yield(BlockRange{Start: start, End: end}) {
				return
			}
			if end == r.End {
				return
			}
			start = end + 1
		}
	}
}
