package connectrpc

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int32 | ~int64
}

// toInt32 narrows a count for the wire, failing instead of wrapping.
func toInt32[T integer](name string, value T) (int32, error) {
	v := int64(value)
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%s does not fit in int32: %d", name, v)
	}
	return int32(v), nil
}
