package gencommon

import (
	"strings"
	"sync"
)

// builderPool holds strings.Builder instances reused across rendered records.
var builderPool = sync.Pool{
	New: func() any {
		b := new(strings.Builder)
		b.Grow(1024) // one create call with a nested record
		return b
	},
}

// GetBuilder retrieves an empty builder from the pool
func GetBuilder() *strings.Builder {
	return builderPool.Get().(*strings.Builder)
}

// PutBuilder returns a builder to the pool after resetting it
func PutBuilder(b *strings.Builder) {
	b.Reset()
	builderPool.Put(b)
}
