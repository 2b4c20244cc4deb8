package sparse

import (
	"os"
	"strconv"
)

// NoParallelEnv checks if the SPARSE_NO_PARALLEL environment variable is set.
// When set, the Parallel* kernel entry points run their sequential twin
// regardless of the requested worker count. This pins the floating-point
// summation order, which is useful when bisecting rounding differences.
func NoParallelEnv() bool {
	val := os.Getenv("SPARSE_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
