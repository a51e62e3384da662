package asset

import (
	"fmt"
	"log"
)

// Result is the outcome of loading one asset
// Loading never panics or aborts the batch; failures are carried in Err
type Result[T any] struct {
	Path  string
	Value T
	Err   error
}

// OK reports whether the asset loaded
func (r Result[T]) OK() bool {
	return r.Err == nil
}

// Ok wraps a loaded value
func Ok[T any](path string, v T) Result[T] {
	return Result[T]{Path: path, Value: v}
}

// Fail wraps a load failure
func Fail[T any](path string, err error) Result[T] {
	return Result[T]{Path: path, Err: err}
}

// Summary counts successes and failures
type Summary struct {
	Loaded int
	Failed int
}

func (s Summary) String() string {
	return fmt.Sprintf("%d loaded, %d failed", s.Loaded, s.Failed)
}

// LogResults logs each failure under tag and returns the counts
func LogResults[T any](tag string, results []Result[T]) Summary {
	var s Summary
	for _, r := range results {
		if r.OK() {
			s.Loaded++
			continue
		}
		s.Failed++
		log.Printf("[%s] %s: %v", tag, r.Path, r.Err)
	}
	log.Printf("[%s] %s", tag, s)
	return s
}
