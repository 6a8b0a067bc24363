package bench

import (
	"log"
	"time"
)

// Average runs fn n times and returns the mean runtime.
func Average(name string, n int, fn func()) time.Duration {
	if n <= 0 {
		n = 1
	}
	var total time.Duration
	for i := 0; i < n; i++ {
		start := time.Now()
		fn()
		total += time.Since(start)
	}
	avg := total / time.Duration(n)
	log.Printf("[INFO] %s runtime averaged over %d iterations: %s", name, n, avg)
	return avg
}
