package parallel

import (
	"runtime"
	"sync"
)

// For applies fn to every index in [start, end).
// The range is split into contiguous chunks, one worker goroutine per chunk,
// so concurrent calls to fn never receive the same index. For blocks until
// every invocation has completed. Small ranges run inline.
func For(start, end int, fn func(i int)) {
	n := end - start
	if n <= 0 {
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := start; i < end; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := start; lo < end; lo += chunk {
		hi := lo + chunk
		if hi > end {
			hi = end
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				fn(i)
			}
		}(lo, hi)
	}
	wg.Wait()
}
