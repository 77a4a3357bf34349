package resize

import (
	"runtime"
	"sync"
)

// forEachRow runs fn for every row in [start, end), fanning out across at
// most workers goroutines. Each worker receives explicit row indices from a
// shared channel; nothing mutable is captured. forEachRow returns only after
// every row has completed, which is the barrier between convolution passes.
func forEachRow(workers, start, end int, fn func(y int)) {
	n := end - start
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers == 1 {
		for y := start; y < end; y++ {
			fn(y)
		}
		return
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for y := range rows {
				fn(y)
			}
		}()
	}
	for y := start; y < end; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()
}
