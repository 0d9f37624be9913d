package util

import "sync"

// Concurrently helps with factoring out the logic to run a particular function with multiple goroutines.
// It will be run once per concurrency level, and is passed the index of the goroutine running it. The
// function output is expected to be sent to a channel as part of its implementation. This will block until
// all function invocations terminate.
func Concurrently(concurrency uint, thunk func(worker uint)) {
	var wg sync.WaitGroup
	wg.Add(int(concurrency))
	for i := uint(0); i < concurrency; i++ {
		go func(worker uint) {
			defer wg.Done()
			thunk(worker)
		}(i)
	}
	wg.Wait()
}
