package filter
// Provides general-purpose functionality.

import (
  "runtime"

  "github.com/pbenner/threadpool"
)

// Images with fewer rows are always processed on the calling goroutine.
const minParallelRows = 64

var multithreaded bool = runtime.NumCPU() > 1


// GetMultiThreaded returns whether filters distribute rows over multiple threads.
func GetMultiThreaded() bool {
  return multithreaded
}


// SetMultiThreaded sets whether filters distribute rows over multiple threads. Results are identical either way.
// Must not be called while filters are applied.
func SetMultiThreaded(set bool) {
  multithreaded = set
}


// Used internally. Calls fn once for every row in range [0, height). Rows may be processed concurrently, so fn must
// only write to the given row of its output.
func processRows(height int, fn func(row int)) {
  if !GetMultiThreaded() || height < minParallelRows {
    for y := 0; y < height; y++ { fn(y) }
    return
  }

  numThreads := runtime.NumCPU()
  numJobs := numThreads * 4
  if numJobs > height { numJobs = height }
  bandSize := (height + numJobs - 1) / numJobs

  pool := threadpool.New(numThreads, numJobs)
  defer pool.Stop()
  g := pool.NewJobGroup()
  var err error
  for y0 := 0; y0 < height; y0 += bandSize {
    y1 := y0 + bandSize
    if y1 > height { y1 = height }
    start, end := y0, y1
    err = pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      if erf() != nil { return nil }
      for y := start; y < end; y++ { fn(y) }
      return nil
    })
    if err != nil { break }
  }
  if err2 := pool.Wait(g); err2 != nil && err == nil { err = err2 }

  if err != nil {
    // rows are independent, recomputing all of them yields the same result
    for y := 0; y < height; y++ { fn(y) }
  }
}

// Used internally. Restricts index to range [0, size-1].
func clampIndex(index, size int) int {
  if index < 0 { return 0 }
  if index >= size { return size - 1 }
  return index
}
