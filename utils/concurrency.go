package utils

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// SplitWork runs do for every index in [0, workSize) over a number of goroutines.
// A routines value of zero uses one goroutine per CPU, a negative value leaves that many CPUs free.
// init, when not nil, is called for every routine before any work starts so routine local state
// (such as a hashing Context) can be prepared. The first error returned stops further work.
func SplitWork(routines int, workSize uint64, do func(workIndex uint64, routineIndex int) error, init func(routines, routineIndex int) error) error {
	if routines <= 0 {
		routines = max(runtime.NumCPU()+routines, 1)
	}

	if workSize < uint64(routines) {
		routines = int(workSize)
	}

	var counter atomic.Uint64
	var failed atomic.Bool

	if init != nil {
		for routineIndex := 0; routineIndex < routines; routineIndex++ {
			if err := init(routines, routineIndex); err != nil {
				return err
			}
		}
	}

	var eg errgroup.Group

	for routineIndex := 0; routineIndex < routines; routineIndex++ {
		eg.Go(func() error {
			for !failed.Load() {
				workIndex := counter.Add(1)
				if workIndex > workSize {
					return nil
				}

				if err := do(workIndex-1, routineIndex); err != nil {
					failed.Store(true)
					return err
				}
			}
			return nil
		})
	}
	return eg.Wait()
}
