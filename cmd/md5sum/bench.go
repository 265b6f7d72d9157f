package main

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"git.gammaspectra.live/P2Pool/md5/md5"
	"git.gammaspectra.live/P2Pool/md5/types"
	"git.gammaspectra.live/P2Pool/md5/utils"
)

const benchChunk = 4096

type benchRoutine struct {
	prefix md5.Context
	last   types.Digest
	_      [64]byte // keep routines on separate cache lines
}

// runBench hashes salt followed by the decimal counters [0, n), the shape of a nonce search.
// The salt is compressed once and every candidate forks from that state.
func runBench(w io.Writer, salt string, n uint64, threads int) int {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	chunks := (n + benchChunk - 1) / benchChunk
	routines := make([]benchRoutine, min(uint64(threads), chunks))

	prefix := md5.Initialize()
	_, _ = prefix.WriteString(salt)

	start := time.Now()
	err := utils.SplitWork(len(routines), chunks, func(workIndex uint64, routineIndex int) error {
		r := &routines[routineIndex]
		var buf [20]byte
		var d md5.Context
		end := min((workIndex+1)*benchChunk, n)
		for counter := workIndex * benchChunk; counter < end; counter++ {
			d = r.prefix
			_, _ = d.Write(strconv.AppendUint(buf[:0], counter, 10))
			r.last = d.Finalize()
		}
		return nil
	}, func(_, routineIndex int) error {
		routines[routineIndex].prefix = prefix
		return nil
	})
	elapsed := time.Since(start)

	if err != nil {
		utils.Errorf("bench", "%s", err)
		return 1
	}

	utils.Logf("bench", "%d hashes over %d routine(s) in %s", n, len(routines), elapsed)
	last := md5.SumString(salt + strconv.FormatUint(n-1, 10))
	if _, err = fmt.Fprintf(w, "%s  %s\nlast %s\n", utils.HashRate(n, elapsed), strconv.Quote(salt), last); err != nil {
		return 1
	}
	return 0
}
