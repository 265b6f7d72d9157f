package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"git.gammaspectra.live/P2Pool/md5/md5"
	"git.gammaspectra.live/P2Pool/md5/types"
	"git.gammaspectra.live/P2Pool/md5/utils"
)

const stdinName = "-"

type result struct {
	Name   string       `json:"name"`
	Digest types.Digest `json:"digest"`
	Size   int64        `json:"size"`

	err error
}

// hashFiles hashes every named file with one Context per worker. Results keep the order of names.
func hashFiles(names []string, threads int, stdin io.Reader) []result {
	results := make([]result, len(names))

	_ = utils.SplitWork(threads, uint64(len(names)), func(workIndex uint64, routineIndex int) error {
		r := &results[workIndex]
		r.Name = names[workIndex]
		r.Digest, r.Size, r.err = hashFile(r.Name, stdin)
		utils.Debugf("md5sum", "routine %d hashed %s (%d bytes)", routineIndex, r.Name, r.Size)
		return nil
	}, nil)

	return results
}

func hashFile(name string, stdin io.Reader) (types.Digest, int64, error) {
	if name == stdinName {
		return md5.SumReader(stdin)
	}

	f, err := os.Open(name)
	if err != nil {
		return types.ZeroDigest, 0, err
	}
	defer f.Close()

	return md5.SumReader(f)
}

func printResult(w io.Writer, enc *utils.JSONEncoder, r result) error {
	if enc != nil {
		return enc.Encode(r)
	}
	_, err := fmt.Fprintf(w, "%s  %s\n", r.Digest, r.Name)
	return err
}

func runSum(opts options, stdout io.Writer, stdin io.Reader) int {
	var enc *utils.JSONEncoder
	if opts.JSON {
		enc = utils.NewJSONEncoder(stdout)
	}

	var results []result
	for _, s := range opts.Strings {
		results = append(results, result{
			Name:   strconv.Quote(s),
			Digest: md5.SumString(s),
			Size:   int64(len(s)),
		})
	}

	files := opts.Files
	if len(files) == 0 && len(opts.Strings) == 0 {
		files = []string{stdinName}
	}
	results = append(results, hashFiles(files, opts.Threads, stdin)...)

	exitCode := 0
	for _, r := range results {
		if r.err != nil {
			utils.Errorf("md5sum", "%s: %s", r.Name, r.err)
			exitCode = 1
			continue
		}
		if err := printResult(stdout, enc, r); err != nil {
			utils.Errorf("md5sum", "write: %s", err)
			return 1
		}
	}
	return exitCode
}
