package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.gammaspectra.live/P2Pool/md5/types"
	"git.gammaspectra.live/P2Pool/md5/utils"
)

var errMalformedLine = errors.New("malformed checksum line")

type checkEntry struct {
	Name     string
	Expected types.Digest
}

// parseCheckLine accepts "<hex>  <name>" and the binary mode variant "<hex> *<name>"
func parseCheckLine(line string) (checkEntry, error) {
	line = strings.TrimRight(line, "\r")
	if len(line) < types.HexSize+2 || line[types.HexSize] != ' ' {
		return checkEntry{}, errMalformedLine
	}
	if c := line[types.HexSize+1]; c != ' ' && c != '*' {
		return checkEntry{}, errMalformedLine
	}
	digest, err := types.DigestFromString(line[:types.HexSize])
	if err != nil {
		return checkEntry{}, fmt.Errorf("%w: %w", errMalformedLine, err)
	}
	name := line[types.HexSize+2:]
	if name == "" {
		return checkEntry{}, errMalformedLine
	}
	return checkEntry{Name: name, Expected: digest}, nil
}

func readCheckList(r io.Reader) (entries []checkEntry, malformed int, err error) {
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		entry, err := parseCheckLine(line)
		if err != nil {
			utils.Noticef("md5sum", "line %d: %s", lineNumber, err)
			malformed++
			continue
		}
		entries = append(entries, entry)
	}
	return entries, malformed, scanner.Err()
}

func runCheck(opts options, stdout io.Writer, stdin io.Reader) int {
	var list io.Reader
	if opts.Check == stdinName {
		list = stdin
	} else {
		f, err := os.Open(opts.Check)
		if err != nil {
			utils.Errorf("md5sum", "%s", err)
			return 1
		}
		defer f.Close()
		list = f
	}

	entries, malformed, err := readCheckList(list)
	if err != nil {
		utils.Errorf("md5sum", "%s: %s", opts.Check, err)
		return 1
	}
	if len(entries) == 0 {
		utils.Errorf("md5sum", "%s: no properly formatted checksum lines found", opts.Check)
		return 1
	}

	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	results := hashFiles(names, opts.Threads, stdin)

	var failed int
	for i, r := range results {
		status := "OK"
		if r.err != nil {
			utils.Errorf("md5sum", "%s: %s", r.Name, r.err)
			status = "FAILED open or read"
			failed++
		} else if r.Digest != entries[i].Expected {
			status = "FAILED"
			failed++
		}
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", r.Name, status); err != nil {
			utils.Errorf("md5sum", "write: %s", err)
			return 1
		}
	}

	if malformed > 0 {
		utils.Noticef("md5sum", "%d line(s) improperly formatted", malformed)
	}
	if failed > 0 {
		utils.Logf("md5sum", "%d of %d computed checksum(s) did NOT match", failed, len(results))
		return 1
	}
	return 0
}
