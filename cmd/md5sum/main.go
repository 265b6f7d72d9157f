package main

import (
	"io"
	"os"

	"git.gammaspectra.live/P2Pool/md5/utils"
	"github.com/spf13/pflag"
)

type options struct {
	Strings []string
	Check   string
	JSON    bool
	Threads int
	Bench   uint64
	Files   []string
}

func main() {
	var opts options
	var debug, quiet bool

	flags := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags.StringArrayVarP(&opts.Strings, "string", "s", nil, "Hash the given string instead of a file. Can be repeated")
	flags.StringVarP(&opts.Check, "check", "c", "", "Read digests from `FILE` and verify them")
	flags.BoolVarP(&opts.JSON, "json", "j", false, "Print one JSON object per line")
	flags.IntVarP(&opts.Threads, "threads", "t", 0, "Files hashed in parallel. 0 uses all CPUs")
	flags.Uint64Var(&opts.Bench, "bench", 0, "Hash `N` salt+counter candidates and report the hash rate")
	flags.BoolVar(&debug, "debug", false, "Enable debug logging")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	_ = flags.Parse(os.Args[1:])

	opts.Files = flags.Args()

	level := "info"
	if debug {
		level = "debug"
	} else if quiet {
		level = "quiet"
	}
	if l, err := utils.ParseLogLevel(level); err != nil {
		utils.Fatalf("%s", err)
	} else {
		utils.GlobalLogLevel = l
	}

	os.Exit(run(opts, os.Stdout, os.Stdin))
}

func run(opts options, stdout io.Writer, stdin io.Reader) int {
	switch {
	case opts.Bench > 0:
		salt := "abc"
		if len(opts.Strings) > 0 {
			salt = opts.Strings[0]
		}
		return runBench(stdout, salt, opts.Bench, opts.Threads)
	case opts.Check != "":
		return runCheck(opts, stdout, stdin)
	default:
		return runSum(opts, stdout, stdin)
	}
}
