package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
)

var version = "1.0.0"

func main() {
	// Reorder args so flags after positional args still work.
	// Go's flag package stops parsing at the first non-flag argument,
	// so "diskspeed /tmp -iterations 5" would not parse -iterations.
	reorderArgs()

	opts := defaultOptions()
	flag.StringVar(&opts.path, "path", "", "Target directory to benchmark (default: current directory)")
	flag.Var(&opts.blockSize, "block-size", "Size of each write/read (e.g. 4K, 100M, 1G)")
	flag.Var(&opts.testSize, "test-size", "Total size to test; iterations = test-size / block-size")
	flag.UintVar(&opts.iterations, "iterations", 0, "Number of blocks per pass (overrides the default test size)")
	flag.BoolVar(&opts.direct, "direct", false, "Bypass the OS cache with direct I/O where supported")
	flag.BoolVar(&opts.syncWrites, "sync", false, "Fsync after each block write (included in the timing)")
	flag.BoolVar(&opts.dropCaches, "drop-caches", false, "Drop OS caches between the write and read passes (needs root)")
	jsonFlag := flag.Bool("json", false, "Print the report as JSON")
	noColorFlag := flag.Bool("no-color", false, "Disable colored output")
	debugFlag := flag.Int("debug", -1, "Debug log level (-1 disables)")
	versionFlag := flag.Bool("version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: diskspeed [options] [directory]\n\n")
		fmt.Fprintf(os.Stderr, "DiskSpeed - sequential write & read throughput tester\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  diskspeed                         1G in 100M blocks in the current directory\n")
		fmt.Fprintf(os.Stderr, "  diskspeed /mnt/data -iterations 20\n")
		fmt.Fprintf(os.Stderr, "  diskspeed -block-size 1G -test-size 8G -direct /srv\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("diskspeed v%s\n", version)
		return
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "test-size" {
			opts.testSizeSet = true
		}
	})
	if flag.NArg() > 0 && opts.path == "" {
		opts.path = flag.Arg(0)
	}

	logger := newLogger(os.Stderr, int16(*debugFlag))

	// The first signal cancels the run between blocks; the benchmark then
	// removes its test file and returns. A second signal forces the exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
		<-sigCh
		fmt.Fprintf(os.Stderr, "\n  Interrupted again. Cleaning up...\n")
		cleanupAll()
		os.Exit(130)
	}()

	initColors(*noColorFlag)

	err := run(ctx, opts, *jsonFlag, os.Stdout, logger)
	if code := exitCode(err); code != 0 {
		fmt.Fprintf(os.Stderr, "diskspeed: %s\n", err)
		os.Exit(code)
	}
}

// run validates opts, runs the benchmark and prints the report to stdout.
func run(ctx context.Context, opts options, jsonOutput bool, stdout io.Writer,
	logger logger) error {
	config, err := newBenchConfig(opts)
	if err != nil {
		return err
	}
	var progress progressFunc
	if !jsonOutput {
		printHeader(stdout)
		printSystemInfo(stdout)
		printRunInfo(stdout, config)
		progress = progressPrinter(stdout)
	}
	if config.TotalSize%config.BlockSize != 0 {
		logger.Printf("test size %s is not a multiple of block size %s, measuring %s\n",
			formatSize(config.TotalSize), formatSize(config.BlockSize),
			formatSize(uint64(config.Iterations)*config.BlockSize))
	}
	report, err := newBenchmark(config, logger, progress).Run(ctx)
	if err != nil {
		return err
	}
	if jsonOutput {
		return printJSON(stdout, report)
	}
	printReport(stdout, report, totalMemory())
	return nil
}

// exitCode maps a run error to the process exit status. Interruption is a
// clean exit.
func exitCode(err error) int {
	if err == nil || errors.Is(err, errInterrupted) {
		return 0
	}
	return 1
}

// reorderArgs moves flags before positional args so flag.Parse() sees them.
func reorderArgs() {
	var flags, positional []string
	args := os.Args[1:]
	skip := false
	for i, a := range args {
		if skip {
			flags = append(flags, a)
			skip = false
			continue
		}
		if strings.HasPrefix(a, "-") {
			flags = append(flags, a)
			// Check if this flag takes a value (e.g., -block-size 1G)
			if strings.Contains(a, "=") {
				continue // value is embedded: -block-size=1G
			}
			if i+1 < len(args) {
				switch strings.TrimLeft(a, "-") {
				case "path", "block-size", "test-size", "iterations", "debug":
					skip = true
				}
			}
		} else {
			positional = append(positional, a)
		}
	}
	os.Args = append([]string{os.Args[0]}, append(flags, positional...)...)
}
