package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/moroii69/gspdfc/cmd"
	"github.com/moroii69/gspdfc/types"
)

var Version = "dev"

// Exit codes: 0 all files processed (including skips), 1 one or more files
// failed compression, 2 invalid arguments or root path not found.
const (
	exitFailures = 1
	exitUsage    = 2
)

type CLI struct {
	Compress cmd.CompressCmd  `cmd:"" default:"withargs" help:"Compress PDF files in a directory using Ghostscript"`
	Check    cmd.CheckCmd     `cmd:"" help:"Verify that Ghostscript is installed and runnable"`
	Version  kong.VersionFlag `help:"Print version and exit"`
}

func main() {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("gspdfc"),
		kong.Description("Batch-compress PDF files in a directory using Ghostscript."),
		kong.UsageOnError(),
		kong.Vars{"version": Version},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}

	kctx, err := parser.Parse(os.Args[1:])
	if err != nil {
		parser.Errorf("%s", err)
		os.Exit(exitUsage)
	}

	// ctrl+c stops dispatching and kills in-flight Ghostscript processes;
	// the summary is still printed for everything that finished.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	kctx.BindTo(ctx, (*context.Context)(nil))

	if err := kctx.Run(&types.AppContext{Version: Version}); err != nil {
		var usageErr *cmd.UsageError
		switch {
		case errors.As(err, &usageErr):
			parser.Errorf("%s", usageErr.Error())
			os.Exit(exitUsage)
		case errors.Is(err, cmd.ErrFilesFailed):
			os.Exit(exitFailures)
		default:
			fmt.Fprintf(os.Stderr, "gspdfc: %v\n", err)
			os.Exit(exitFailures)
		}
	}
}
