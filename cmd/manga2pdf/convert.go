// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/manga2pdf/internal/assemble"
	"github.com/pdiddy/manga2pdf/internal/convert"
	"github.com/pdiddy/manga2pdf/internal/report"
	"github.com/pdiddy/manga2pdf/pkg/types"
)

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	showBar := cfg.Progress && isTerminal(cmd.OutOrStdout())
	return run(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), showBar)
}

// run performs one conversion over the configured (or prompted) parent
// folder, printing progress and the summary to out.
func run(ctx context.Context, cfg types.ConverterConfig, in io.Reader, out io.Writer, showBar bool) error {
	console := report.NewConsole(out,
		report.WithProgressBar(showBar),
		report.WithBuffering(cfg.Jobs > 1),
	)
	console.Banner()

	var folder string
	if cfg.Folder != "" {
		folder = expandHome(cfg.Folder)
	} else {
		var err error
		folder, err = promptFolder(in, out)
		if err != nil {
			return err
		}
	}
	if folder == "" {
		return errNoFolder
	}

	proc := convert.New(assemble.New(cfg.PDF),
		convert.WithObserver(console),
		convert.WithJobs(cfg.Jobs),
	)
	summary, err := proc.ConvertAll(ctx, folder)
	interrupted := errors.Is(err, context.Canceled)
	if err != nil && !interrupted {
		return err
	}

	console.Summary(summary)
	if cfg.Report != "" {
		if werr := report.Write(cfg.Report, report.New(summary, version)); werr != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", werr)
		}
	}
	if interrupted {
		return fmt.Errorf("conversion interrupted: %w", err)
	}

	console.Done()
	if cfg.FailOnError && summary.HasFailures() {
		return fmt.Errorf("%d chapter(s) failed conversion", summary.Failed)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
