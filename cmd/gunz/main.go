// Command gunz prints gzip header fields of files or stdin.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/go-faster/gunz"
	"github.com/go-faster/gunz/internal/app"
)

func render(name string, h *gunz.Header) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", name)
	fmt.Fprintf(&b, "  method:  %s\n", h.Method)
	fmt.Fprintf(&b, "  flags:   %s\n", h.Flags)
	if t, ok := h.Modified(); ok {
		fmt.Fprintf(&b, "  mtime:   %s (%s)\n", t.UTC().Format(time.RFC3339), humanize.Time(t))
	} else {
		fmt.Fprintf(&b, "  mtime:   -\n")
	}
	fmt.Fprintf(&b, "  xfl:     0x%02x\n", h.ExtraFlags)
	fmt.Fprintf(&b, "  os:      %s\n", h.OS)
	fmt.Fprintf(&b, "  extra:   %d subfields\n", h.ExtraCount)
	if h.Name != nil {
		fmt.Fprintf(&b, "  name:    %q\n", *h.Name)
	}
	if h.Comment != nil {
		fmt.Fprintf(&b, "  comment: %q\n", *h.Comment)
	}
	if h.CRC16 != nil {
		fmt.Fprintf(&b, "  crc16:   0x%04x\n", *h.CRC16)
	}
	return b.String()
}

func inspect(name string) (*gunz.Header, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer func() { _ = f.Close() }()

	h, err := gunz.ReadHeader(f)
	if err != nil {
		return nil, errors.Wrap(err, "header")
	}
	return h, nil
}

func run(ctx context.Context, lg *zap.Logger) error {
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		h, err := gunz.ReadHeader(os.Stdin)
		if err != nil {
			return errors.Wrap(err, "stdin")
		}
		fmt.Print(render("stdin", h))
		return nil
	}

	var (
		decoded atomic.Uint64
		failed  atomic.Uint64
		reports = make([]string, len(files))
		errs    = make([]error, len(files))
	)
	var g errgroup.Group
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			h, err := inspect(name)
			if err != nil {
				failed.Inc()
				errs[i] = errors.Wrap(err, name)
				return nil
			}
			decoded.Inc()
			reports[i] = render(name, h)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "wait")
	}

	// Reports come out in argument order regardless of which file
	// decoded first.
	for _, r := range reports {
		if r != "" {
			fmt.Print(r)
		}
	}
	lg.Debug("Done",
		zap.Uint64("decoded", decoded.Load()),
		zap.Uint64("failed", failed.Load()),
	)
	return multierr.Combine(errs...)
}

func main() {
	app.Run(run)
}
