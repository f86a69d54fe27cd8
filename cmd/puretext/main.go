// Command puretext converts text to plain or HTML-safe form.
//
//	puretext -mode html notes.txt > notes.html
//	pbpaste | puretext -charset windows-1252
//	puretext -clipboard -mode plain
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/dmitrymomot/puretext/pkg/cleantext"
	"github.com/dmitrymomot/puretext/pkg/clipboard"
	"github.com/dmitrymomot/puretext/pkg/converter"
	"github.com/dmitrymomot/puretext/pkg/logger"
	"github.com/dmitrymomot/puretext/pkg/preferences"
	"github.com/dmitrymomot/puretext/pkg/textenc"
)

type options struct {
	mode      string
	charset   string
	clipboard bool
	prefs     string
	paste     string
	verbose   bool
	files     []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "puretext:", err)
		os.Exit(1)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("puretext", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.mode, "mode", cleantext.ModePlain.String(), "conversion mode: pure, plain or html")
	fs.StringVar(&o.charset, "charset", "", "input charset, e.g. windows-1252 (default utf-8)")
	fs.BoolVar(&o.clipboard, "clipboard", false, "convert the system clipboard in place")
	fs.StringVar(&o.prefs, "prefs", "", "preferences file used with -clipboard")
	fs.StringVar(&o.paste, "paste", strings.Join(converter.DefaultPasteCommand, " "), "command that pastes into the active window")
	fs.BoolVar(&o.verbose, "v", false, "log to stderr")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	o.files = fs.Args()
	return o, nil
}

func run(ctx context.Context, o options, stdin io.Reader, stdout, stderr io.Writer) error {
	mode, err := cleantext.ParseMode(o.mode)
	if err != nil {
		return err
	}

	log := logger.Discard()
	if o.verbose {
		log = logger.New(
			logger.WithTextFormatter(),
			logger.WithOutput(stderr),
			logger.WithLevel(slog.LevelDebug),
		)
	}

	if o.clipboard {
		return convertClipboard(ctx, o, mode, log, stderr)
	}
	return convertStreams(o, mode, stdin, stdout)
}

func convertStreams(o options, mode cleantext.Mode, stdin io.Reader, stdout io.Writer) error {
	inputs := o.files
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for _, name := range inputs {
		raw, err := readInput(name, stdin)
		if err != nil {
			return err
		}
		text, err := textenc.Decode(raw, o.charset)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		out, err := cleantext.Apply(mode, text)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(stdout, out); err != nil {
			return err
		}
	}
	return nil
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(name)
}

func convertClipboard(ctx context.Context, o options, mode cleantext.Mode, log *slog.Logger, stderr io.Writer) error {
	cb, err := clipboard.Detect()
	if err != nil {
		return err
	}

	var store preferences.Store = preferences.NewMemoryStore()
	if o.prefs != "" {
		store = preferences.NewFileStore(o.prefs)
	}

	conv := converter.New(cb, store,
		converter.WithLogger(log),
		converter.WithPaster(converter.NewCommandPaster(converter.ParseCommand(o.paste))),
		converter.WithNotifier(converter.NewBellNotifier(stderr)),
	)
	res, err := conv.Convert(ctx, mode)
	if err != nil {
		return err
	}
	if res.Skipped {
		fmt.Fprintln(stderr, "clipboard is empty")
	}
	for _, w := range res.Warnings {
		fmt.Fprintln(stderr, "warning:", w)
	}
	return nil
}
