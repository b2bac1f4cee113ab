// ABOUTME: Command-line host for the tunes client
// ABOUTME: Loads config, fetches /api/tunes once and prints the result
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"github.com/harper/tunes-client/internal/application/config"
	"github.com/harper/tunes-client/internal/application/logging"
	"github.com/harper/tunes-client/internal/application/request"
	"github.com/harper/tunes-client/internal/domain/tune"
	"github.com/harper/tunes-client/internal/infrastructure/tunes"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "tunes",
		Usage: "Fetch the tune list from a tunes server",
		Commands: []*cli.Command{
			{
				Name:  "fetch",
				Usage: "GET /api/tunes and print every tune",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "path to config.yaml"},
					&cli.StringFlag{Name: "url", Usage: "server base URL, overrides endpoint.base_url"},
					&cli.DurationFlag{Name: "timeout", Usage: "total request timeout, at least 1ms"},
					&cli.BoolFlag{Name: "json", Usage: "print the raw JSON array"},
					&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no spinner"},
				},
				Action: fetch,
			},
		},
	}
}

func fetch(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Logging, c.App.ErrWriter)
	fetcher := tunes.NewHTTP(cfg.HTTP(), tunes.WithLogger(log))

	var result tune.Collection
	action := func(ctx context.Context) error {
		var err error
		result, err = request.Start(ctx, fetcher).Wait()
		return err
	}

	ctx := c.Context
	if c.Bool("quiet") || !isTerminal(c.App.Writer) {
		err = action(ctx)
	} else {
		err = spinner.New().Title("Fetching tunes...").Context(ctx).ActionWithErr(action).Run()
	}
	if err != nil {
		log.Error().Err(err).Str("kind", tune.Kind(err)).Msg("fetch failed")
		return describe(err)
	}

	if c.Bool("json") {
		return writeJSON(c.App.Writer, result)
	}
	return writeList(c.App.Writer, result)
}

// isTerminal reports whether w is an interactive terminal. The spinner draws
// on stdout, so anything else would get its escape codes mixed into the output.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if u := c.String("url"); u != "" {
		cfg.Endpoint.BaseURL = u
	}
	if c.IsSet("timeout") {
		d := c.Duration("timeout")
		if d < time.Millisecond {
			return nil, fmt.Errorf("invalid --timeout %s: must be at least 1ms", d)
		}
		cfg.Endpoint.TimeoutMs = int(d / time.Millisecond)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func describe(err error) error {
	var statusErr *tune.StatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Errorf("server answered %s", statusErr.Status)
	case tunes.IsTimeout(err):
		return fmt.Errorf("timed out: %w", err)
	default:
		return err
	}
}
