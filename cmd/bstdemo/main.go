package main

import (
	"fmt"
	"io"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

const loggerKey = "logger"

func newApp(out, errOut io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bstdemo",
		Usage:     "build, unbalance and rebalance binary search trees",
		Version:   versioninfo.Short(),
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity (trace, debug, info, warn, error, disabled)",
				Value:   "info",
				EnvVars: []string{"BSTDEMO_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: console or json",
				Value:   "console",
				EnvVars: []string{"BSTDEMO_LOG_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "style",
				Usage:   "tree diagram style: pretty or treeprint",
				Value:   stylePretty,
				EnvVars: []string{"BSTDEMO_STYLE"},
			},
		},
		Before: func(cctx *cli.Context) error {
			if s := cctx.String("style"); s != stylePretty && s != styleTreePrint {
				return fmt.Errorf("unknown style %q", s)
			}
			log, err := newLogger(cctx.App.ErrWriter, cctx.String("log-format"), cctx.String("log-level"))
			if err != nil {
				return err
			}
			cctx.App.Metadata = map[string]interface{}{loggerKey: log}
			return nil
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdBuild,
	}
	return app
}

func newLogger(w io.Writer, format, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("parsing log level: %w", err)
	}
	var log zerolog.Logger
	switch format {
	case "console":
		log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	case "json":
		log = zerolog.New(w)
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log format %q", format)
	}
	return log.Level(lvl).With().Timestamp().Logger(), nil
}

func loggerFrom(cctx *cli.Context) zerolog.Logger {
	if log, ok := cctx.App.Metadata[loggerKey].(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}
