/*
Command emojiconv converts emoji metadata into JSON, CSV and base64 files.

	emojiconv list <chart.html>     glyph list of a chart
	emojiconv glyphs <vendor>       vendor glyph folder → base64 records
	emojiconv chart <vendor>        chart-embedded images → base64 records
	emojiconv locale <locale>       CLDR short names of a locale

Inputs are expected below a files folder (default ./files), see package
config for the layout. Repeat -v for more diagnostics: -v lists dropped
records, -vv adds records resolved by a fallback, -vvv lists every record.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/emojiconv/core/config"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// tracer traces with key 'emojiconv'
func tracer() tracing.Trace {
	return tracing.Select("emojiconv")
}

// settings are the persistent command line flags.
type settings struct {
	config  string
	files   string
	workers int
	verbose int
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.emojiconv": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		tracer().Debugf("%v", err)
		printError(err)
		os.Exit(1)
	}
}

// printError prints the user message of err, styled if stderr is a terminal.
func printError(err error) {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		core.UserError(err)
		return
	}
	pterm.Error.Println(core.UserMessage(err))
}

// exactArgs is cobra.ExactArgs with argument errors marked as EINVALID.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return core.ErrorWithCode(err, core.EINVALID)
		}
		return nil
	}
}

func rootCommand() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:           "emojiconv",
		Short:         "Convert emoji metadata into JSON, CSV and base64 files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&s.config, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&s.files, "files", "", "folder of input and output files")
	root.PersistentFlags().IntVar(&s.workers, "workers", 0, "number of concurrent image jobs")
	root.PersistentFlags().CountVarP(&s.verbose, "verbose", "v", "diagnostics per record (repeatable)")
	root.AddCommand(
		listCommand(s),
		glyphsCommand(s),
		chartCommand(s),
		localeCommand(s),
	)
	return root
}

// load assembles the configuration of a run: defaults, the YAML file if
// given, then command line flags.
func (s *settings) load() (config.Config, error) {
	conf, err := config.Load(s.config)
	if err != nil {
		return conf, err
	}
	if s.files != "" {
		conf.Files = s.files
	}
	if s.workers != 0 {
		conf.Workers = s.workers
	}
	conf.Verbosity = verbosity(s.verbose)
	setTraceLevel(conf.Verbosity)
	tracer().Debugf("configuration: %+v", conf)
	return conf, conf.Validate()
}

func verbosity(count int) config.Verbosity {
	if count > int(config.Trace) {
		return config.Trace
	}
	return config.Verbosity(count)
}

func setTraceLevel(v config.Verbosity) {
	switch {
	case v >= config.Trace:
		tracer().SetTraceLevel(tracing.LevelDebug)
	case v > config.Silent:
		tracer().SetTraceLevel(tracing.LevelInfo)
	default:
		tracer().SetTraceLevel(tracing.LevelError)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
