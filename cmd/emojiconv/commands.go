package main

import (
	"github.com/npillmayer/emojiconv/core"
	"github.com/npillmayer/emojiconv/core/locale"
	"github.com/npillmayer/emojiconv/core/vendor"
	"github.com/npillmayer/emojiconv/engine/pipeline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func listCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "list <chart.html>",
		Short: "Write the glyphs of an emoji chart into a text file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := s.load()
			if err != nil {
				return err
			}
			summary, err := pipeline.RunList(args[0], conf)
			if err != nil {
				return err
			}
			report(summary)
			return nil
		},
	}
}

func glyphsCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "glyphs <apple|google>",
		Short: "Convert a vendor's glyph folder into base64 records",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vendor.Parse(args[0])
			if err != nil {
				return err
			}
			conf, err := s.load()
			if err != nil {
				return err
			}
			summary, err := pipeline.RunGlyphs(cmd.Context(), v, conf)
			if err != nil {
				return err
			}
			report(summary)
			return nil
		},
	}
}

func chartCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "chart <apple|google>",
		Short: "Convert a vendor's images embedded in the emoji chart into base64 records",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := vendor.Parse(args[0])
			if err != nil {
				return err
			}
			conf, err := s.load()
			if err != nil {
				return err
			}
			summary, err := pipeline.RunChart(cmd.Context(), v, conf)
			if err != nil {
				return err
			}
			report(summary)
			return nil
		},
	}
}

func localeCommand(s *settings) *cobra.Command {
	var opts pipeline.LocaleOptions
	cmd := &cobra.Command{
		Use:   "locale <locale>",
		Short: "Extract the CLDR short names of a locale, e.g. de or fr_CA",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if !locale.Valid(code) {
				return core.Error(core.EINVALID, "locale must have 2 to 6 characters, is %q", code)
			}
			conf, err := s.load()
			if err != nil {
				return err
			}
			pterm.Info.Printfln("locale %s: %s", code, locale.DisplayName(code))
			summary, err := pipeline.RunLocale(code, opts, conf)
			if err != nil {
				return err
			}
			report(summary)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Derived, "derived", false, "merge derived annotations")
	return cmd
}

func report(summary pipeline.Summary) {
	pterm.Info.Printfln("%d records written, %d dropped, %d resolved by fallback",
		summary.Records, summary.Dropped, summary.Fallbacks)
	for _, f := range summary.Files {
		pterm.Info.Println(f)
	}
}
