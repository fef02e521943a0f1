package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chinmay1088/risescan/api"
	"github.com/chinmay1088/risescan/extract"
)

func newClient(cmd *cobra.Command) (*api.Client, error) {
	config, err := clientConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return api.NewClient(config)
}

func newExtractor(cmd *cobra.Command) (*extract.Extractor, error) {
	client, err := newClient(cmd)
	if err != nil {
		return nil, err
	}

	var sink extract.Sink = extract.NewFileSink(outputDir)
	if s3Bucket != "" {
		s3Sink, err := extract.NewS3Sink(cmd.Context(), s3Bucket, s3Prefix, logger)
		if err != nil {
			_ = client.Close()
			return nil, err
		}
		sink = s3Sink
	}

	return extract.New(client, extract.Config{Sink: sink, Logger: logger}), nil
}

// printf writes user-facing output unless --quiet is set.
func printf(format string, args ...any) {
	if !quiet {
		fmt.Printf(format, args...)
	}
}

func printResult(title string, result *extract.Result) {
	if result == nil {
		return
	}
	if len(result.Files) == 0 {
		printf("%s %s: nothing to save\n", color.YellowString("!"), title)
		return
	}

	printf("%s %s (%d records)\n", color.GreenString("✓"), title, result.Items)
	names := make([]string, 0, len(result.Files))
	for name := range result.Files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		printf("   %-18s %s\n", name, color.CyanString(result.Files[name]))
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// newProgressBar returns nil when stdout is not a terminal or output is quiet.
func newProgressBar(total int, description string) *progressbar.ProgressBar {
	if quiet || !isTerminal() {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetDescription(description),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}
