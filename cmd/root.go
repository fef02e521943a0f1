package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chinmay1088/risescan/api"
)

var (
	version = "1.0.0"
)

// global flags
var (
	outputDir  string
	baseURL    string
	timeout    time.Duration
	retries    int
	retryDelay time.Duration
	rateLimit  float64
	s3Bucket   string
	s3Prefix   string
	verbose    bool
	quiet      bool
)

// logger is configured by the root command before any subcommand runs
var logger = slog.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "risescan",
	Short: "Extract data from the RISE testnet block explorer",
	Long: `risescan pulls account, token, contract, block, log and network data from
an Etherscan-compatible block explorer API (RISE testnet by default) and saves
it as JSON and CSV files.

Files are written to <output>/json/<dataset>/ and <output>/csv/<dataset>/,
each prefixed with the extraction timestamp. With --s3-bucket the same layout
is uploaded to S3 instead.

Configuration:
  Flags override RISESCAN_BASE_URL, RISESCAN_TIMEOUT, RISESCAN_MAX_ATTEMPTS,
  RISESCAN_RETRY_DELAY and RISESCAN_RATE_LIMIT, which may also be set in .env.

Examples:
  risescan account 0x1234... --transactions --tokens
  risescan token-transfers 0x1234... --limit 500
  risescan contract 0xabcd...
  risescan blocks --start 1000 --end 1100
  risescan logs --from 1000 --to 2000 --event "Transfer(address,address,uint256)"
  risescan stats
  risescan balance 0x1234... 0x5678...`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&outputDir, "output", "o", "extracted_data", "output directory")
	flags.StringVar(&baseURL, "base-url", api.RiseTestnetAPI, "explorer API endpoint")
	flags.DurationVar(&timeout, "timeout", 30*time.Second, "timeout of a single request")
	flags.IntVar(&retries, "retries", 3, "attempts per request, including the first")
	flags.DurationVar(&retryDelay, "retry-delay", time.Second, "base delay between attempts (grows linearly)")
	flags.Float64Var(&rateLimit, "rate-limit", 5, "maximum requests per second, -1 to disable")
	flags.StringVar(&s3Bucket, "s3-bucket", "", "upload to this S3 bucket instead of the output directory")
	flags.StringVar(&s3Prefix, "s3-prefix", "", "key prefix inside the S3 bucket")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(tokenTransfersCmd)
	rootCmd.AddCommand(contractCmd)
	rootCmd.AddCommand(blocksCmd)
	rootCmd.AddCommand(tokenHoldersCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(txCmd)
	rootCmd.AddCommand(networkCmd)
	rootCmd.AddCommand(versionCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	level := parseLogLevel(slog.LevelWarn)
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel reads LOG_LEVEL, falling back when it is empty or unknown.
func parseLogLevel(fallback slog.Level) slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}

// clientConfig starts from the environment and applies the flags the user
// set explicitly.
func clientConfig(cmd *cobra.Command) (api.Config, error) {
	config, err := api.ConfigFromEnv()
	if err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		config.BaseURL = baseURL
	}
	if flags.Changed("timeout") {
		config.Timeout = timeout
	}
	if flags.Changed("retries") {
		config.MaxAttempts = retries
	}
	if flags.Changed("retry-delay") {
		config.RetryDelay = retryDelay
	}
	if flags.Changed("rate-limit") {
		config.RateLimitPerSec = rateLimit
	}
	config.Logger = logger
	return config, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("risescan v%s\n", version)
	},
}
