package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	consts "github.com/StephanGoldberg/startup-launch-checker/internal/constants"
	"github.com/StephanGoldberg/startup-launch-checker/internal/logging"
)

var (
	cfgFile string
	logger  *zap.SugaredLogger

	flagTimeout      int
	flagProbeTimeout int
	flagRateLimit    int
	flagJSON         bool
	flagOutput       string
	flagVerbose      bool

	userAgent = consts.UserAgent
	logFile   string
)

var rootCmd = &cobra.Command{
	Use:   "launchcheck <domain>",
	Short: "Verify a startup website's launch infrastructure before going live",
	Long: `launchcheck fetches a website, scans it for launch markers (Open Graph
tags, meta description, mobile viewport, favicon), probes the well-known SEO
paths (/robots.txt, /sitemap.xml), and prints a weighted readiness score with
prioritized fix suggestions.

The exit code is 0 whenever the run completes, even if the target site is
unreachable; the failure shows up in the report instead.`,
	Example: `  launchcheck mystartup.com
  launchcheck https://mystartup.com --timeout 5
  launchcheck mystartup.com --json
  launchcheck mystartup.com --output readiness.md`,
	Args: cobra.ExactArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".launchcheck")
			viper.SetConfigType("yaml")
		}

		_ = viper.ReadInConfig()
		applyConfigDefaults(cmd)

		logger = logging.NewLogger(logFile, flagVerbose).Sugar()
		logger.Debugf("timeout=%ds probe_timeout=%ds rate_limit=%d", flagTimeout, flagProbeTimeout, flagRateLimit)

		return nil
	},
	RunE: runLaunchCheck,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyConfigDefaults merges config file values into the runtime flags when
// the user did not explicitly set the corresponding flag.
func applyConfigDefaults(cmd *cobra.Command) {
	if viper.IsSet("timeout_secs") {
		applyIntDefault(cmd.Flags(), "timeout", viper.GetInt("timeout_secs"), &flagTimeout)
	}
	if viper.IsSet("probe_timeout_secs") {
		applyIntDefault(cmd.Flags(), "probe-timeout", viper.GetInt("probe_timeout_secs"), &flagProbeTimeout)
	}
	if viper.IsSet("rate_limit") {
		applyIntDefault(cmd.Flags(), "rate-limit", viper.GetInt("rate_limit"), &flagRateLimit)
	}
	if viper.IsSet("user_agent") {
		if ua := viper.GetString("user_agent"); ua != "" {
			userAgent = ua
		}
	}
	if viper.IsSet("log_file") {
		logFile = viper.GetString("log_file")
	}
}

func applyIntDefault(flags *pflag.FlagSet, name string, value int, target *int) {
	if flags == nil || target == nil {
		return
	}
	flag := flags.Lookup(name)
	if flag != nil && flag.Changed {
		return
	}
	*target = value
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.launchcheck.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging on stderr")

	rootCmd.Flags().IntVar(&flagTimeout, "timeout", int(consts.DefaultFetchTimeout.Seconds()), "main page fetch timeout in seconds")
	rootCmd.Flags().IntVar(&flagProbeTimeout, "probe-timeout", int(consts.DefaultProbeTimeout.Seconds()), "per-probe timeout in seconds")
	rootCmd.Flags().IntVar(&flagRateLimit, "rate-limit", consts.DefaultRateLimit, "outbound requests per second")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print the report as JSON instead of text")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "also write the report to a file (.json, .md, or .pdf)")

	rootCmd.AddCommand(checklistCmd)
	rootCmd.AddCommand(versionCmd)
}
