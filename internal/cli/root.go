package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLd/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLd/internal/config"
)

var (
	// Global flags
	configFile string
	debug      bool
	verbose    bool
	quiet      bool

	// cfg is the loaded CLI configuration, populated by initConfig.
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "xrpld",
	Short: "goXRPLd - XRPL canonical binary codec",
	Long: `goXRPLd serializes XRP Ledger transaction JSON into its canonical
binary form and back, the same encoding rippled hashes and signs. It does
not compute transaction hashes, sign, or speak the peer protocol: those
are left to whatever calls this tool.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging flag; no command reads it")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging flag; no command reads it")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet flag; no command reads it, so output is printed regardless")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.LoadConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	definitions.UseFile(cfg.DefinitionsFile)
}