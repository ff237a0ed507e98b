// Root of command-line argument parsing.
// This file was based off the standard cobra template, see
// https://github.com/spf13/cobra
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/objstoreresearch/osk/pkg/oskmgr"
)

var cfgFile string
var verbose bool

var oskManager *oskmgr.OskManager

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "osk",
	Short: "The Object Storage Kit",
	Long:  `A command-line client for cloud object storage with transparent retry, backoff, and request logging.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		mgrArgs := map[string]interface{}{}
		if cfgFile != "" {
			mgrArgs["config-file"] = cfgFile
		}
		if verbose {
			logger := logrus.New()
			logger.SetLevel(logrus.DebugLevel)
			mgrArgs["logger"] = logger
		}

		var err error
		oskManager, err = oskmgr.NewManager(mgrArgs)
		if err != nil {
			fmt.Printf("Failed to initialize osk manager: %v\n", err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by osk.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if oskManager == nil || oskManager.Logger == nil {
			fmt.Printf("%v\n", err)
		} else {
			oskManager.Logger.Error(err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./osk.yaml or ~/osk.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
