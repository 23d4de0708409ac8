// Package cmd implements the command-line interface for shikigo.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shikigo-cli/shikigo/color"
	"github.com/shikigo-cli/shikigo/constant"
	"github.com/shikigo-cli/shikigo/key"
	"github.com/shikigo-cli/shikigo/log"
	"github.com/shikigo-cli/shikigo/style"
	"github.com/shikigo-cli/shikigo/util"
	"github.com/shikigo-cli/shikigo/version"
	"github.com/shikigo-cli/shikigo/where"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().String("api-url", "", "Override the Shikimori GraphQL endpoint")
	lo.Must0(viper.BindPFlag(key.ShikimoriURL, rootCmd.PersistentFlags().Lookup("api-url")))

	rootCmd.PersistentFlags().Bool("browser-tls", false, "Impersonate a browser TLS fingerprint for API requests")
	lo.Must0(viper.BindPFlag(key.ShikimoriBrowserTLS, rootCmd.PersistentFlags().Lookup("browser-tls")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the shikigo application.
var rootCmd = &cobra.Command{
	Use:   constant.Shikigo,
	Short: "A resilient command-line client for the Shikimori anime database",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A resilient command-line client for the Shikimori anime database"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", style.Fg(color.Red)("✗"), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
