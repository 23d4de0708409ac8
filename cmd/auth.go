// Package cmd implements the command-line interface for shikigo.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/shikigo-cli/shikigo/auth"
	"github.com/shikigo-cli/shikigo/color"
	"github.com/shikigo-cli/shikigo/style"
)

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authDeleteCmd)
}

// authCmd groups management of the Shikimori API token.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the Shikimori API token stored in the system keyring",
}

// authSetCmd stores an API token. The token is prompted for when not given
// as an argument, so it stays out of the shell history.
var authSetCmd = &cobra.Command{
	Use:   "set [token]",
	Short: "Store a Shikimori API token",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var token string
		if len(args) == 1 {
			token = args[0]
		} else {
			handleErr(survey.AskOne(
				&survey.Password{Message: "API token:"},
				&token,
				survey.WithValidator(survey.Required),
			))
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token stored\n", style.Fg(color.Green)("✓"))
	},
}

// authStatusCmd reports whether a token is present without revealing it.
var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check whether an API token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		if auth.Token() == "" {
			cmd.Println(style.Fg(color.Red)("no token stored"))
			return
		}
		cmd.Println(style.Fg(color.Green)("token present"))
	},
}

// authDeleteCmd removes the stored token.
var authDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the stored Shikimori API token",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed\n", style.Fg(color.Green)("✓"))
	},
}
