package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seojun/jigit/internal/profile"
	"github.com/seojun/jigit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "jigit",
	Short:         "Batch-update local git working copies and manage tracker issues and wiki pages.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Credentials usually live in a .env next to the working tree;
		// a missing file is fine.
		_ = godotenv.Load()
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the build version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.String())
	},
}

// loadProfile builds the runtime profile from flags, .env, and the
// environment.
func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		TrackerURL:  viper.GetString("url"),
		Email:       viper.GetString("email"),
		APIToken:    viper.GetString("token"),
		Project:     viper.GetString("project"),
		Space:       viper.GetString("space"),
		Remote:      viper.GetString("remote"),
		Branch:      viper.GetString("branch"),
		Timeout:     viper.GetInt("timeout"),
		Concurrency: viper.GetInt("jobs"),
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("url", "", "tracker instance URL, e.g. https://example.atlassian.net")
	flags.String("email", "", "account email for API authentication")
	flags.String("token", "", "API token")
	flags.String("project", "", "default issue project key")
	flags.String("space", "", "default wiki space key")
	flags.Int("timeout", 30, "request timeout in seconds")

	for _, name := range []string{"url", "email", "token", "project", "space", "timeout"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newIssueCmd())
	rootCmd.AddCommand(newPageCmd())
	rootCmd.AddCommand(newReposCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
