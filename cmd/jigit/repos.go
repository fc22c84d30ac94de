package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/seojun/jigit/internal/batch"
	"github.com/seojun/jigit/internal/gitops"
	"github.com/seojun/jigit/internal/render"
)

func newReposCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repos",
		Short: "Operate on a directory of local git working copies",
	}
	cmd.AddCommand(newReposUpdateCmd())
	return cmd
}

func newReposUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [dir]",
		Short: "Pull or fetch every working copy under a directory",
		Long: `Update every git working copy directly under the given directory
(default "."). A repository with the target branch checked out is pulled;
any other repository gets the branch fetched into the matching local
branch, leaving its checkout untouched. Failures are reported per
repository and never stop the rest of the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadProfile()
			if err != nil {
				return err
			}
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			dirs, err := gitops.DiscoverRepos(root)
			if err != nil {
				return err
			}
			if len(dirs) == 0 {
				fmt.Println("no git working copies found under", root)
				return nil
			}

			pw := progress.NewWriter()
			pw.SetOutputWriter(os.Stderr)
			pw.SetUpdateFrequency(100 * time.Millisecond)
			go pw.Render()

			spinner := &progress.Tracker{
				Message: fmt.Sprintf("Updating %d repositories", len(dirs)),
				Total:   int64(len(dirs)),
			}
			pw.AppendTracker(spinner)

			git := gitops.New()
			results := batch.Map(cmd.Context(), dirs, p.Concurrency,
				func(ctx context.Context, dir string) (gitops.UpdateResult, error) {
					r := git.Update(ctx, dir, p.Remote, p.Branch)
					spinner.Increment(1)
					return r, r.Err
				})
			spinner.MarkAsDone()
			pw.Stop()
			for pw.IsRenderInProgress() {
				time.Sleep(10 * time.Millisecond)
			}

			updates := make([]gitops.UpdateResult, 0, len(results))
			failed := 0
			for _, r := range results {
				updates = append(updates, r.Value)
				if r.Err != nil {
					failed++
				}
			}
			fmt.Print(render.UpdateSummary(updates))

			if failed > 0 {
				return errors.Errorf("%d of %d repositories failed to update", failed, len(dirs))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("remote", "origin", "git remote to update from")
	flags.String("branch", "main", "branch to bring up to date")
	flags.Int("jobs", 0, "max concurrent updates, 0 for unbounded")
	for _, name := range []string{"remote", "branch", "jobs"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	return cmd
}
