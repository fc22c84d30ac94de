package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seojun/jigit/internal/adf"
	"github.com/seojun/jigit/internal/markdown"
	"github.com/seojun/jigit/internal/profile"
	"github.com/seojun/jigit/internal/render"
	"github.com/seojun/jigit/internal/tracker"
)

func newTrackerClient() (*tracker.Client, *profile.Profile, error) {
	p, err := loadProfile()
	if err != nil {
		return nil, nil, err
	}
	if err := p.RequireAuth(); err != nil {
		return nil, nil, err
	}
	client := tracker.NewClient(p.TrackerURL, p.Email, p.APIToken, time.Duration(p.Timeout)*time.Second)
	return client, p, nil
}

// issueBody reads the markdown body for an issue or comment from either
// an inline message or a file, converting it to the tracker's rich-text
// format. Returns nil when neither source is given.
func issueBody(message, file string) (*adf.Doc, error) {
	source := message
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "read body file %s", file)
		}
		_, body, err := markdown.ParseFrontMatter(data)
		if err != nil {
			return nil, err
		}
		source = body
	}
	if source == "" {
		return nil, nil
	}
	return markdown.ToDoc(source), nil
}

func newIssueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Create, inspect, and modify tracker issues",
	}
	cmd.AddCommand(newIssueCreateCmd())
	cmd.AddCommand(newIssueShowCmd())
	cmd.AddCommand(newIssueListCmd())
	cmd.AddCommand(newIssueEditCmd())
	cmd.AddCommand(newIssueCommentCmd())
	cmd.AddCommand(newIssueDeleteCmd())
	return cmd
}

func newIssueCreateCmd() *cobra.Command {
	var (
		summary   string
		issueType string
		labels    []string
		message   string
		bodyFile  string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, p, err := newTrackerClient()
			if err != nil {
				return err
			}
			if p.Project == "" {
				return errors.New("project key is not set (flag --project or JIGIT_PROJECT)")
			}

			description, err := issueBody(message, bodyFile)
			if err != nil {
				return err
			}
			key, err := client.CreateIssue(cmd.Context(), tracker.IssueInput{
				Project:     p.Project,
				Type:        issueType,
				Summary:     summary,
				Labels:      labels,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("created %s", key))
			return nil
		},
	}
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "issue summary")
	cmd.Flags().StringVarP(&issueType, "type", "t", "Task", "issue type name")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "label to apply (repeatable)")
	cmd.Flags().StringVarP(&message, "message", "m", "", "description as inline markdown")
	cmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "description from a markdown file")
	_ = cmd.MarkFlagRequired("summary")
	return cmd
}

func newIssueShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <key>",
		Short: "Show an issue with its description flattened to text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			issue, err := client.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			header := color.New(color.Bold)
			header.Printf("%s  %s\n", issue.Key, issue.Summary)
			fmt.Printf("%s / %s", issue.Type, issue.Status)
			if issue.Assignee != "" {
				fmt.Printf("  assignee: %s", issue.Assignee)
			}
			if !issue.Updated.IsZero() {
				fmt.Printf("  updated %s", humanize.Time(issue.Updated))
			}
			fmt.Println()

			if text := render.PlainText(issue.Description); text != "" {
				fmt.Println()
				fmt.Println(text)
			}
			return nil
		},
	}
}

func newIssueListCmd() *cobra.Command {
	var jql string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues matching a JQL query",
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, p, err := newTrackerClient()
			if err != nil {
				return err
			}
			query := jql
			if query == "" {
				if p.Project == "" {
					return errors.New("either --jql or a project key is required")
				}
				query = fmt.Sprintf("project = %s ORDER BY updated DESC", p.Project)
			}

			issues, err := client.SearchIssues(cmd.Context(), query)
			if err != nil {
				return err
			}
			render.IssueTable(os.Stdout, issues)
			return nil
		},
	}
	cmd.Flags().StringVarP(&jql, "jql", "q", "", "JQL query (defaults to the configured project, newest first)")
	return cmd
}

func newIssueEditCmd() *cobra.Command {
	var (
		summary  string
		message  string
		bodyFile string
	)
	cmd := &cobra.Command{
		Use:   "edit <key>",
		Short: "Replace an issue's description and optionally its summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			description, err := issueBody(message, bodyFile)
			if err != nil {
				return err
			}
			if summary == "" && description == nil {
				return errors.New("nothing to update: pass --summary, --message, or --body-file")
			}
			if err := client.UpdateIssue(cmd.Context(), args[0], summary, description); err != nil {
				return err
			}
			fmt.Println(color.GreenString("updated %s", args[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&summary, "summary", "s", "", "new summary")
	cmd.Flags().StringVarP(&message, "message", "m", "", "new description as inline markdown")
	cmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "new description from a markdown file")
	return cmd
}

func newIssueCommentCmd() *cobra.Command {
	var (
		message  string
		bodyFile string
	)
	cmd := &cobra.Command{
		Use:   "comment <key>",
		Short: "Add a comment to an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			body, err := issueBody(message, bodyFile)
			if err != nil {
				return err
			}
			if body == nil {
				return errors.New("comment body is required: pass --message or --body-file")
			}
			if err := client.AddComment(cmd.Context(), args[0], body); err != nil {
				return err
			}
			fmt.Println(color.GreenString("commented on %s", args[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "comment as inline markdown")
	cmd.Flags().StringVarP(&bodyFile, "body-file", "F", "", "comment from a markdown file")
	return cmd
}

func newIssueDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			if err := client.DeleteIssue(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(color.YellowString("deleted %s", args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
