package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/seojun/jigit/internal/markdown"
)

// pageSource reads a page markdown file and resolves its title and space
// from frontmatter, with the profile's space as fallback.
func pageSource(file, fallbackSpace string) (title, space, body string, err error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", "", "", errors.Wrapf(err, "read page file %s", file)
	}
	meta, body, err := markdown.ParseFrontMatter(data)
	if err != nil {
		return "", "", "", err
	}
	title = meta.Title
	if title == "" {
		base := filepath.Base(file)
		title = markdown.Slugify(strings.TrimSuffix(base, filepath.Ext(base)))
	}
	space = meta.Space
	if space == "" {
		space = fallbackSpace
	}
	return title, space, body, nil
}

func newPageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "page",
		Short: "Create, inspect, and modify wiki pages",
	}
	cmd.AddCommand(newPageCreateCmd())
	cmd.AddCommand(newPageShowCmd())
	cmd.AddCommand(newPageEditCmd())
	cmd.AddCommand(newPageDeleteCmd())
	return cmd
}

func newPageCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <file>",
		Short: "Create a wiki page from a markdown file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := newTrackerClient()
			if err != nil {
				return err
			}

			title, space, body, err := pageSource(args[0], p.Space)
			if err != nil {
				return err
			}
			if space == "" {
				return errors.New("wiki space key is not set (frontmatter, flag --space, or JIGIT_SPACE)")
			}

			id, err := client.CreatePage(cmd.Context(), space, title, body)
			if err != nil {
				return err
			}
			fmt.Println(color.GreenString("created page %s (%s)", id, title))
			return nil
		},
	}
}

func newPageShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a wiki page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			page, err := client.GetPage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			color.New(color.Bold).Printf("%s (space %s, version %d)\n\n", page.Title, page.SpaceKey, page.Version)
			fmt.Println(page.Body)
			return nil
		},
	}
}

func newPageEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <file>",
		Short: "Replace a wiki page's body from a markdown file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, p, err := newTrackerClient()
			if err != nil {
				return err
			}
			title, _, body, err := pageSource(args[1], p.Space)
			if err != nil {
				return err
			}
			if err := client.UpdatePage(cmd.Context(), args[0], title, body); err != nil {
				return err
			}
			fmt.Println(color.GreenString("updated page %s", args[0]))
			return nil
		},
	}
}

func newPageDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a wiki page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to delete without --yes")
			}
			client, _, err := newTrackerClient()
			if err != nil {
				return err
			}
			if err := client.DeletePage(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println(color.YellowString("deleted page %s", args[0]))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}
