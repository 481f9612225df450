package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-screengen/pkg/validation"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	issueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func newLintCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lint <project-file|->",
		Short: "Report problems in a project document before it is sanitized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			result := validation.ValidateDocument(data, validation.Options{})
			if asJSON {
				if err := writeJSON(cmd, "", result); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), formatIssues(result))
			}
			if !result.Valid {
				return fmt.Errorf("lint: %d issue(s)", len(result.Issues))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	return cmd
}

func formatIssues(result validation.Result) string {
	if result.Valid {
		return okStyle.Render("ok") + "\n"
	}
	var b strings.Builder
	for _, issue := range result.Issues {
		b.WriteString(issueStyle.Render("✗") + " ")
		if issue.Path != "" {
			b.WriteString(metaStyle.Render(issue.Path) + " ")
		}
		b.WriteString(issue.Message + "\n")
	}
	return b.String()
}
