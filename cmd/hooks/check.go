package main

import (
	"fmt"

	"github.com/michael-freling/blog-safety-hooks/internal/hooks"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	var (
		command  string
		filePath string
		toolName string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Classify a command or file path given on the command line",
		Long:  `Evaluates the safety rules against --command (Bash) or --file-path (Read, Edit, MultiEdit, Write) and prints ALLOW or BLOCK. Exits with code 2 when blocked.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input *hooks.ToolInput
			switch {
			case command != "" && filePath != "":
				return fmt.Errorf("--command and --file-path cannot be used together")
			case command != "":
				input = hooks.NewBashInput(command)
			case filePath != "":
				kind := hooks.ParseToolKind(toolName)
				if !kind.IsFileTool() {
					return fmt.Errorf("--tool must be one of Read, Edit, MultiEdit, Write, got %q", toolName)
				}
				input = hooks.NewFileInput(kind, filePath)
			default:
				return fmt.Errorf("one of --command or --file-path is required")
			}

			_, rules := opts.setup(cmd)
			result, err := hooks.NewRuleEngine(rules...).Evaluate(input)
			if err != nil {
				return fmt.Errorf("failed to evaluate rules: %w", err)
			}

			if result.Allowed {
				fmt.Fprintln(cmd.OutOrStdout(), "ALLOW")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "BLOCK [%s] %s\n", result.RuleName, result.Category)
			for _, line := range result.Lines() {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return &exitCodeError{code: exitBlocked}
		},
	}

	cmd.Flags().StringVar(&command, "command", "", "shell command to classify as a Bash tool call")
	cmd.Flags().StringVar(&filePath, "file-path", "", "file path to classify as a file tool call")
	cmd.Flags().StringVar(&toolName, "tool", hooks.ToolRead.String(), "file tool used with --file-path")

	return cmd
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the safety rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, rule := range hooks.DefaultRules() {
				category := ""
				if categorized, ok := rule.(hooks.CategorizedRule); ok {
					category = string(categorized.Category())
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-22s %s\n", rule.Name(), category, rule.Description())
			}
			return nil
		},
	}
}
