package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/michael-freling/blog-safety-hooks/internal/audit"
	"github.com/michael-freling/blog-safety-hooks/internal/config"
	"github.com/michael-freling/blog-safety-hooks/internal/hooks"
	"github.com/michael-freling/blog-safety-hooks/internal/logger"
	"github.com/spf13/cobra"
)

const (
	// exitBlocked tells the assistant that the tool call was rejected.
	exitBlocked = 2

	auditTimeout = 500 * time.Millisecond
)

var log = logger.New("hooks")

// exitCodeError carries a process exit code out of a command's RunE.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

// recorderFactory opens the audit recorder for the configured path.
type recorderFactory func(path string) audit.Recorder

type rootOptions struct {
	configPath  string
	logLevel    string
	newRecorder recorderFactory
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return newRootCmdWithRecorder(audit.NewRecorder)
}

func newRootCmdWithRecorder(newRecorder recorderFactory) *cobra.Command {
	opts := &rootOptions{
		newRecorder: newRecorder,
	}

	rootCmd := &cobra.Command{
		Use:           "safety-hooks",
		Short:         "Safety hooks that block destructive commands and credential access",
		Long:          `A CLI tool that classifies Claude Code tool calls before they run, blocking destructive shell commands and access to credential files.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to the YAML config file (default $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error); overrides the config file")

	rootCmd.AddCommand(newPreToolUseCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newRulesCmd())

	return rootCmd
}

// setup configures logging and returns the config and rule set to evaluate with.
// Config problems are logged and replaced by defaults so the hook keeps working.
func (o *rootOptions) setup(cmd *cobra.Command) (*config.Config, []hooks.Rule) {
	logger.SetOutput(cmd.ErrOrStderr())

	env, err := config.LoadEnv()
	if err != nil {
		log.Warn("ignoring environment: %v", err)
		env = &config.Env{}
	}

	configPath := o.configPath
	if configPath == "" {
		configPath = env.ConfigPath
	}
	cfg, err := config.Load(configPath, hooks.RuleNames())
	if err != nil {
		log.Warn("using default config: %v", err)
		cfg = config.Default()
	}
	cfg.ApplyEnv(env)

	levelName := cfg.LogLevel
	if o.logLevel != "" {
		levelName = o.logLevel
	}
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		log.Warn("%v", err)
		level = logger.LevelWarn
	}
	logger.SetGlobalLevel(level)

	// config.Load has already compiled these successfully.
	globs, _ := cfg.ProtectedGlobs()
	rules := hooks.DefaultRules(
		hooks.WithProtectedPaths(globs...),
		hooks.WithDisabledRules(cfg.DisabledRules...),
	)
	log.Debug("loaded %d rules from config %q", len(rules), configPath)
	return cfg, rules
}

func newPreToolUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:                "pre-tool-use",
		Short:              "Evaluate rules before tool execution",
		Long:               `Reads tool input from stdin as JSON and evaluates the safety rules. Returns exit code 0 to allow, exit code 2 to block. Any internal failure allows the tool call.`,
		// Unexpected arguments or flags must not fail the hook.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Warn("allowing tool call after panic: %v", r)
					err = nil
				}
			}()

			cfg, rules := opts.setup(cmd)
			if len(args) > 0 {
				log.Warn("ignoring unexpected arguments: %v", args)
			}

			toolInput, parseErr := hooks.ParseToolInput(cmd.InOrStdin())
			if parseErr != nil {
				log.Warn("allowing tool call with unreadable input: %v", parseErr)
				return nil
			}

			result, evalErr := hooks.NewRuleEngine(rules...).Decide(toolInput)
			if evalErr != nil {
				log.Warn("allowing tool call after rule failure: %v", evalErr)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), auditTimeout)
			defer cancel()
			if recordErr := opts.newRecorder(cfg.AuditLog).Record(ctx, audit.NewEntry(toolInput.ToolName, result)); recordErr != nil {
				log.Warn("failed to record decision: %v", recordErr)
			}

			if result.Allowed {
				log.Debug("allowed %s", toolInput.ToolName)
				return nil
			}

			log.Info("blocked %s by rule %s", toolInput.ToolName, result.RuleName)
			for _, line := range result.Lines() {
				fmt.Fprintln(cmd.ErrOrStderr(), line)
			}
			return &exitCodeError{code: exitBlocked}
		},
	}
}
