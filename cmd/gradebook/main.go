// Package main is the entry point of the gradebook CLI.
//
// Layers follow the usual split:
// - Domain: student records and the operations over them
// - Application: commands and queries
// - Infrastructure: the file-backed record store
// - Interface: the interactive menu session
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/infrastructure/persistence/filestore"
	"github.com/alem-hub/gradebook/internal/interface/cli"
	"github.com/alem-hub/gradebook/internal/interface/cli/presenter"
	"github.com/alem-hub/gradebook/pkg/logger"
)

func main() {
	os.Exit(execute(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// execute runs the root command and returns the process exit code. Errors
// already shown to the user are not printed a second time.
func execute(in io.Reader, out, errOut io.Writer, args []string) int {
	cmd := newRootCmd(in, out, errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var shown *reportedError
	if !errors.As(err, &shown) {
		fmt.Fprintf(errOut, "gradebook: %v\n", err)
	}
	return 1
}

// reportedError marks an error that was already presented on the output.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// rootFlags override values loaded from the environment.
type rootFlags struct {
	file      string
	logLevel  string
	logFormat string
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:   "gradebook",
		Short: "Look up, update and average student course scores",
		Long: `gradebook loads student records from a JSON or YAML file and opens an
interactive menu to look up a student, add a course score, or compute a
student's average. Every added course is written back to the file at once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd.Context(), flags, in, out, errOut)
		},
	}

	root.PersistentFlags().StringVarP(&flags.file, "file", "f", "", "student data file (env GRADEBOOK_FILE)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "json or console (env LOG_FORMAT)")

	root.AddCommand(newNumbersCmd(out))
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	return root
}

// loadConfig reads the environment, applies flag overrides and validates
// the result once, so a flag can replace an invalid environment value.
func loadConfig(flags rootFlags) (*config.Config, error) {
	cfg := config.FromEnv()
	if flags.file != "" {
		cfg.Storage.File = flags.file
	}
	if flags.logLevel != "" {
		cfg.Observability.LogLevel = flags.logLevel
	}
	if flags.logFormat != "" {
		cfg.Observability.LogFormat = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func runSession(ctx context.Context, flags rootFlags, in io.Reader, out, errOut io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Output:    errOut,
		Level:     logger.ParseLevel(cfg.EffectiveLogLevel()),
		Format:    logger.Format(cfg.Observability.LogFormat),
		AddCaller: cfg.App.Debug,
	}).With(
		logger.String("app", cfg.App.Name),
		logger.String("version", cfg.App.Version),
		logger.String("env", string(cfg.App.Environment)),
	)
	defer func() { _ = log.Sync() }()

	store := filestore.New(cfg.Storage.File, filestore.WithLogger(log))

	records, err := store.Load(ctx)
	if err != nil {
		// Missing or unreadable data ends the program before the menu opens.
		fmt.Fprint(out, presenter.Error(err))
		return &reportedError{err: err}
	}

	session := cli.NewSession(cli.Options{
		Records: records,
		Store:   store,
		In:      in,
		Out:     out,
		Logger:  log,
	})

	if err := session.Run(ctx); err != nil {
		log.Error("session aborted", logger.Err(err))
		return err
	}
	return nil
}
