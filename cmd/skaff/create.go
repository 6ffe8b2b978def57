package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/skaff/pkg/commands/create"
	"github.com/arthur-debert/skaff/pkg/config"
	"github.com/arthur-debert/skaff/pkg/logging"
	"github.com/arthur-debert/skaff/pkg/materialize"
)

func newCreateCmd() *cobra.Command {
	var (
		language  string
		license   string
		authors   []string
		quiet     bool
		skip      bool
		manualFor string
	)

	cmd := &cobra.Command{
		Use:   "create [directories...]",
		Short: "Create one or more project skeletons",
		Long: `Create materializes a project skeleton in each named directory: the
directory tree, CMake build configuration, license, documentation stubs,
and editor/VCS configuration for the chosen language.

Unless --quiet is given, the generated CMakeLists.txt and Doxyfile are
opened in $EDITOR (falling back to vim, vi, or nano) for a first pass.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.create")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if language == "" {
				language = cfg.Language
			}
			if license == "" {
				license = cfg.License
			}
			if len(authors) == 0 {
				authors = cfg.ResolveAuthors()
			}
			quiet = quiet || cfg.Quiet

			policy := materialize.PolicyFail
			if skip {
				policy = materialize.PolicySkip
			}

			// Interrupts must reach a pending editor or generator
			// subprocess so cleanup can run.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			logger.Info().
				Strs("targets", args).
				Str("language", language).
				Str("license", license).
				Bool("quiet", quiet).
				Msg("Starting create")

			result, err := create.Run(ctx, create.Options{
				Targets:   args,
				Language:  language,
				License:   license,
				Authors:   authors,
				Quiet:     quiet,
				Policy:    policy,
				ManualFor: manualFor,
				Confirm:   confirmEditing,
			})
			if result != nil {
				printCreateResult(result)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&language, "language", "x", "", "major programming language used (c, cpp)")
	cmd.Flags().StringVarP(&license, "license", "l", "", "type of license (bsd2, bsd3, gpl2, gpl3, mit)")
	cmd.Flags().StringSliceVarP(&authors, "author", "a", nil, "author(s) of the project")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "no interactive CMakeLists.txt and Doxyfile editing")
	cmd.Flags().BoolVar(&skip, "skip-existing", false, "leave pre-existing files in place instead of failing")
	cmd.Flags().StringVar(&manualFor, "man-for", "", "executable to generate a compressed manual page for")

	return cmd
}
