// Package commands implements the CLI commands for the ontoforge build
// tool.
package commands

import (
	"context"
	"strings"

	"github.com/ontoforge/ontoforge/internal/adapters/logger"
	"github.com/ontoforge/ontoforge/internal/app"
	"github.com/ontoforge/ontoforge/internal/build"
	"github.com/ontoforge/ontoforge/internal/core/domain"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for ontoforge.
type CLI struct {
	app     *app.App
	logger  *logger.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log *logger.Logger) *CLI {
	c := &CLI{app: a, logger: log}

	rootCmd := &cobra.Command{
		Use:   "ontoforge [task] [taskarg]",
		Short: "Software for ontology development and deployment",
		Long: "Software for ontology development and deployment.\n\n" +
			"The build task to run must be one of: " +
			strings.Join(a.TaskNames(), ", ") + ".\n" +
			"For the build task \"make\", the task argument should be one of: " +
			strings.Join(a.TaskArgNames("make"), ", ") + ".\n" +
			"For the build task \"initialize\", the task argument should be the " +
			"name of an OWL file for a new ontology project.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.Flags().StringP(
		"config_file", "c", "",
		"The path to a configuration file for the ontology build process",
	)
	rootCmd.Flags().BoolP(
		"quiet", "q", false,
		"Suppress all console status messages except for error messages",
	)
	rootCmd.Flags().BoolP(
		"force", "f", false,
		"Run the build task even if the build products appear to be up to date",
	)
	rootCmd.Flags().BoolP(
		"merge_imports", "m", false,
		"Merge imported ontologies with the main ontology into a new ontology document",
	)
	rootCmd.Flags().BoolP(
		"reason", "r", false,
		"Run a reasoner on the ontology and add inferred axioms to a new ontology document",
	)
	rootCmd.Flags().Bool(
		"no_def_expand", false,
		"Do not expand term labels in text definitions with their identifiers",
	)
	rootCmd.Flags().StringP(
		"release_date", "d", "",
		"A custom date for a release build, in the format YYYY-MM-DD",
	)
	rootCmd.Flags().StringP(
		"input_data", "i", "",
		"The path to a source ontology/data set for inference pipeline mode, or a "+
			"file of search terms for entity finding mode; standard in when omitted",
	)
	rootCmd.Flags().StringP(
		"fileout", "o", "",
		"The path to an output file for inference pipeline or entity finding mode; "+
			"standard out when omitted",
	)
	rootCmd.Flags().StringArrayP(
		"search_ont", "s", nil,
		"The path to a source ontology file to search in entity finding mode; "+
			"may be repeated",
	)

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// run parses the positional arguments and flags into build options and hands
// them to the application.
func (c *CLI) run(cmd *cobra.Command, args []string) error {
	opts, err := c.parseOptions(cmd, args)
	if err != nil {
		return err
	}
	c.logger.SetQuiet(opts.Quiet)
	return c.app.Run(cmd.Context(), opts)
}

// parseOptions builds the option set from the command line. All
// discriminating options are populated, with the argparse-style defaults
// "make" and "ontology" for omitted positional arguments.
func (c *CLI) parseOptions(cmd *cobra.Command, args []string) (*domain.Options, error) {
	task := "make"
	taskArg := "ontology"
	if len(args) > 0 {
		task = args[0]
	}
	if len(args) > 1 {
		taskArg = args[1]
	}

	flags := cmd.Flags()
	configFile, err := flags.GetString("config_file")
	if err != nil {
		return nil, err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return nil, err
	}
	force, err := flags.GetBool("force")
	if err != nil {
		return nil, err
	}
	mergeImports, err := flags.GetBool("merge_imports")
	if err != nil {
		return nil, err
	}
	reason, err := flags.GetBool("reason")
	if err != nil {
		return nil, err
	}
	noDefExpand, err := flags.GetBool("no_def_expand")
	if err != nil {
		return nil, err
	}
	releaseDate, err := flags.GetString("release_date")
	if err != nil {
		return nil, err
	}
	inputData, err := flags.GetString("input_data")
	if err != nil {
		return nil, err
	}
	fileOut, err := flags.GetString("fileout")
	if err != nil {
		return nil, err
	}
	searchOnts, err := flags.GetStringArray("search_ont")
	if err != nil {
		return nil, err
	}

	return &domain.Options{
		Task:         task,
		TaskArg:      domain.Some(taskArg),
		MergeImports: domain.Some(mergeImports),
		Reason:       domain.Some(reason),
		ConfigFile:   configFile,
		Force:        force,
		Quiet:        quiet,
		NoDefExpand:  noDefExpand,
		ReleaseDate:  releaseDate,
		InputData:    strings.TrimSpace(inputData),
		FileOut:      strings.TrimSpace(fileOut),
		SearchOnts:   searchOnts,
	}, nil
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
