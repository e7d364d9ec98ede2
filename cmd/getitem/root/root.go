package root

import (
	"fmt"
	"strings"

	"github.com/flarebyte/getitem/internal/buildinfo"
	"github.com/flarebyte/getitem/internal/catalog"
	"github.com/flarebyte/getitem/internal/logging"
	"github.com/flarebyte/getitem/internal/render"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const exitCodeUsage = 2

// usageError is returned for bad flags or arguments.
type usageError struct {
	msg string
}

func (e usageError) Error() string { return e.msg }
func (e usageError) ExitCode() int { return exitCodeUsage }

type options struct {
	catalogPath string
	format      string
	verbose     bool
}

// NewRootCmd creates the getitem command.
func NewRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "getitem [flags] ITEM",
		Short: "Lookup the value of an item from items.json",
		Long: `Lookup the value of an item from items.json.

The catalog is read from items.json next to the getitem executable unless
--catalog is given. Scalars print as plain text; arrays and objects print as
single-line JSON.`,
		Example: `  getitem sword
  getitem shield --format yaml
  getitem potion --catalog ./testdata/items.json`,
		Version:       buildinfo.Summary(),
		Args:          exactlyOneItem,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, opts, args[0])
		},
	}
	cmd.SetVersionTemplate("getitem {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{msg: err.Error()}
	})

	names := make([]string, 0, len(render.Formats))
	for _, f := range render.Formats {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(&opts.catalogPath, "catalog", "c", "", "Path to the catalog file (default: items.json beside the executable)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(render.FormatAuto), "Output format: "+strings.Join(names, ", "))
	cmd.Flags().BoolVar(&opts.verbose, "verbose", false, "Log diagnostics to stderr")
	return cmd
}

func exactlyOneItem(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError{msg: "missing required argument: ITEM"}
	case len(args) > 1:
		return usageError{msg: fmt.Sprintf("unexpected argument: %s", args[1])}
	}
	return nil
}

func runLookup(cmd *cobra.Command, opts options, item string) error {
	format, err := render.ParseFormat(opts.format)
	if err != nil {
		return usageError{msg: err.Error()}
	}
	log := logging.New(cmd.ErrOrStderr(), opts.verbose)
	defer func() { _ = log.Sync() }()

	path := opts.catalogPath
	if path == "" {
		if path, err = catalog.DefaultPath(); err != nil {
			return err
		}
	}
	log.Debug("resolved catalog path", zap.String("path", path))

	c, err := catalog.Load(path)
	if err != nil {
		log.Debug("catalog load failed", zap.Error(err))
		return err
	}
	log.Debug("catalog loaded", zap.Int("items", c.Items.Len()))

	v, err := c.Lookup(item)
	if err != nil {
		return err
	}
	log.Debug("item found", zap.String("item", item), zap.String("kind", catalog.KindName(v)))

	return render.Write(cmd.OutOrStdout(), v, format)
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
