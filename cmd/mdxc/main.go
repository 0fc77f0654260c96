package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/kilianc/mdxc/internal/mdx/config"
	"github.com/kilianc/mdxc/internal/mdx/discover"
	"github.com/kilianc/mdxc/internal/mdx/outfile"
	"github.com/kilianc/mdxc/pkg/mdx"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type globalOptions struct {
	ConfigPath       string
	LogLevel         string
	SkipExport       bool
	PreserveNewlines bool
	MaxDepth         int
	Dir              string
	Stdout           bool
}

var (
	opts globalOptions
	cfg  = config.Default()

	rootCmd = &cobra.Command{
		Use:   "mdxc [flags] [paths...]",
		Short: "Compile MDX trees to JSX",
		Long: `Generates one *.jsx file next to each *.hast.json tree.

Paths behave like Go patterns:
  - ./...               recurse from cwd
  - ./dir               only that directory (non-recursive)
  - ./dir/...           recurse from that directory
  - ./page.hast.json    only that file`,
		Args:              cobra.ArbitraryArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: before,
		RunE:              generate,
	}
)

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())
	addCompileFlags(rootCmd.Flags())
	rootCmd.AddCommand(previewCmd)
}

func addGlobalFlags(flags *pflag.FlagSet) {
	flags.StringVar(&opts.ConfigPath, "config", "", "project file (defaults to .mdxc.yaml, .mdxc.yml or .mdxc.toml in cwd)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log messages above specified level (trace, debug, info, warn, error)")
}

func addCompileFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&opts.SkipExport, "skip-export", false, "do not export the generated component as the module default")
	flags.BoolVar(&opts.PreserveNewlines, "preserve-newlines", false, "keep newline text nodes as text outside <pre> too")
	flags.IntVar(&opts.MaxDepth, "max-depth", 0, "maximum tree depth (0 uses the compiler default)")
	flags.StringVar(&opts.Dir, "dir", "", "only generate for this directory (non-recursive)")
	flags.BoolVar(&opts.Stdout, "stdout", false, "print generated code instead of writing files")
}

// before loads the project file and applies flags that were set explicitly
// on top of it.
func before(cmd *cobra.Command, args []string) error {
	path := opts.ConfigPath
	if path == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		path = config.Find(cwd)
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = c

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.LogLevel
	}
	if flags.Changed("skip-export") {
		cfg.SkipExport = opts.SkipExport
	}
	if flags.Changed("preserve-newlines") {
		cfg.PreserveNewlines = opts.PreserveNewlines
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = opts.MaxDepth
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	return nil
}

func compileOptions() mdx.Options {
	return mdx.Options{
		SkipExport:       cfg.SkipExport,
		PreserveNewlines: cfg.PreserveNewlines,
		MaxDepth:         cfg.MaxDepth,
	}
}

func generate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	var paths []string
	if strings.TrimSpace(opts.Dir) != "" {
		if len(args) != 0 {
			return errors.New("mdxc: cannot use --dir with positional paths")
		}
		dir := opts.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(cwd, dir)
		}
		paths, err = discover.Dir(dir)
	} else {
		paths, err = discover.Paths(cwd, args)
	}
	if err != nil {
		return err
	}
	logrus.Debugf("Found %d tree files", len(paths))

	var allErr *multierror.Error
	for _, pth := range paths {
		if err := generateFile(cmd, pth); err != nil {
			allErr = multierror.Append(allErr, err)
		}
	}
	return allErr.ErrorOrNil()
}

func generateFile(cmd *cobra.Command, pth string) error {
	b, err := os.ReadFile(pth)
	if err != nil {
		return err
	}
	src, err := mdx.CompileJSON(b, compileOptions())
	if err != nil {
		return errors.Wrap(err, pth)
	}
	if opts.Stdout {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), src)
		return err
	}
	outPath := outfile.OutputPath(pth)
	written, err := outfile.WriteGeneratedFile(outPath, []byte(src))
	if err != nil {
		return err
	}
	if written {
		logrus.Infof("Wrote %s", outPath)
	} else {
		logrus.Debugf("%s is up to date", outPath)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
