// Command glsltx applies registered GLSL-to-GLSL transformations to a
// source file, prints the unmodified parse/print round-trip, or lists the
// built-in transformation names a rule manifest may reference.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/printer"
	"github.com/glsltx/glsltx/pkg/rules"
	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	manifestPath string
	outPath      string
	verbose      bool
	debug        bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "glsltx",
		Short:         "glsltx is a programmable GLSL source-to-source transformation engine",
		Long: `glsltx parses GLSL source into a typed AST, lets registered
transformations query and mutate that tree via structural matchers and
templates, and reprints the result back to GLSL.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log phase-level progress")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log phase-level progress at debug detail")

	rootCmd.AddCommand(newTransformCmd(out, errOut))
	rootCmd.AddCommand(newPrintCmd(out, errOut))
	rootCmd.AddCommand(newListRulesCmd(out))

	return rootCmd
}

func newLogger(errOut io.Writer) zerolog.Logger {
	level := zerolog.Disabled
	switch {
	case debug:
		level = zerolog.DebugLevel
	case verbose:
		level = zerolog.InfoLevel
	}
	return zerolog.New(errOut).Level(level).With().Timestamp().Str("component", "glsltx").Logger()
}

func newTransformCmd(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform [file]",
		Short: "apply a rule manifest's transformations to a GLSL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doTransform(args[0], out, errOut)
		},
	}
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "YAML manifest naming which built-in rules to run, in order")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write result to this path instead of stdout")
	cmd.MarkFlagRequired("manifest")
	return cmd
}

func newPrintCmd(out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "print [file]",
		Short: "parse a GLSL file and reprint it unmodified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doPrint(args[0], out, errOut)
		},
	}
}

func newListRulesCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "list-rules",
		Short: "list the built-in rule names a manifest may reference",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range rules.Names() {
				fmt.Fprintln(out, name)
			}
			return nil
		},
	}
}

func readFile(filename string, errOut io.Writer) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: error reading %s: %v\n", filename, err)
		return "", err
	}
	return string(content), nil
}

func writeResult(result string, out io.Writer, errOut io.Writer) error {
	if outPath == "" {
		fmt.Fprint(out, result)
		return nil
	}
	if err := os.WriteFile(outPath, []byte(result), 0o644); err != nil {
		fmt.Fprintf(errOut, "glsltx: error writing %s: %v\n", outPath, err)
		return err
	}
	return nil
}

func doTransform(filename string, out, errOut io.Writer) error {
	src, err := readFile(filename, errOut)
	if err != nil {
		return err
	}

	manifestBytes, err := os.ReadFile(manifestPath)
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: error reading manifest %s: %v\n", manifestPath, err)
		return err
	}
	manifest, err := rules.ParseManifest(manifestBytes)
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: %v\n", err)
		return err
	}

	logger := newLogger(errOut)
	mgr, err := rules.Build(manifest, nil, transform.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: %v\n", err)
		return err
	}

	result, err := mgr.Transform(src)
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: transform failed: %v\n", err)
		return err
	}
	return writeResult(result, out, errOut)
}

func doPrint(filename string, out, errOut io.Writer) error {
	src, err := readFile(filename, errOut)
	if err != nil {
		return err
	}
	tu, _, err := astbuild.Build(src)
	if err != nil {
		fmt.Fprintf(errOut, "glsltx: parse failed: %v\n", err)
		return err
	}
	return writeResult(printer.Print(tu), out, errOut)
}
