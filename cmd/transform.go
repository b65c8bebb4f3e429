package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	godiffpatch "github.com/sourcegraph/go-diff-patch"
	"github.com/spf13/cobra"

	"github.com/dynajs-dev/dynajs/internal/diagnostic"
	"github.com/dynajs-dev/dynajs/internal/transform"
)

const (
	defaultRuntimeGlobal = "J$"
	defaultToolName      = "dynajs"
	defaultOutputPath    = ""
	defaultDiffPath      = ""
	defaultDebug         = false
)

var (
	sourcePath    string
	outputPath    string
	runtimeGlobal string
	toolName      string
	diffPath      string
	debug         bool
)

var transformCmd = &cobra.Command{
	Use:   "transform",
	Short: "instrument a source file",
	Long:  "rewrite a source file into an instrumented equivalent beside the original",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		RunTransform()
	},
}

// defaultOutputFilePath derives `<stem>__<tool-name>__.<ext>` beside path,
// per the file boundary convention spec.md section 6 names.
func defaultOutputFilePath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s__%s__%s", stem, toolName, ext)
}

func RunTransform() {
	if sourcePath == "" {
		log.Fatal("--path is required")
	}

	src, err := os.ReadFile(sourcePath)
	if err != nil {
		cobra.CheckErr(fmt.Errorf("--path %q is invalid: %v", sourcePath, err))
	}

	if outputPath == "" {
		outputPath = defaultOutputFilePath(sourcePath)
	}

	if debug {
		diagnostic.EnablePrinter(sourcePath)
	}

	out, err := transform.Transform(sourcePath, string(src), transform.Options{
		RuntimeGlobal: runtimeGlobal,
		ToolName:      toolName,
		InstPath:      outputPath,
		OrigPath:      sourcePath,
	})
	if err != nil {
		diagnostic.Flush()
		log.Fatal(err)
	}

	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		log.Fatal(err)
	}

	if diffPath != "" {
		patch := godiffpatch.GeneratePatch(filepath.Base(sourcePath), string(src), out)
		if err := os.WriteFile(diffPath, []byte(patch), 0o644); err != nil {
			log.Fatal(err)
		}
	}

	diagnostic.Flush()
}

func init() {
	transformCmd.Flags().StringVar(&sourcePath, "path", "", "source file to transform (required)")
	transformCmd.Flags().StringVar(&outputPath, "out", defaultOutputPath, "output path (defaults to <stem>__<tool-name>__.<ext> beside the input)")
	transformCmd.Flags().StringVar(&runtimeGlobal, "runtime-global", defaultRuntimeGlobal, "identifier the preamble and every hook call qualify against")
	transformCmd.Flags().StringVar(&toolName, "tool-name", defaultToolName, "tool name reported in the preamble's attribution comment")
	transformCmd.Flags().StringVar(&diffPath, "diff", defaultDiffPath, "also write a unified diff between the original and instrumented source to this path")
	transformCmd.Flags().BoolVar(&debug, "debug", defaultDebug, "enable the console diagnostic printer")
	cobra.MarkFlagFilename(transformCmd.Flags(), "diff", ".diff")

	rootCmd.AddCommand(transformCmd)
}
