package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dynajs",
	Short: "dynajs rewrites a source file into an instrumented equivalent",
	Long:  "dynajs rewrites a source file into a behaviorally identical file that reports every semantically interesting event to a runtime hook table",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
