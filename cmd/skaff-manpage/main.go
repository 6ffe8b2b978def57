package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/skaff/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skaff",
		Short: "A CMake-based project scaffolding tool",
	}

	header := &doc.GenManHeader{
		Title:   "SKAFF",
		Section: "1",
		Source:  "skaff " + version.Version,
		Manual:  "skaff manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
