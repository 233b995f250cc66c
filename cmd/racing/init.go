package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the bundled data files",
	Long: `Writes the bundled language files, save template and game database
into the data directory. Files that already exist are left alone.`,
	Args: cobra.NoArgs,
	Run:  runInit,
}

func runInit(_ *cobra.Command, _ []string) {
	store, _ := openData(newLogger(os.Stderr), false)

	n, err := store.Seed()
	if err != nil {
		fatal("could not write bundled data: %v", err)
	}
	if n == 0 {
		fmt.Printf("%s is up to date.\n", store.Root())
		return
	}
	fmt.Printf("Wrote %d files to %s.\n", n, store.Root())
}
