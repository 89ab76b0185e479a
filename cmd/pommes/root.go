package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "pommes",
	Short:         "pommes looks up today's cafeteria menu for fries",
	Long:          "pommes queries the ETH cafeteria menu API for today and lists every meal mentioning the search keyword.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
