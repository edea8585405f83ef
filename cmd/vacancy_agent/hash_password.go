package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrei/vacancy-tracker/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Generate a bcrypt hash for ADMIN_PASSWORD_HASH",
	Args:  cobra.ExactArgs(1),
	RunE:  runHashPassword,
}

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, args []string) error {
	hash, err := config.HashPassword(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, hash)
	return nil
}
