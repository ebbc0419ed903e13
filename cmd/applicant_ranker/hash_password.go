// Package main implements the applicant_ranker CLI for feature extraction and scoring.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/honorsoc/applicant-ranker/internal/config"
)

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Hash a reviewer password for REVIEWER_PASSWORD_HASH",
	Long: `Hashes a password with bcrypt for use as the REVIEWER_PASSWORD_HASH environment variable.

The password is read from --password, or from stdin when the flag is omitted. BCRYPT_COST and PASSWORD_PEPPER are honored; the same pepper must be set when the server verifies logins.`,
	RunE: runHashPassword,
}

var hashPasswordValue string

func init() {
	hashPasswordCmd.Flags().StringVar(&hashPasswordValue, "password", "", "Password to hash (read from stdin when omitted)")

	rootCmd.AddCommand(hashPasswordCmd)
}

func runHashPassword(_ *cobra.Command, _ []string) error {
	password := hashPasswordValue
	if password == "" {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read password from stdin: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	hash, err := passwordConfig.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	_, _ = fmt.Fprintln(os.Stdout, hash)
	return nil
}
