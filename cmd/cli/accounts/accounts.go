package accounts

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yorul/attendance-management/cmd/cli/output"
	"github.com/yorul/attendance-management/cmd/cli/root"
	"github.com/yorul/attendance-management/internal/auth"
	"github.com/yorul/attendance-management/internal/config"
	"github.com/yorul/attendance-management/internal/db"
	"github.com/yorul/attendance-management/internal/repo"
)

// ==========================
// CLI Command Init
// ==========================
func init() {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Manage accounts",
		Long:  "List accounts or create one directly in the database, e.g. to bootstrap the admin account.",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := connect()
			if err != nil {
				return err
			}
			defer database.Close()
			return runList(database)
		},
	}

	var username, password, email string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long: `Create an account directly in the database, bypassing the web form's
validation. Intended for bootstrapping the "admin" account.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			database, err := db.Connect(cfg)
			if err != nil {
				return err
			}
			defer database.Close()
			return runCreate(database, cfg.SecretKey, username, password, email)
		},
	}
	createCmd.Flags().StringVar(&username, "username", "", "account username")
	createCmd.Flags().StringVar(&password, "password", "", "account password")
	createCmd.Flags().StringVar(&email, "email", "", "account email")
	createCmd.MarkFlagRequired("username")
	createCmd.MarkFlagRequired("password")
	createCmd.MarkFlagRequired("email")

	accountsCmd.AddCommand(listCmd, createCmd)
	root.GetRoot().AddCommand(accountsCmd)
}

func connect() (*sql.DB, error) {
	return db.Connect(config.Load())
}

// ==========================
// List Accounts
// ==========================
func runList(database *sql.DB) error {
	accounts, err := repo.NewAccountRepo(database).List(context.Background())
	if err != nil {
		return err
	}

	rows := make([][]interface{}, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []interface{}{a.ID, a.Username, a.Email})
	}
	output.RenderTable([]string{"ID", "Username", "Email"}, rows)
	return nil
}

// ==========================
// Create Account
// ==========================
func runCreate(database *sql.DB, secret, username, password, email string) error {
	hashed := auth.HashPassword(password, secret)
	account, err := repo.NewAccountRepo(database).Create(context.Background(), username, hashed, email)
	if err != nil {
		return err
	}

	fmt.Printf("Account created: id=%d username=%s\n", account.ID, account.Username)
	return nil
}
