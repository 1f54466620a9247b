package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tokokue.com/admin/internal/modules/adminauth"
)

func newPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "password", Short: "Admin password helpers"}
	cmd.AddCommand(&cobra.Command{
		Use:   "hash",
		Short: "Read a password from stdin and print its bcrypt hash for admin.password_hash",
		// no config needed
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc := bufio.NewScanner(cmd.InOrStdin())
			if !sc.Scan() {
				if err := sc.Err(); err != nil {
					return err
				}
				return errors.New("no password on stdin")
			}
			h, err := adminauth.HashPassword(strings.TrimSpace(sc.Text()))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	})
	return cmd
}
