package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSavedLocally = errors.New("remote save failed, payload kept in the local mirror")

func newSyncCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Move the site payload between the local store and the remote endpoint",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Load the remote snapshot, falling back to the local mirror",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.app(cmd.Context())
			if err != nil {
				return err
			}
			src, err := a.Site.Bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded from %s\n", src)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Send everything to the remote save endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.app(cmd.Context())
			if err != nil {
				return err
			}
			res, err := a.Site.SaveAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			if !res.Remote {
				return errSavedLocally
			}
			return nil
		},
	})

	return cmd
}
