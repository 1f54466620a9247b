package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newProductsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Inspect the product catalog"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print products in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.app(cmd.Context())
			if err != nil {
				return err
			}
			list, err := a.Catalog.Products(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tNAME\tPRICE\tIMAGE")
			for i, p := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, p.ID, p.Name, p.Price, describeImage(p.Img))
			}
			return w.Flush()
		},
	})
	return cmd
}

func newSlidesCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{Use: "slides", Short: "Inspect the slideshow"}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Print slides in display order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := e.app(cmd.Context())
			if err != nil {
				return err
			}
			list, err := a.Catalog.Slides(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tID\tIMAGE")
			for i, s := range list {
				fmt.Fprintf(w, "%d\t%s\t%s\n", i, s.ID, describeImage(s.Src))
			}
			return w.Flush()
		},
	})
	return cmd
}

// describeImage shortens a data-URL to its mime type and encoded size.
func describeImage(src string) string {
	if src == "" {
		return "-"
	}
	head, data, ok := strings.Cut(src, ",")
	if !ok || !strings.HasPrefix(head, "data:") {
		return "?"
	}
	mime, _, _ := strings.Cut(strings.TrimPrefix(head, "data:"), ";")
	return fmt.Sprintf("%s %dB", mime, len(data))
}
