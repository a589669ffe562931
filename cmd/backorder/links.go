package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwicdev/backorder-analyzer/internal/cli"
	"github.com/qwicdev/backorder-analyzer/internal/model"
)

func linksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "links",
		Short: "Manage per-item link overrides",
		Long: `Each item can carry link overrides per type (` + model.LinkManufacturer + `,
` + model.LinkExternalSeller + `) used in the generated email drafts. Without an
override the category's default link is used.`,
	}

	cmd.AddCommand(getLinkCmd())
	cmd.AddCommand(setLinkCmd())

	return cmd
}

func getLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <item-no> <link-type>",
		Short: "Show the stored link override for an item",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			link := store.LinkFor(args[0], args[1])
			if link == "" {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no %s link stored for item %s", args[1], args[0])))
				return nil
			}
			fmt.Println(link)
			return nil
		},
	}
}

func setLinkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <item-no> <link-type> <url>",
		Short: "Store a link override for an item",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			if err := store.SetLink(args[0], args[1], args[2]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("%s link for item %s saved", args[1], args[0])))
			return nil
		},
	}
}
