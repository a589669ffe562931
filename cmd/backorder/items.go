package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qwicdev/backorder-analyzer/internal/cli"
	"github.com/qwicdev/backorder-analyzer/internal/model"
)

func itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Inspect item classification",
	}

	cmd.AddCommand(classifyItemCmd())

	return cmd
}

func classifyItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <item-no>",
		Short: "Resolve the category for one item",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			id := store.CategoryFor(args[0])
			if id == model.CategoryNone {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("item %s has no category and no default is configured", args[0])))
				return nil
			}
			fmt.Printf("%s → categorie %d: %s (%s)\n", args[0], id, store.NameOf(id), store.ActionOf(id))
			return nil
		},
	}
}
