package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/qwicdev/backorder-analyzer/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage backorder categories",
		Long:  `List and edit the categories used to classify backordered items.`,
	}

	cmd.AddCommand(listCategoriesCmd())
	cmd.AddCommand(showCategoryCmd())
	cmd.AddCommand(addItemCmd())
	cmd.AddCommand(removeItemCmd())
	cmd.AddCommand(updateCategoryCmd())

	return cmd
}

func listCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := openStore()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(cli.PrimaryColor)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Naam"),
				headerStyle.Render("Actie"),
				headerStyle.Render("Items"))

			for _, cat := range store.Categories() {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", cat.ID, cat.Name, cat.Action, len(cat.Items))
			}
			return nil
		},
	}
}

func showCategoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one category with its member items",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			items := store.ItemsIn(id)
			content := fmt.Sprintf(`%s

%s

Actie: %s
Kleur: #%s
Items (%d): %s`,
				store.NameOf(id),
				store.DescriptionOf(id),
				store.ActionOf(id),
				store.ColorOf(id),
				len(items),
				strings.Join(items, ", "))

			fmt.Println(cli.RenderBox(fmt.Sprintf("Categorie %d", id), content))
			return nil
		},
	}
}

func addItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-item <category-id> <item-no>",
		Short: "Add an item to a category's member list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			added, err := store.AddItem(args[1], id)
			if err != nil {
				return err
			}
			if !added {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("item %s is already in category %d", args[1], id)))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("item %s added to category %d (%s)", args[1], id, store.NameOf(id))))
			return nil
		},
	}
}

func removeItemCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-item <category-id> <item-no>",
		Short: "Remove an item from a category's member list",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			removed, err := store.RemoveItem(args[1], id)
			if err != nil {
				return err
			}
			if !removed {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("item %s is not in category %d", args[1], id)))
				return nil
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("item %s removed from category %d", args[1], id)))
			return nil
		},
	}
}

func updateCategoryCmd() *cobra.Command {
	var (
		name        string
		description string
		action      string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a category's attributes",
		Long:  `Overwrite the name, description, action text, or color of a category. Flags left empty keep the current value.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseCategoryID(args[0])
			if err != nil {
				return err
			}

			store, err := openStore()
			if err != nil {
				return err
			}

			if err := store.UpdateCategory(id, name, description, action, color); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("category %d updated", id)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringVar(&action, "action", "", "recommended action text")
	cmd.Flags().StringVar(&color, "color", "", "display color (RRGGBB)")

	return cmd
}

func parseCategoryID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid category ID %q: expected a positive integer", s)
	}
	return id, nil
}
