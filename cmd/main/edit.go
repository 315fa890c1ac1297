package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mbs/inventory/internal/domain"
	"mbs/inventory/internal/editor"
	"mbs/inventory/internal/events"
)

func (a *app) stockCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Read or override tracked stock levels",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <sku>...",
		Short: "Print the stock of each SKU, generating it on first access",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, sku := range args {
				v := a.Stock.GetStock(cmd.Context(), sku)
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", sku, v, a.Inventory.StockBadge(v).Text)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "locations <product-id>",
		Short: "Print the stock of a product at every location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, level := range a.Inventory.LocationStock(cmd.Context(), args[0]) {
				tag := ""
				if level.Location.IsMain {
					tag = "main"
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", level.Location.Name, level.Stock, tag)
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <sku> <value>",
		Short: "Override the stock of a SKU (requires --password)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid stock %q: %w", args[1], err)
			}

			a.unlock()
			stored, err := a.Editor.SetStock(cmd.Context(), args[0], value)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", args[0], stored)
			return nil
		},
	})

	return cmd
}

func (a *app) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <kind> <category/.../id> <field=value>...",
		Short: "Edit one catalog entry in place (requires --password)",
		Long: "Kinds: category, brand, subsection, color-product, direct-product, color.\n" +
			"Fields: name, image, logo, price, basePrice, startingPrice, stock, description, hex.",
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := domain.ParseKind(args[0])
			if !ok {
				return fmt.Errorf("unknown kind %q", args[0])
			}

			patch := make(editor.Patch)
			for _, kv := range args[2:] {
				field, value, found := strings.Cut(kv, "=")
				if !found {
					return fmt.Errorf("expected field=value, got %q", kv)
				}
				patch[field] = value
			}

			a.unlock()
			target := editor.Target{Kind: kind, Path: domain.NewPath(strings.Split(args[1], "/")...)}
			applied, err := a.Editor.Edit(cmd.Context(), target, patch)
			if err != nil {
				return err
			}
			if !applied {
				return fmt.Errorf("nothing to edit at %s", target)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", target)
			return nil
		},
	}
}

func (a *app) historyCommand() *cobra.Command {
	var count int64
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent catalog edits from the journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := a.Journal.Recent(cmd.Context(), "CatalogEdited", count)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, rec := range records {
				edit, err := events.UnmarshalEvent[*events.CatalogEdited](rec.Data)
				if err != nil {
					fmt.Fprintf(w, "%s\t(unreadable: %v)\n", rec.ID, err)
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%v\n",
					edit.EditedAt.Format("2006-01-02 15:04:05"), edit.Kind, strings.Join(edit.Path, "/"), edit.Fields)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int64VarP(&count, "count", "n", 20, "number of edits to show")
	return cmd
}
