package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mbs/inventory/internal/navigation"
	"mbs/inventory/internal/pricing"
	"mbs/inventory/internal/service"
)

func (a *app) seedCommand() *cobra.Command {
	var warmStock bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the default catalog where nothing is saved yet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Seed(cmd.Context(), warmStock)
		},
	}
	cmd.Flags().BoolVar(&warmStock, "warm-stock", false, "also generate stock records for every tracked SKU")
	return cmd
}

func (a *app) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [category|brand|subsection|product|crumb <id>] | [back|reset]",
		Short: "Move through the catalog and print the current view",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nav := a.Inventory.Navigator(ctx, a.session)

			if len(args) > 0 {
				moved, err := move(cmd, nav, args)
				if err != nil {
					return err
				}
				if !moved {
					fmt.Fprintf(cmd.ErrOrStderr(), "%q is not available here\n", args)
				}
				if err := a.Inventory.SaveNavigator(ctx, a.session, nav); err != nil {
					return err
				}
			}

			printPage(cmd.OutOrStdout(), a.Inventory.CurrentView(ctx, nav))
			return nil
		},
	}
}

func move(cmd *cobra.Command, nav *navigation.Navigator, args []string) (bool, error) {
	ctx := cmd.Context()
	action := args[0]

	if len(args) == 1 {
		switch action {
		case "back":
			nav.GoBack()
			return true, nil
		case "reset":
			nav.Reset()
			return true, nil
		default:
			return false, fmt.Errorf("%s needs an id", action)
		}
	}

	id := args[1]
	switch action {
	case "category":
		return nav.NavigateToCategory(ctx, id), nil
	case "brand":
		return nav.NavigateToBrand(ctx, id), nil
	case "subsection":
		return nav.NavigateToSubsection(ctx, id), nil
	case "product":
		return nav.NavigateToProduct(ctx, id), nil
	case "crumb":
		crumbs := nav.Breadcrumbs(ctx)
		i, err := strconv.Atoi(id)
		if err != nil || i < 0 || i >= len(crumbs) {
			return false, fmt.Errorf("crumb must be between 0 and %d", len(crumbs)-1)
		}
		nav.Enter(crumbs[i].Target)
		return true, nil
	default:
		return false, fmt.Errorf("unknown browse action %q", action)
	}
}

func printPage(out io.Writer, page service.Page) {
	for i, crumb := range page.Breadcrumbs {
		if i > 0 {
			fmt.Fprint(out, " > ")
		}
		fmt.Fprintf(out, "[%d] %s", i, crumb.Label)
	}
	fmt.Fprintf(out, "\n\n%s\n", page.View.Type)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, e := range page.Entries {
		price := ""
		if e.PriceText != "" {
			price = "$" + e.PriceText
		}
		stockText := ""
		if e.HasStock {
			stockText = fmt.Sprintf("%s (%s)", e.Badge.Text, e.Badge.Color)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", e.Node.ID(), e.Node.Name, price, stockText)
	}
	w.Flush()

	if len(page.Tiers) > 0 {
		fmt.Fprintln(out, "\nBulk pricing:")
		for _, tier := range page.Tiers {
			fmt.Fprintf(out, "  %d+  %s\n", tier.MinQty, tier.Label)
		}
	}
}

func (a *app) addCommand() *cobra.Command {
	var quantity int
	cmd := &cobra.Command{
		Use:   "add <item-id>",
		Short: "Add an item from the current view to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nav := a.Inventory.Navigator(ctx, a.session)

			item, qty, err := a.Inventory.AddToCart(ctx, nav, args[0], quantity)
			if err != nil {
				return err
			}
			total, err := a.Cart.TotalItems(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %d x %s at $%s (line $%s). Cart holds %d items.\n",
				qty, item.Name, pricing.FormatPrice(item.Price),
				pricing.LineTotal(item.Price, qty).StringFixed(2), total)
			return nil
		},
	}
	cmd.Flags().IntVarP(&quantity, "qty", "q", 1, "quantity, clamped to the available stock")
	return cmd
}

func (a *app) quoteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "quote <category> <unit-price> <quantity>",
		Short: "Price a quantity with the category's bulk discount",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid unit price %q: %w", args[1], err)
			}
			qty, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid quantity %q: %w", args[2], err)
			}

			q := a.Inventory.Quote(args[0], price, qty)
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d x $%s = $%s\n",
				q.Tier.Label, q.Quantity, pricing.FormatPrice(q.UnitPrice), q.Total.StringFixed(2))
			return nil
		},
	}
}
