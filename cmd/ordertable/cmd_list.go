package main

import (
	"fmt"

	"ordertable/cmd/ordertable/ui"
	"ordertable/internal/orders"
	"ordertable/internal/table"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	listSort      string
	listDesc      bool
	listSource    string
	listDest      string
	listDelivered bool
	listPage      int
	listPageSize  int
)

// listCmd prints one page of the table without the interactive UI
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print one page of the sorted, filtered orders",
	Long: `Runs the same filter, sort and pagination as the interactive table and
prints the resulting page.

Examples:
  ordertable list --sort user
  ordertable list --source Pune --delivered --sort cost --desc
  ordertable list --page 2 --page-size 10`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listSort, "sort", "", "Column to sort by (default: config sort_column)")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "Sort descending")
	listCmd.Flags().StringVar(&listSource, "source", "", "Only orders whose source contains this text")
	listCmd.Flags().StringVar(&listDest, "dest", "", "Only orders whose destination contains this text")
	listCmd.Flags().BoolVar(&listDelivered, "delivered", false, "Only delivered orders")
	listCmd.Flags().IntVar(&listPage, "page", 1, "Page number, starting at 1")
	listCmd.Flags().IntVar(&listPageSize, "page-size", 0, "Rows per page: 5, 10 or 25 (default: config page_size)")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	all, err := loadSeed(cfg)
	if err != nil {
		return err
	}

	sortState, err := cfg.InitialSort()
	if err != nil {
		return err
	}
	if listSort != "" {
		f, err := orders.ParseField(listSort)
		if err != nil {
			return fmt.Errorf("--sort: %w", err)
		}
		sortState = table.SortState{Field: f, Direction: table.Ascending}
	}
	if listDesc {
		sortState.Direction = table.Descending
	}

	pager := table.NewPager(cfg.Table.PageSize)
	if listPageSize != 0 {
		if err := pager.SetSize(listPageSize); err != nil {
			return fmt.Errorf("--page-size: %w", err)
		}
	}
	if listPage < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", listPage)
	}

	criteria := table.Criteria{Source: listSource, Destination: listDest}
	if listDelivered {
		criteria = criteria.ToggleDelivered()
	}

	rows := table.Filter(all, criteria)
	pager.Page = listPage - 1
	pager.Clamp(len(rows))
	page := pager.Window(sortState.Sort(rows))

	logger.Debug("list",
		zap.String("sort", sortState.Field.Label()),
		zap.String("direction", sortState.Direction.String()),
		zap.Int("matched", len(rows)),
		zap.Int("page", pager.Page),
	)

	t := ui.NewOrderSimpleTable("ORDERS", page, sortState)
	t.Footer = fmt.Sprintf("%s   page %d/%d", pager.Label(len(rows)), pager.Page+1, pager.PageCount(len(rows)))
	styles := ui.NewStyles(ui.ThemeFor(cfg.IsDark()))
	fmt.Fprint(cmd.OutOrStdout(), t.View(styles))
	return nil
}
