package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/fx"

	"github.com/zahid1995j/Somahar-Order-Management-App/internal/app"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/client"
	"github.com/zahid1995j/Somahar-Order-Management-App/internal/dto"
)

// NewRootCommand builds the root somahar CLI command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "somahar",
		Short: "Somahar delivery-order dashboard client",
		Long: "Somahar talks to a WordPress-based delivery-order API.\n" +
			"Configuration comes from the environment (see .env): API_BASE_URL,\n" +
			"API_KEY, and MOCK_MODE=true for the offline simulation backend.",
	}

	root.AddCommand(newConfigCmd())
	root.AddCommand(newOrdersCmd())
	root.AddCommand(newAddCmd())
	root.AddCommand(newStatusCmd())
	root.AddCommand(newDetailsCmd())
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the somahar CLI.
func Execute() error {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return err
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Fetch delivery partners and quick statuses",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithService(cmd.Context(), func(ctx context.Context, svc *client.Service) error {
				cfg, err := svc.GetConfig(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Delivery partners: %s\n", strings.Join(cfg.DeliveryPartners, ", "))
				fmt.Fprintf(cmd.OutOrStdout(), "Quick statuses:    %s\n", strings.Join(cfg.QuickStatuses, ", "))
				return nil
			})
		},
	}
}

func newOrdersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List orders with optional filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			search, _ := cmd.Flags().GetString("search")
			partner, _ := cmd.Flags().GetString("partner")
			status, _ := cmd.Flags().GetString("status")

			return runWithService(cmd.Context(), func(ctx context.Context, svc *client.Service) error {
				list, err := svc.GetOrders(ctx, client.ListQuery{
					Page:    page,
					Search:  search,
					Partner: partner,
					Status:  status,
				})
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, order := range list.Orders {
					fmt.Fprintf(out, "%-12s %-18s %-13s %-18s %-17s %8.0f\n",
						order.TrackingCode,
						order.CustomerName,
						order.CustomerPhone,
						order.DeliveryPartner,
						order.Status,
						order.Amount,
					)
				}
				fmt.Fprintf(out, "page %d of %d (%d orders)\n",
					list.Pagination.CurrentPage,
					list.Pagination.TotalPages,
					list.Pagination.TotalItems,
				)
				return nil
			})
		},
	}
	cmd.Flags().Int("page", 1, "Page to fetch")
	cmd.Flags().String("search", "", "Match customer name, phone, or tracking code")
	cmd.Flags().String("partner", "", "Exact delivery partner filter")
	cmd.Flags().String("status", "", "Exact status filter")
	return cmd
}

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Submit a new delivery order",
		RunE: func(cmd *cobra.Command, args []string) error {
			order := dto.NewOrder{}
			order.CustomerName, _ = cmd.Flags().GetString("name")
			order.CustomerPhone, _ = cmd.Flags().GetString("phone")
			order.Address, _ = cmd.Flags().GetString("address")
			order.PoliceStation, _ = cmd.Flags().GetString("station")
			order.Amount, _ = cmd.Flags().GetFloat64("amount")
			order.DeliveryPartner, _ = cmd.Flags().GetString("partner")
			order.EstimatedDelivery, _ = cmd.Flags().GetString("eta")

			return runWithService(cmd.Context(), func(ctx context.Context, svc *client.Service) error {
				result, err := svc.AddOrder(ctx, order)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s (tracking %s, id %d)\n",
					result.Message, result.TrackingCode, result.OrderID)
				return nil
			})
		},
	}
	cmd.Flags().String("name", "", "Customer name")
	cmd.Flags().String("phone", "", "Customer phone")
	cmd.Flags().String("address", "", "Delivery address")
	cmd.Flags().String("station", "", "Police station")
	cmd.Flags().Float64("amount", 0, "Order amount")
	cmd.Flags().String("partner", "", "Delivery partner")
	cmd.Flags().String("eta", "", "Estimated delivery date (YYYY-MM-DD)")
	return cmd
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Update the status of an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			update := dto.StatusUpdate{}
			update.OrderID, _ = cmd.Flags().GetInt64("order-id")
			update.TrackingCode, _ = cmd.Flags().GetString("tracking")
			update.Status, _ = cmd.Flags().GetString("status")

			return runWithService(cmd.Context(), func(ctx context.Context, svc *client.Service) error {
				result, err := svc.UpdateStatus(ctx, update)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
	cmd.Flags().Int64("order-id", 0, "Order id")
	cmd.Flags().String("tracking", "", "Tracking code")
	cmd.Flags().String("status", "", "New status")
	_ = cmd.MarkFlagRequired("status")
	return cmd
}

func newDetailsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "details",
		Short: "Update rider and delivery details of an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			update := dto.DetailsUpdate{}
			update.OrderID, _ = cmd.Flags().GetInt64("order-id")
			update.RiderName, _ = cmd.Flags().GetString("rider")
			update.RiderPhone, _ = cmd.Flags().GetString("rider-phone")
			update.Address, _ = cmd.Flags().GetString("address")
			update.DeliveryPartner, _ = cmd.Flags().GetString("partner")
			update.EstimatedDelivery, _ = cmd.Flags().GetString("eta")

			return runWithService(cmd.Context(), func(ctx context.Context, svc *client.Service) error {
				result, err := svc.UpdateDetails(ctx, update)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), result.Message)
				return nil
			})
		},
	}
	cmd.Flags().Int64("order-id", 0, "Order id")
	cmd.Flags().String("rider", "", "Rider name")
	cmd.Flags().String("rider-phone", "", "Rider phone")
	cmd.Flags().String("address", "", "Delivery address")
	cmd.Flags().String("partner", "", "Delivery partner")
	cmd.Flags().String("eta", "", "Estimated delivery date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("order-id")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the offline mock API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			application := fx.New(app.MockServer)
			if err := application.Start(cmd.Context()); err != nil {
				return err
			}
			<-cmd.Context().Done()
			stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return application.Stop(stopCtx)
		},
	}
}

func runWithService(ctx context.Context, fn func(context.Context, *client.Service) error) error {
	var svc *client.Service
	application := fx.New(app.Core, fx.Populate(&svc), fx.NopLogger)
	if err := application.Start(ctx); err != nil {
		return err
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = application.Stop(stopCtx)
	}()
	return fn(ctx, svc)
}
