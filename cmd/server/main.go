package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "cinema-showcase",
		Short: "Movie showcase API with seat maps and a mock checkout",
	}
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Run: func(cmd *cobra.Command, args []string) {
				runServeCmd(ctx)
			},
		},
		&cobra.Command{
			Use:   "consume-checkouts",
			Short: "Append checkout.completed events to the checkout log",
			Run: func(cmd *cobra.Command, args []string) {
				runConsumeCmd(ctx)
			},
		},
		newSeatmapCmd(ctx),
		newImportLayoutsCmd(ctx),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatalln(err)
	}
}
