package main

import (
	"context"
	"errors"
	"log"

	"github.com/iliyamo/cinema-showcase/internal/config"
	"github.com/iliyamo/cinema-showcase/internal/queue"
)

func runConsumeCmd(ctx context.Context) {
	config.LoadDotEnv()
	url := config.AMQPURL()
	dir := config.CheckoutLogDir()
	log.Printf("checkout-consumer: writing to %s", dir)
	if err := queue.StartCheckoutConsumer(ctx, url, dir); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
