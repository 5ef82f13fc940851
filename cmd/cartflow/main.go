package main

import (
	"context"
	"fmt"
	"os"

	"cartflow/pkg/customer"
	"cartflow/pkg/logger"
	"cartflow/pkg/order/memory"
	"cartflow/pkg/otel"
	"cartflow/pkg/product"
	"cartflow/pkg/session"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	ctx := context.Background()

	level, levelErr := logger.ParseLevel(os.Getenv("LOG_LEVEL"), logger.LevelWarn)
	log := logger.New(os.Stderr, level, "cartflow", otel.GetTraceID)
	defer log.Sync()
	if levelErr != nil {
		log.Warn(ctx, "falling back to default log level", "error", levelErr)
	}

	tp, shutdown, err := otel.InitTracing(log, otel.Config{ServiceName: "cartflow", Host: os.Getenv("OTEL_HOST"), Probability: 1.0})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer shutdown(context.Background())

	catalog, err := product.DefaultCatalog(product.NewSequence())
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	s := session.New(os.Stdin, os.Stdout, customer.New(name), catalog,
		session.WithLogger(log),
		session.WithOrders(memory.New()),
	)
	return s.Run(otel.InjectTracing(ctx, tp.Tracer("cartflow")))
}
