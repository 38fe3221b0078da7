package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/zeinix-zz/leptos/pkg/export"
	"github.com/zeinix-zz/leptos/pkg/server"
)

func exportCmd() *cobra.Command {
	var (
		out      string
		s3Bucket string
		s3Prefix string
		params   []string
		watch    bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the demo tree's static routes to files or S3",
		Long: `Export renders every static-mode route in the demo tree and writes
the result as <route>/index.html, either under a local directory or
into an S3 bucket (credentials come from the standard AWS chain).

Parameterized routes expand against --param values; with --watch the
command keeps re-rendering routes that carry a regeneration interval
until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), out, s3Bucket, s3Prefix, params, watch)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "dist", "Output directory")
	cmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "Upload to this S3 bucket instead of writing files")
	cmd.Flags().StringVar(&s3Prefix, "s3-prefix", "", "Key prefix for S3 uploads")
	cmd.Flags().StringArrayVar(&params, "param", nil, "Extra parameter values as name=v1,v2 (repeatable)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep regenerating hinted routes until interrupted")

	return cmd
}

func runExport(ctx context.Context, out, s3Bucket, s3Prefix string, params []string, watch bool) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	target, err := buildTarget(ctx, out, s3Bucket, s3Prefix)
	if err != nil {
		return err
	}

	values := export.ParamValues(demoParams())
	for _, p := range params {
		name, list, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			return fmt.Errorf("malformed --param %q, want name=v1,v2", p)
		}
		values[name] = append(values[name], strings.Split(list, ",")...)
	}

	routes := demoRoutes()
	handler := server.NewHandler(routes, server.WithLogger(logger))
	render := func(ctx context.Context, path string) ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		return handler.Render(req)
	}

	exp := export.New(routes, render, target,
		export.WithLogger(logger),
		export.WithParamValues(values),
	)

	if err := exp.Run(ctx); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger.Info("watching for regeneration, press Ctrl-C to stop")
	if err := exp.Regenerate(ctx); err != context.Canceled {
		return err
	}
	return nil
}

func buildTarget(ctx context.Context, out, s3Bucket, s3Prefix string) (export.Target, error) {
	if s3Bucket == "" {
		return export.NewDirTarget(out), nil
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return export.NewS3Target(s3.NewFromConfig(cfg), s3Bucket, s3Prefix), nil
}
