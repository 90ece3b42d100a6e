package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/sstlab/vigia/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func runFlags(t *testing.T, flags []cli.Flag, args []string, action func(ctx context.Context, c *cli.Command) error) error {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: action,
	}
	return cmd.Run(context.Background(), append([]string{"test"}, args...))
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			closer, err := cfg.Configure()
			gt.NoError(t, err)
			closer()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("json format to file", func(t *testing.T) {
		var cfg config.Logger
		path := t.TempDir() + "/app.log"
		err := runFlags(t, cfg.Flags(), []string{"--log-format", "json", "--log-output", path}, func(ctx context.Context, c *cli.Command) error {
			closer, err := cfg.Configure()
			gt.NoError(t, err)
			closer()
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), []string{"--log-level", "verbose"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure()
			gt.Error(t, err)
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("invalid format rejected", func(t *testing.T) {
		var cfg config.Logger
		err := runFlags(t, cfg.Flags(), []string{"--log-format", "xml"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure()
			gt.Error(t, err)
			return nil
		})
		gt.NoError(t, err)
	})
}

func TestRepositoryConfigure(t *testing.T) {
	t.Run("memory backend", func(t *testing.T) {
		var cfg config.Repository
		err := runFlags(t, cfg.Flags(), []string{"--repository-backend", "memory"}, func(ctx context.Context, c *cli.Command) error {
			repo, err := cfg.Configure(ctx)
			gt.NoError(t, err)
			gt.Value(t, repo).NotNil()
			gt.NoError(t, repo.Close())
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("firestore requires project ID", func(t *testing.T) {
		var cfg config.Repository
		err := runFlags(t, cfg.Flags(), []string{"--repository-backend", "firestore"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
		gt.NoError(t, err)
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		var cfg config.Repository
		err := runFlags(t, cfg.Flags(), []string{"--repository-backend", "postgres"}, func(ctx context.Context, c *cli.Command) error {
			_, err := cfg.Configure(ctx)
			gt.Error(t, err)
			return nil
		})
		gt.NoError(t, err)
	})
}

func TestGeminiConfigure(t *testing.T) {
	t.Run("unconfigured returns nil client", func(t *testing.T) {
		var cfg config.Gemini
		err := runFlags(t, cfg.Flags(), nil, func(ctx context.Context, c *cli.Command) error {
			client, err := cfg.Configure(ctx)
			gt.NoError(t, err)
			gt.Value(t, client).Nil()
			return nil
		})
		gt.NoError(t, err)
	})
}
