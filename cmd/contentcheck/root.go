// ABOUTME: Cobra command and viper configuration for contentcheck
// ABOUTME: Flags override CONTENTFUL_* environment variables, which override defaults

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"time"

	"catcare-web/core/content"
	"catcare-web/core/domain"
	"catcare-web/core/interfaces"
	"catcare-web/infrastructure/contentful"
	"catcare-web/infrastructure/logger/structured"
	"catcare-web/pkg/config"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "contentcheck",
		Short: "Inspect the content types and entries of a Contentful space",
		Long: `contentcheck connects to the Contentful Content Delivery API with the
configured space and access token, lists every content type with its API
identifier, and reports how many entries exist and the type of the first one.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine
			if err := config.LoadDotEnv(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env file: %w", err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := contentfulConfig(v)
			logger := structured.NewWithWriter(cmd.ErrOrStderr(), logrus.WarnLevel, "text")
			return run(cmd.Context(), cmd.OutOrStdout(), cfg, logger)
		},
	}

	flags := cmd.Flags()
	flags.String("space", "", "Contentful space id (env CONTENTFUL_SPACE_ID)")
	flags.String("token", "", "Content Delivery API access token (env CONTENTFUL_ACCESS_TOKEN)")
	flags.String("environment", contentful.DefaultEnvironment, "Contentful environment (env CONTENTFUL_ENVIRONMENT)")
	flags.String("base-url", contentful.DefaultBaseURL, "Content Delivery API base URL (env CONTENTFUL_BASE_URL)")
	flags.Duration("timeout", 10*time.Second, "Request timeout (env CONTENTFUL_TIMEOUT)")

	v.SetEnvPrefix("CONTENTFUL")
	v.AutomaticEnv()
	_ = v.BindPFlag("space_id", flags.Lookup("space"))
	_ = v.BindPFlag("access_token", flags.Lookup("token"))
	_ = v.BindPFlag("environment", flags.Lookup("environment"))
	_ = v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	return cmd
}

// contentfulConfig resolves the client settings from flags, environment and defaults
func contentfulConfig(v *viper.Viper) config.ContentfulConfig {
	return config.ContentfulConfig{
		SpaceID:     v.GetString("space_id"),
		AccessToken: v.GetString("access_token"),
		Environment: v.GetString("environment"),
		BaseURL:     v.GetString("base_url"),
		Timeout:     v.GetDuration("timeout"),
	}
}

func run(ctx context.Context, out io.Writer, cfg config.ContentfulConfig, logger interfaces.Logger) error {
	httpClient := contentful.NewHTTPClient(cfg)

	client, err := contentful.NewClient(cfg, httpClient)
	if err != nil {
		return err
	}

	service := content.NewService(interfaces.Dependencies{
		Logger:  logger,
		Content: client,
	}, 0)

	fmt.Fprintf(out, "Fetching content types from Contentful (space %s, environment %s)...\n\n", cfg.SpaceID, cfg.Environment)

	diagnostics, err := service.Diagnose(ctx)
	if err != nil {
		return err
	}

	printDiagnostics(out, diagnostics)
	return nil
}

func printDiagnostics(out io.Writer, d *domain.Diagnostics) {
	fmt.Fprintf(out, "Found %d content type(s):\n\n", len(d.ContentTypes))
	for _, ct := range d.ContentTypes {
		fmt.Fprintln(out, "---")
		fmt.Fprintf(out, "Name: %s\n", ct.Name)
		fmt.Fprintf(out, "API Identifier (Content Type ID): %s\n", ct.ID)
		fmt.Fprintln(out, "---")
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Found %d total entries\n", d.TotalEntries)
	if d.FirstContentType != "" {
		fmt.Fprintf(out, "\nFirst entry content type: %s\n", d.FirstContentType)
	}
}
