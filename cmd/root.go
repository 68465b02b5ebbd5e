package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/sitegen/internal/adapters/clock"
	"github.com/kamal-hamza/sitegen/internal/adapters/repository"
	"github.com/kamal-hamza/sitegen/internal/core/services"
	"github.com/kamal-hamza/sitegen/pkg/config"
	"github.com/kamal-hamza/sitegen/pkg/ui"
)

var (
	// Global configuration
	appConfig  *config.Config
	configPath string

	// Services
	createPostService    *services.CreatePostService
	createUsecaseService *services.CreateUsecaseService
	checkService         *services.CheckService

	// Repositories
	contentRepo *repository.FileRepository
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "sitegen - scaffold blog posts and usecase entries",
	Long: ui.FormatTitle("sitegen") + " - Website Content Scaffolder\n\n" +
		"Generates ready-to-edit content files for the marketing website:\n" +
		"blog posts with frontmatter and usecase gallery entries as JSON.",
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(usecaseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is <user config dir>/sitegen/config.yaml)")
}

// initializeApp loads configuration and wires services
func initializeApp(cmd *cobra.Command, args []string) error {
	if configPath == "" {
		// No user config dir (e.g. $HOME unset): run on defaults
		if p, err := config.DefaultPath(); err == nil {
			configPath = p
		}
	}

	appConfig = config.DefaultConfig()
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		appConfig = cfg
	}

	ui.SetTheme(appConfig.ColorTheme)

	// Initialize repositories
	contentRepo = repository.NewFileRepository()
	sysClock := clock.NewSystem()

	// Initialize services
	createPostService = services.NewCreatePostService(contentRepo, sysClock, appConfig.PostExtension, appConfig.BlogURLPrefix)
	createUsecaseService = services.NewCreateUsecaseService(contentRepo, sysClock, appConfig.UsecaseURLPrefix)
	checkService = services.NewCheckService(contentRepo)

	return nil
}

// getContext returns a context for operations
func getContext() context.Context {
	return context.Background()
}
