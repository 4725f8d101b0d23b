package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alimgiray/devscope/internal/repositories"
	"github.com/alimgiray/devscope/internal/services"
	"github.com/alimgiray/devscope/pkg/config"
	"github.com/alimgiray/devscope/pkg/database"
	"github.com/alimgiray/devscope/pkg/logger"
)

// app holds the wired services shared by all commands
type app struct {
	commits    *repositories.CommitRepository
	developers *repositories.DeveloperRepository
	aliases    *repositories.AliasRepository
	grouping   *services.GroupingService
	orphans    *services.OrphanService
	dedup      *services.DedupService
	export     *services.ExportService
}

var application *app

var rootCmd = &cobra.Command{
	Use:   "devscope",
	Short: "Developer identity resolution for commit history",
	Long: `devscope attributes commit activity to real people: it extracts raw
(name, email) identities from stored commits, clusters the ones that belong
to the same person and persists them as developers with aliases.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init()

		if err := config.Load(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg := config.AppConfig
		if err := database.Init(cfg.Database.Path, cfg.Database.MigrationsDir); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}

		application = buildApp(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		database.Close()
	},
}

func buildApp(cfg *config.Config) *app {
	commitRepo := repositories.NewCommitRepository(database.DB)
	developerRepo := repositories.NewDeveloperRepository(database.DB)
	aliasRepo := repositories.NewAliasRepository(database.DB)

	similarityService := services.NewSimilarityService()
	similarity := services.SimilarityFunc(similarityService.CalculateSimilarity)
	matcher := services.NewIdentityMatcherService(
		similarity,
		cfg.Grouping.UsernameSimilarityThreshold,
		cfg.Grouping.NameSimilarityThreshold,
	)
	clusterer := services.NewClusteringService(matcher, similarity)
	extractor := services.NewIdentityService()

	grouping := services.NewGroupingService(commitRepo, developerRepo, aliasRepo, extractor, clusterer)

	return &app{
		commits:    commitRepo,
		developers: developerRepo,
		aliases:    aliasRepo,
		grouping:   grouping,
		orphans:    services.NewOrphanService(developerRepo, aliasRepo),
		dedup:      services.NewDedupService(developerRepo, aliasRepo),
		export:     services.NewExportService(grouping),
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
