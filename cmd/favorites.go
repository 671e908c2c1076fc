package cmd

import (
	"fmt"

	"anchira/internal/buildinfo"
	"anchira/internal/config"
	"anchira/internal/domain"
	"anchira/internal/logger"
	"anchira/internal/source"

	"github.com/spf13/cobra"
)

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "List your favorites, requires credentials in the config",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		s := source.New(cfg.Config, cfg)

		res, err := s.Search(ctx, page, "", domain.Filters{FavoritesOnly: true})
		if err != nil {
			log.Fatal().Err(err).Msg("error listing favorites")
		}

		if len(res.Mangas) == 0 {
			fmt.Println("No favorites.")
			return
		}

		for _, m := range res.Mangas {
			fmt.Printf("%s\n    %s\n", m.Title, s.MangaURL(m))
		}

		if res.HasNextPage {
			fmt.Printf("\nMore favorites on page %d.\n", page+1)
		}
	},
}
