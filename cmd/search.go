package cmd

import (
	"fmt"
	"strings"

	"anchira/internal/buildinfo"
	"anchira/internal/config"
	"anchira/internal/domain"
	"anchira/internal/logger"
	"anchira/internal/source"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search and list galleries",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		s := source.New(cfg.Config, cfg)

		res, err := s.Search(ctx, page, query, buildFilters())
		if err != nil {
			log.Fatal().Err(err).Msg("error searching galleries")
		}

		if len(res.Mangas) == 0 {
			fmt.Println("No results.")
			return
		}

		for _, m := range res.Mangas {
			fmt.Printf("%s\n    %s\n", m.Title, s.MangaURL(m))
			if m.Artist != "" {
				fmt.Printf("    artist: %s\n", m.Artist)
			}
			if m.Genre != "" {
				fmt.Printf("    tags: %s\n", m.Genre)
			}
		}

		if res.HasNextPage {
			fmt.Printf("\nMore results on page %d.\n", page+1)
		}
	},
}

func buildFilters() domain.Filters {
	f := domain.NewFilters()
	f.FavoritesOnly = favorites
	f.Sort = nil

	for i := range f.Categories {
		for _, name := range categories {
			if strings.EqualFold(name, f.Categories[i].Name) {
				f.Categories[i].Selected = true
			}
		}
	}

	if popular {
		f.Sort = &domain.SortFilter{Index: 4}
		return f
	}

	switch strings.ToLower(sortBy) {
	case "title":
		f.Sort = &domain.SortFilter{Index: 0, Ascending: ascending}
	case "pages":
		f.Sort = &domain.SortFilter{Index: 1, Ascending: ascending}
	case "published":
		f.Sort = &domain.SortFilter{Index: 2, Ascending: ascending}
	case "uploaded":
		f.Sort = &domain.SortFilter{Index: 3, Ascending: ascending}
	case "popularity":
		f.Sort = &domain.SortFilter{Index: 4, Ascending: ascending}
	}

	return f
}
