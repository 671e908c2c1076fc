package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"anchira/internal/buildinfo"
	"anchira/internal/config"
	"anchira/internal/download"
	"anchira/internal/files"
	"anchira/internal/logger"
	"anchira/internal/sanitize"
	"anchira/internal/source"
	"anchira/internal/templater"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download",
	Short: "Download a gallery as a CBZ archive",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		if err := files.IsValidLocation(cfg.Config.DownloadLocation); err != nil {
			log.Fatal().Err(err).Msg("invalid download location")
		}

		s := source.New(cfg.Config, cfg)

		mangaURL := gallery
		if !strings.HasPrefix(mangaURL, "/g/") && !strings.Contains(mangaURL, "://") {
			mangaURL = "/g/" + strings.TrimPrefix(mangaURL, "/")
		}

		manga, err := s.Details(ctx, mangaURL)
		if err != nil {
			log.Fatal().Err(err).Msgf("error getting gallery %q", gallery)
		}

		pages, err := s.Pages(ctx, manga.URL)
		if err != nil {
			log.Fatal().Err(err).Msgf("error getting pages for %q", manga.Title)
		}

		t := templater.New(manga)
		templatedName := t.ExecTemplate(cfg.Config.NamingTemplate)

		galleryName := sanitize.Filename(templatedName)
		contentPath := filepath.Join(cfg.Config.DownloadLocation, galleryName+".cbz")

		if _, err := os.Stat(contentPath); err == nil {
			fmt.Printf("Gallery has already been downloaded, skipping %q\n", templatedName)
			return
		}

		fmt.Printf("Downloading %q...\n", templatedName)
		if err := download.Gallery(ctx, contentPath, pages, s); err != nil {
			log.Fatal().Err(err).Msgf("error downloading gallery %q", templatedName)
		}

		fmt.Printf("Finished downloading %q\n", templatedName)
	},
}
