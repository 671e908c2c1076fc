package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"anchira/internal/buildinfo"
	"anchira/internal/config"
	"anchira/internal/domain"
	"anchira/internal/download"
	"anchira/internal/files"
	"anchira/internal/logger"
	"anchira/internal/sanitize"
	"anchira/internal/source"
	"anchira/internal/templater"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch your favorites and download new galleries",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		// read config
		cfg := config.New(configPath, buildinfo.Version)

		// init new logger
		log := logger.New(cfg.Config)

		if err := cfg.UpdateConfig(); err != nil {
			log.Error().Err(err).Msgf("error updating config")
		}

		// init dynamic config
		cfg.DynamicReload(log)

		if err := files.IsValidLocation(cfg.Config.DownloadLocation); err != nil {
			log.Fatal().Err(err).Msgf("invalid download location")
		}

		s := source.New(cfg.Config, cfg)

		if err := s.Session().Login(ctx); err != nil {
			log.Fatal().Err(err).Msg("error logging in, check your credentials")
		}

		log.Info().Msg("starting to watch favorites")

		ticker := time.NewTicker(time.Duration(cfg.Config.CheckInterval)*time.Minute - 40*time.Second)
		defer ticker.Stop()

		wg := sync.WaitGroup{}
		quit := make(chan bool, 1)

		filters := domain.Filters{FavoritesOnly: true}

		go func() {
			for {
				select {
				case <-quit:
					return
				case <-ticker.C:
					res, err := s.Search(ctx, 1, "", filters)
					if err != nil {
						log.Error().Err(err).Msg("error listing favorites")
						continue
					}

					for _, manga := range res.Mangas {
						manga := manga
						wg.Add(1)

						go func() {
							defer wg.Done()

							mLog := log.With().Str("gallery", manga.Title).Logger()

							detail, err := s.Details(ctx, manga.URL)
							if err != nil {
								mLog.Error().Err(err).Msg("error getting gallery details")
								return
							}

							t := templater.New(detail)
							templatedName := t.ExecTemplate(cfg.Config.NamingTemplate)

							galleryName := sanitize.Filename(templatedName)
							contentPath := filepath.Join(cfg.Config.DownloadLocation, galleryName+".cbz")

							if _, err := os.Stat(contentPath); err == nil {
								mLog.Debug().Msgf("gallery has already been downloaded, skipping %q", templatedName)
								return
							}

							pages, err := s.Pages(ctx, detail.URL)
							if err != nil {
								mLog.Error().Err(err).Msg("error getting gallery pages")
								return
							}

							mLog.Info().Msgf("downloading %q", templatedName)
							if err := download.Gallery(ctx, contentPath, pages, s); err != nil {
								mLog.Error().Err(err).Msgf("error downloading gallery %q", templatedName)
								return
							}
							mLog.Info().Msgf("finished downloading %q", templatedName)
						}()
					}

					wg.Wait()
				}
			}
		}()

		// set up a channel to catch signals for graceful shutdown
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

		fmt.Printf("received signal: %s, stopping watch.\n", <-sigCh)
		quit <- true
		wg.Wait()
	},
}
