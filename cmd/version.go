package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"anchira/internal/buildinfo"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const githubURL = "https://api.github.com/repos/anchira/anchira/releases/latest"

type releaseInfo struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
}

// latestRelease fetches the newest release tag from the github api.
func latestRelease(ctx context.Context, apiURL string) (releaseInfo, error) {
	var rel releaseInfo

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return rel, fmt.Errorf("failed to create request: %w", err)
	}

	client := http.Client{
		Timeout: 10 * time.Second,
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, http.ErrHandlerTimeout) {
			return rel, errors.New("server timed out while fetching latest release from api")
		}
		return rel, fmt.Errorf("failed to fetch latest release from api: %w", err)
	}
	defer resp.Body.Close()

	// api returns 500 instead of 404 here
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusInternalServerError {
		return rel, errors.New("no release found")
	}

	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return rel, fmt.Errorf("failed to decode response from api: %w", err)
	}

	return rel, nil
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version info",
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		fmt.Println("Version:", buildinfo.Version)
		fmt.Println("Commit:", buildinfo.Commit)
		fmt.Println("Build date:", buildinfo.Date)
		fmt.Println()

		rel, err := latestRelease(ctx, githubURL)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if rel.TagName != buildinfo.Version && buildinfo.Version != "dev" {
			fmt.Println("Update available:", buildinfo.Version, "->", rel.TagName)
			fmt.Println("Published at:", rel.PublishedAt.Format(time.RFC3339))
		}
	},
}
