package download

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"anchira/internal/domain"
	"anchira/internal/files"
	"anchira/internal/sharedhttp"
	"anchira/internal/source"

	"github.com/avast/retry-go"
)

// Gallery downloads all page images of a gallery and packs them into
// a CBZ archive at contentPath. Page order is the reading order, so
// filenames carry the page index.
func Gallery(ctx context.Context, contentPath string, pages []domain.Page, client *source.Client) error {
	var wg sync.WaitGroup

	temp, err := os.MkdirTemp("", "anchira-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(temp)

	for i, page := range pages {
		i, page := i, page
		wg.Add(1)

		go func() {
			defer wg.Done()

			filenameNoExt := filepath.Join(temp, fmt.Sprintf("%03d", i+1))

			if err := singleFile(ctx, page, client, filenameNoExt); err != nil {
				fmt.Printf("error downloading file: %q", err)
				return
			}
		}()
	}
	wg.Wait()

	if err := files.CreateCbzArchive(temp, contentPath); err != nil {
		return err
	}

	return nil
}

// singleFile downloads a single page image
func singleFile(ctx context.Context, page domain.Page, client *source.Client, filenameNoExt string) error {
	req, err := client.ImageRequest(ctx, page)
	if err != nil {
		return err
	}

	httpClient := &http.Client{
		Timeout:   60 * time.Second,
		Transport: sharedhttp.Transport,
	}

	retryErr := retry.Do(func() error {
		resp, err := sharedhttp.ExecRequest(ctx, httpClient, req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		filename, err := appendImageExtension(resp, filenameNoExt)
		if err != nil {
			return err
		}

		out, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer out.Close()

		readBuf := bufio.NewReader(resp.Body)
		writeBuf := bufio.NewWriter(out)
		defer writeBuf.Flush()

		_, err = io.Copy(writeBuf, readBuf)
		if err != nil {
			return err
		}

		return nil
	},
		retry.Delay(time.Second*3),
		retry.Attempts(3),
		retry.MaxJitter(time.Second*1),
	)

	return retryErr
}

func appendImageExtension(resp *http.Response, filename string) (string, error) {
	contentType := resp.Header.Get("Content-Type")

	switch contentType {
	case "image/jpeg", "image/jpg":
		return filename + ".jpg", nil
	case "image/png":
		return filename + ".png", nil
	case "image/gif":
		return filename + ".gif", nil
	case "image/webp":
		return filename + ".webp", nil
	default:
		return filename, fmt.Errorf("unsupported content type: %s", contentType)
	}
}
