package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpersonnft/SECthingv2/pkg/models/domain"
)

// Downloader retrieves every archive a source enumerates and writes the
// bodies unmodified under <out>/<category>/. Items are fetched one at a time;
// a failed item is recorded in the report and the batch keeps going.
type Downloader struct {
	client    *http.Client
	userAgent string
}

func NewDownloader(client *http.Client, userAgent string) *Downloader {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	return &Downloader{client: client, userAgent: userAgent}
}

// Fetch runs one request against a source. It returns an error only when the
// enumeration itself fails or the destination directory cannot be created;
// per-item failures live in the report.
func (d *Downloader) Fetch(ctx context.Context, source Source, req domain.FetchRequest) (*domain.FetchReport, error) {
	logger := zerolog.Ctx(ctx)

	refs, err := source.Enumerate(req)
	if err != nil {
		return nil, err
	}

	destDir := filepath.Join(req.OutDir, source.Name())
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("create destination dir: %w", err)
	}

	report := &domain.FetchReport{Category: source.Name()}
	for ref := range refs {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		record, err := d.fetchOne(ctx, ref, destDir)
		if err != nil {
			logger.Warn().Str("item", ref.Name).Err(err).Msg("download failed")
			report.Outcomes = append(report.Outcomes, domain.FetchOutcome{Ref: ref, Err: err})
			continue
		}
		logger.Info().Str("item", ref.Name).Int64("bytes", record.Size).Msg("downloaded")
		report.Outcomes = append(report.Outcomes, domain.FetchOutcome{Ref: ref, Record: record})
	}
	return report, nil
}

func (d *Downloader) fetchOne(ctx context.Context, ref domain.ArchiveRef, destDir string) (*domain.ArchiveRecord, error) {
	destPath := filepath.Join(destDir, ref.Name)

	// Create-new keeps records immutable; re-downloading an existing file is
	// the operator's call, reported as this item's failure.
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, &domain.RetrievalError{Category: ref.Category, Ref: ref.Name, Err: err}
	}

	record, err := d.download(ctx, ref, f, destPath)
	if err != nil {
		f.Close()
		os.Remove(destPath)
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(destPath)
		return nil, &domain.RetrievalError{Category: ref.Category, Ref: ref.Name, Err: err}
	}
	return record, nil
}

func (d *Downloader) download(ctx context.Context, ref domain.ArchiveRef, w io.Writer, destPath string) (*domain.ArchiveRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref.URL, nil)
	if err != nil {
		return nil, &domain.RetrievalError{Category: ref.Category, Ref: ref.Name, Err: err}
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, &domain.RetrievalError{Category: ref.Category, Ref: ref.Name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &domain.RetrievalError{
			Category: ref.Category,
			Ref:      ref.Name,
			Err:      fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	size, err := io.Copy(w, resp.Body)
	if err != nil {
		return nil, &domain.RetrievalError{Category: ref.Category, Ref: ref.Name, Err: err}
	}

	return &domain.ArchiveRecord{
		Ref:         ref,
		Path:        destPath,
		Size:        size,
		RetrievedAt: time.Now().UTC(),
	}, nil
}
