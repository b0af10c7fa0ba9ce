package view

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"strings"
	"time"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

const (
	imagePreviewRows     = 12
	imagePreviewMaxBytes = 5 * 1024 * 1024
)

var ErrPreviewUnavailable = errors.New("image preview unavailable")

// ImageRenderer draws raw image bytes as terminal text.
type ImageRenderer func(ctx context.Context, data []byte, width, rows int) (string, error)

type ImagePreviewer struct {
	http   *http.Client
	render ImageRenderer
}

func NewImagePreviewer(httpClient *http.Client, render ImageRenderer) *ImagePreviewer {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 8 * time.Second}
	}
	if render == nil {
		render = ChafaRenderer
	}
	return &ImagePreviewer{http: httpClient, render: render}
}

// Preview downloads the image and renders it. Placeholder URLs are never fetched.
func (p *ImagePreviewer) Preview(ctx context.Context, imageURL string, width int) (string, error) {
	if width < 20 {
		width = 40
	}
	if imageURL == "" || imageURL == catalog.PlaceholderImageURL {
		return "", ErrPreviewUnavailable
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build image request: %w", err)
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, imagePreviewMaxBytes))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	out, err := p.render(ctx, data, width, imagePreviewRows)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "", fmt.Errorf("render image: empty output")
	}
	return strings.TrimRight(out, "\r\n"), nil
}

func ChafaRenderer(ctx context.Context, data []byte, width, rows int) (string, error) {
	chafaPath, err := exec.LookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("%w: chafa is not installed", ErrPreviewUnavailable)
	}
	size := fmt.Sprintf("%dx%d", width, rows)
	cmd := exec.CommandContext(ctx, chafaPath, "--size", size, "--view-size", size, "--align", "top,center", "--format", "symbols", "-")
	cmd.Stdin = bytes.NewReader(data)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("render image via chafa: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return string(output), nil
}

// PreviewFallback is shown in place of an image that could not be drawn.
func PreviewFallback(imageURL string, err error) string {
	if imageURL == "" {
		imageURL = catalog.PlaceholderImageURL
	}
	if err == nil || errors.Is(err, ErrPreviewUnavailable) {
		return "[image] " + imageURL
	}
	return fmt.Sprintf("[image] %s (%v)", imageURL, err)
}
