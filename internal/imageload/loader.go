package imageload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"path"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// maxImageBytes caps a single photo download (8 MB).
const maxImageBytes = 8 << 20

// errUnusablePhoto marks a download that will not succeed on retry: the
// server answered but the body is not a photo we can show. Timeouts and
// transport errors are not marked, so the URL is fetched again on next Load.
var errUnusablePhoto = errors.New("unusable photo")

// Loader fills image targets from URLs
type Loader interface {
	// Load shows url in target. It must be called on the UI goroutine and
	// must not block. Failures leave the placeholder in place.
	Load(url string, target *canvas.Image)
}

// HTTPLoader downloads photos over HTTP in the background and caches them by
// URL. Targets are recycled by list widgets, so a download is only applied
// to a target whose most recent Load was for the same URL.
type HTTPLoader struct {
	client      *http.Client
	placeholder fyne.Resource
	logger      *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	timeout  time.Duration
	cache    map[string]fyne.Resource
	failed   map[string]bool // URLs that returned errUnusablePhoto
	inflight map[string]bool
	wanted   map[*canvas.Image]string // latest URL requested per target

	// do runs fn on the UI goroutine
	do func(fn func())
}

// NewHTTPLoader creates a loader whose downloads time out after timeout
func NewHTTPLoader(timeout time.Duration, placeholder fyne.Resource, logger *slog.Logger) *HTTPLoader {
	ctx, cancel := context.WithCancel(context.Background())
	return &HTTPLoader{
		client:      &http.Client{},
		placeholder: placeholder,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		timeout:     timeout,
		cache:       make(map[string]fyne.Resource),
		failed:      make(map[string]bool),
		inflight:    make(map[string]bool),
		wanted:      make(map[*canvas.Image]string),
		do:          fyne.Do,
	}
}

// Load implements Loader
func (l *HTTPLoader) Load(url string, target *canvas.Image) {
	l.mu.Lock()
	l.wanted[target] = url
	cached, ok := l.cache[url]
	start := url != "" && !ok && !l.failed[url] && !l.inflight[url]
	if start {
		l.inflight[url] = true
	}
	l.mu.Unlock()

	if ok {
		setResource(target, cached)
		return
	}
	setResource(target, l.placeholder)
	if start {
		go l.fetch(url)
	}
}

// SetTimeout changes the timeout of downloads started from now on
func (l *HTTPLoader) SetTimeout(timeout time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.timeout = timeout
}

// Timeout returns the download timeout
func (l *HTTPLoader) Timeout() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.timeout
}

// Close cancels downloads in flight. Loads after Close only show the placeholder.
func (l *HTTPLoader) Close() {
	l.cancel()
}

func (l *HTTPLoader) fetch(url string) {
	res, err := l.download(url)

	l.mu.Lock()
	delete(l.inflight, url)
	switch {
	case err == nil:
		l.cache[url] = res
	case errors.Is(err, errUnusablePhoto):
		l.failed[url] = true
	}
	l.mu.Unlock()

	if err != nil {
		l.logger.Debug("place photo not loaded", slog.String("url", url), slog.Any("error", err))
		return
	}

	l.do(func() {
		l.apply(url, res)
	})
}

// apply shows res in every target still waiting for url
func (l *HTTPLoader) apply(url string, res fyne.Resource) {
	l.mu.Lock()
	var targets []*canvas.Image
	for target, wanted := range l.wanted {
		if wanted == url {
			targets = append(targets, target)
		}
	}
	l.mu.Unlock()

	for _, target := range targets {
		setResource(target, res)
	}
}

func (l *HTTPLoader) download(url string) (fyne.Resource, error) {
	ctx, cancel := context.WithTimeout(l.ctx, l.Timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get photo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", errUnusablePhoto, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, fmt.Errorf("%w: larger than %d bytes", errUnusablePhoto, maxImageBytes)
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", errUnusablePhoto, err)
	}
	l.logger.Debug("place photo loaded",
		slog.String("url", url),
		slog.String("format", format),
		slog.Int("bytes", len(data)))

	return fyne.NewStaticResource(path.Base(req.URL.Path), data), nil
}

func setResource(target *canvas.Image, res fyne.Resource) {
	if target.Resource == res {
		return
	}
	target.File = ""
	target.Image = nil
	target.Resource = res
	target.Refresh()
}
