package imageload

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/shhac/travelease/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// photoServer serves a PNG at /photo.png, garbage at /broken.png and 404 elsewhere
func photoServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	data := pngBytes(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/photo.png", "/other.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(data)
		case "/broken.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

// newTestLoader returns a loader whose UI callbacks are reported on the channel
func newTestLoader() (*HTTPLoader, chan struct{}) {
	applied := make(chan struct{}, 8)
	l := NewHTTPLoader(2*time.Second, Placeholder, logging.NewNopLogger())
	l.do = func(fn func()) {
		fn()
		applied <- struct{}{}
	}
	return l, applied
}

func waitApplied(t *testing.T, applied chan struct{}) {
	t.Helper()
	select {
	case <-applied:
	case <-time.After(3 * time.Second):
		t.Fatal("photo was not applied")
	}
}

// waitSettled waits until no download for url is running
func waitSettled(t *testing.T, l *HTTPLoader, url string) {
	t.Helper()
	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return !l.inflight[url]
	}, 3*time.Second, 10*time.Millisecond)
}

func TestHTTPLoader_LoadsPhoto(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	srv, _ := photoServer(t)
	l, applied := newTestLoader()
	defer l.Close()

	target := canvas.NewImageFromResource(nil)
	l.Load(srv.URL+"/photo.png", target)
	assert.Equal(t, Placeholder, target.Resource, "placeholder shown while loading")

	waitApplied(t, applied)
	require.NotNil(t, target.Resource)
	assert.Equal(t, "photo.png", target.Resource.Name())
	assert.Equal(t, pngBytes(t), target.Resource.Content())
}

func TestHTTPLoader_CachesByURL(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	srv, hits := photoServer(t)
	l, applied := newTestLoader()
	defer l.Close()

	url := srv.URL + "/photo.png"
	first := canvas.NewImageFromResource(nil)
	l.Load(url, first)
	waitApplied(t, applied)

	second := canvas.NewImageFromResource(nil)
	l.Load(url, second)

	assert.Equal(t, first.Resource, second.Resource, "cached photo applied immediately")
	assert.Equal(t, int32(1), hits.Load())
}

func TestHTTPLoader_FailuresKeepPlaceholder(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	srv, hits := photoServer(t)

	for _, path := range []string{"/missing.png", "/broken.png"} {
		t.Run(path, func(t *testing.T) {
			l, _ := newTestLoader()
			defer l.Close()

			url := srv.URL + path
			target := canvas.NewImageFromResource(nil)
			l.Load(url, target)
			waitSettled(t, l, url)

			assert.Equal(t, Placeholder, target.Resource)
		})
	}

	t.Run("failed url not retried", func(t *testing.T) {
		l, _ := newTestLoader()
		defer l.Close()

		url := srv.URL + "/missing.png"
		l.Load(url, canvas.NewImageFromResource(nil))
		waitSettled(t, l, url)
		before := hits.Load()

		target := canvas.NewImageFromResource(nil)
		l.Load(url, target)
		waitSettled(t, l, url)

		assert.Equal(t, before, hits.Load())
		assert.Equal(t, Placeholder, target.Resource)
	})
}

func TestHTTPLoader_EmptyURL(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	l, _ := newTestLoader()
	defer l.Close()

	target := canvas.NewImageFromResource(nil)
	l.Load("", target)

	assert.Equal(t, Placeholder, target.Resource)
}

func TestHTTPLoader_RecycledTargetShowsLatestURL(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	release := make(chan struct{})
	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow.png" {
			<-release
		}
		_, _ = w.Write(data)
	}))
	defer srv.Close()
	defer close(release)

	l, applied := newTestLoader()
	defer l.Close()

	target := canvas.NewImageFromResource(nil)
	l.Load(srv.URL+"/slow.png", target)
	l.Load(srv.URL+"/fast.png", target)

	waitApplied(t, applied)
	assert.Equal(t, "fast.png", target.Resource.Name())

	release <- struct{}{}
	waitApplied(t, applied)
	assert.Equal(t, "fast.png", target.Resource.Name(), "stale download not applied")
}

func TestHTTPLoader_CloseCancelsDownloads(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	l, _ := newTestLoader()
	url := srv.URL + "/hang.png"
	target := canvas.NewImageFromResource(nil)
	l.Load(url, target)

	l.Close()
	waitSettled(t, l, url)

	assert.Equal(t, Placeholder, target.Resource)
}

func TestHTTPLoader_Timeout(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
			_, _ = w.Write(data)
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	l, _ := newTestLoader()
	defer l.Close()
	l.SetTimeout(20 * time.Millisecond)
	assert.Equal(t, 20*time.Millisecond, l.Timeout())

	url := srv.URL + "/slow.png"
	target := canvas.NewImageFromResource(nil)
	l.Load(url, target)
	waitSettled(t, l, url)

	assert.Equal(t, Placeholder, target.Resource)
}

func TestHTTPLoader_RetriesAfterTimeout(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	data := pngBytes(t)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		select {
		case <-time.After(200 * time.Millisecond):
			_, _ = w.Write(data)
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()

	l, applied := newTestLoader()
	defer l.Close()
	l.SetTimeout(20 * time.Millisecond)

	url := srv.URL + "/slow.png"
	l.Load(url, canvas.NewImageFromResource(nil))
	waitSettled(t, l, url)

	l.SetTimeout(2 * time.Second)
	target := canvas.NewImageFromResource(nil)
	l.Load(url, target)
	waitApplied(t, applied)

	assert.NotEqual(t, Placeholder, target.Resource, "timed out photo fetched again")
	assert.Equal(t, "slow.png", target.Resource.Name())
	assert.Equal(t, int32(2), hits.Load())
}
