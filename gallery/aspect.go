package gallery

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const fetchTimeout = 10 * time.Second

// Asset is a decoded picture and its clamped aspect ratio. Err is set when the
// picture could not be loaded; Aspect then holds the default ratio.
type Asset struct {
	Image  image.Image
	Aspect float64
	Err    error
}

// Loader fetches and decodes frame pictures with bounded concurrency. A picture
// that fails to load never blocks the others.
type Loader struct {
	root   string
	bounds AspectBounds
	limit  int
	client *http.Client

	mu    sync.Mutex
	cache map[string]Asset

	done  atomic.Int32
	total atomic.Int32
}

// NewLoader resolves relative references against root.
func NewLoader(root string, bounds AspectBounds, limit int) *Loader {
	if limit <= 0 {
		limit = 4
	}
	return &Loader{
		root:   root,
		bounds: bounds,
		limit:  limit,
		client: &http.Client{Timeout: fetchTimeout},
		cache:  make(map[string]Asset),
	}
}

// Progress reports how many pictures of the current batch are finished.
func (l *Loader) Progress() (done, total int) {
	return int(l.done.Load()), int(l.total.Load())
}

// Load decodes every frame's picture and returns the results keyed by frame id.
func (l *Loader) Load(ctx context.Context, frames []Frame) map[string]Asset {
	l.done.Store(0)
	l.total.Store(int32(len(frames)))

	out := make(map[string]Asset, len(frames))
	var outMu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(l.limit)
	for _, f := range frames {
		g.Go(func() error {
			a := l.loadOne(ctx, f.ImageRef)
			if a.Err != nil {
				log.Printf("[Loader] %s (%s): %v", f.Title, f.ImageRef, a.Err)
			}
			outMu.Lock()
			out[f.ID] = a
			outMu.Unlock()
			l.done.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (l *Loader) loadOne(ctx context.Context, ref string) Asset {
	l.mu.Lock()
	a, ok := l.cache[ref]
	l.mu.Unlock()
	if ok {
		return a
	}

	a = l.decode(ctx, ref)
	if a.Err == nil {
		l.mu.Lock()
		l.cache[ref] = a
		l.mu.Unlock()
	}
	return a
}

func (l *Loader) decode(ctx context.Context, ref string) Asset {
	if err := ctx.Err(); err != nil {
		return Asset{Aspect: l.bounds.Default, Err: err}
	}
	rc, err := l.open(ctx, ref)
	if err != nil {
		return Asset{Aspect: l.bounds.Default, Err: err}
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return Asset{Aspect: l.bounds.Default, Err: fmt.Errorf("decode: %w", err)}
	}
	b := img.Bounds()
	return Asset{Image: img, Aspect: l.bounds.Clamp(b.Dx(), b.Dy())}
}

func (l *Loader) open(ctx context.Context, ref string) (io.ReadCloser, error) {
	if isRemote(ref) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch: %s", resp.Status)
		}
		return resp.Body, nil
	}
	return os.Open(l.resolve(ref))
}

// resolve maps a reference such as "/images/1.jpg" onto the asset root.
func (l *Loader) resolve(ref string) string {
	if l.root == "" {
		return filepath.FromSlash(ref)
	}
	return filepath.Join(l.root, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
}

func isRemote(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
