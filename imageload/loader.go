// Package imageload decodes images in the background and reports
// completions on the UI loop.
//
// Load is called from the game's Update, decoding happens on worker
// goroutines, and Poll (also called from Update) delivers the results.
// Callbacks therefore never run concurrently with drawing or input.
package imageload

import (
	"bytes"
	"fmt"
	"image"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"pic-magnifier/magnifier"
)

type result struct {
	src     string
	version int
	img     image.Image
	err     error
}

// Loader is an asynchronous image loader with a shared cache. It implements
// magnifier.ImageLoader.
type Loader struct {
	mu     sync.RWMutex
	images map[string]image.Image
	blobs  map[string][]byte

	// versions is bumped by Register and Evict; decodes of an older
	// version are discarded.
	versions map[string]int

	jobs    chan string
	results chan result
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once

	client *http.Client
	logger *log.Logger

	// UI loop only
	waiting map[string][]func(magnifier.Size)
	ready   []string
	onError func(src string, err error)
}

// New starts a loader with the given number of decode workers.
func New(workers int, logger *log.Logger) *Loader {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = log.Default()
	}
	l := &Loader{
		images:   make(map[string]image.Image),
		blobs:    make(map[string][]byte),
		versions: make(map[string]int),
		jobs:     make(chan string, 16),
		results:  make(chan result, 16),
		done:     make(chan struct{}),
		client:   &http.Client{Timeout: 30 * time.Second},
		logger:   logger,
		waiting:  make(map[string][]func(magnifier.Size)),
	}
	for i := 0; i < workers; i++ {
		l.wg.Add(1)
		go l.worker()
	}
	return l
}

// OnError sets the hook that receives load failures.
func (l *Loader) OnError(fn func(src string, err error)) {
	l.onError = fn
}

// Load requests src. done runs once from a later Poll with the natural
// size, or never if the image cannot be loaded. Requests for a source that
// is already being decoded share the decode.
func (l *Loader) Load(src string, done func(natural magnifier.Size)) {
	select {
	case <-l.done:
		return
	default:
	}

	pending := len(l.waiting[src]) > 0
	l.waiting[src] = append(l.waiting[src], done)
	if pending {
		return
	}

	if _, ok := l.Image(src); ok {
		l.ready = append(l.ready, src)
		return
	}

	l.enqueue(src)
}

func (l *Loader) enqueue(src string) {
	go func() {
		select {
		case l.jobs <- src:
		case <-l.done:
		}
	}()
}

// Poll delivers finished loads and returns how many sources completed or
// failed.
func (l *Loader) Poll() int {
	n := 0
	ready := l.ready
	l.ready = nil
	for _, src := range ready {
		img, ok := l.Image(src)
		if !ok {
			// Evicted since Load.
			l.enqueue(src)
			continue
		}
		l.complete(src, img)
		n++
	}

	for {
		select {
		case r := <-l.results:
			if r.version != l.version(r.src) {
				// Replaced while decoding; waiters get the new data.
				l.enqueue(r.src)
				continue
			}
			n++
			if r.err != nil {
				delete(l.waiting, r.src)
				l.logger.Printf("Error loading image %s: %v", r.src, r.err)
				if l.onError != nil {
					l.onError(r.src, r.err)
				}
				continue
			}
			l.complete(r.src, r.img)
		default:
			return n
		}
	}
}

func (l *Loader) complete(src string, img image.Image) {
	callbacks := l.waiting[src]
	delete(l.waiting, src)

	b := img.Bounds()
	natural := magnifier.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
	for _, done := range callbacks {
		if done != nil {
			done(natural)
		}
	}
}

// Pending reports whether any load is waiting for Poll.
func (l *Loader) Pending() bool {
	return len(l.waiting) > 0
}

// Image returns the decoded image for src if it has been loaded.
func (l *Loader) Image(src string) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	img, ok := l.images[src]
	return img, ok
}

// Register makes data loadable under name, replacing any earlier image
// with that name.
func (l *Loader) Register(name string, data []byte) {
	l.mu.Lock()
	l.blobs[name] = data
	delete(l.images, name)
	l.versions[name]++
	l.mu.Unlock()
}

// Evict drops the decoded image so the next Load reads src again.
func (l *Loader) Evict(src string) {
	l.mu.Lock()
	delete(l.images, src)
	l.versions[src]++
	l.mu.Unlock()
}

func (l *Loader) version(src string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.versions[src]
}

// Close stops the workers. Pending loads never complete.
func (l *Loader) Close() {
	l.once.Do(func() {
		close(l.done)
		l.wg.Wait()
	})
}

func (l *Loader) worker() {
	defer l.wg.Done()
	for {
		select {
		case src := <-l.jobs:
			l.mu.RLock()
			blob, isBlob := l.blobs[src]
			version := l.versions[src]
			l.mu.RUnlock()

			img, err := l.decode(src, blob, isBlob)
			if err == nil {
				l.mu.Lock()
				if l.versions[src] == version {
					l.images[src] = img
				}
				l.mu.Unlock()
			}
			select {
			case l.results <- result{src: src, version: version, img: img, err: err}:
			case <-l.done:
				return
			}
		case <-l.done:
			return
		}
	}
}

func (l *Loader) decode(src string, blob []byte, isBlob bool) (image.Image, error) {
	switch {
	case isBlob:
		img, err := imaging.Decode(bytes.NewReader(blob), imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return img, nil

	case strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://"):
		resp, err := l.client.Get(src)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch image: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("failed to fetch image: %s", resp.Status)
		}
		img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		return img, nil
	}

	img, err := imaging.Open(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return img, nil
}
