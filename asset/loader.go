package asset

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/goo-scene/scene"
	"github.com/lixenwraith/goo-scene/status"
)

// ErrNoBinding is returned for specs without a matching actor binding
var ErrNoBinding = errors.New("asset: no binding for model")

// Loader builds models off the frame goroutine and resolves actor bindings as each completes
type Loader struct {
	// Workers bounds concurrent builds, zero means one goroutine per model
	Workers int
	// Status receives the bound model count when set
	Status *status.Registry

	mu     sync.Mutex
	loaded []string
}

// NewLoader creates a loader running at most workers builds at once, zero is unbounded
// reg may be nil
func NewLoader(workers int, reg *status.Registry) *Loader {
	return &Loader{Workers: workers, Status: reg}
}

// Load builds every spec and resolves bindings[spec.Name] with the result
// A failed model is logged and left unbound, siblings keep loading
// Returns the joined build errors, or ctx's error if cancelled while waiting
func (l *Loader) Load(ctx context.Context, specs []ModelSpec, bindings map[string]*scene.Binding) error {
	var counter *atomic.Int64
	if l.Status != nil {
		counter = l.Status.Ints.Get(status.KeyLoaded)
	}

	g, gctx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		g.SetLimit(l.Workers)
	}

	var (
		mu   sync.Mutex
		errs []error
	)
	fail := func(err error) {
		log.Printf("asset: %v", err)
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	for _, spec := range specs {
		b := bindings[spec.Name]
		if b == nil {
			fail(fmt.Errorf("%w: %q", ErrNoBinding, spec.Name))
			continue
		}
		g.Go(func() error {
			obj, err := Build(spec)
			if err != nil {
				fail(err)
				return nil
			}
			if err := wait(gctx, spec.Latency); err != nil {
				return err
			}
			b.Resolve(obj)
			l.mu.Lock()
			l.loaded = append(l.loaded, spec.Name)
			l.mu.Unlock()
			if counter != nil {
				counter.Add(1)
			}
			log.Printf("asset: %q bound (%d points)", spec.Name, len(obj.Mesh.Points))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return errors.Join(errs...)
}

// Loaded returns model names in completion order
func (l *Loader) Loaded() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.loaded))
	copy(out, l.loaded)
	return out
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
