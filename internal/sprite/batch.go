package sprite

import (
	"image"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultWorkers bounds concurrent runs in MakeBatch when workers <= 0.
const DefaultWorkers = 4

// Variant names one foreground color of a batch.
type Variant struct {
	Name       string
	Foreground colorful.Color
}

// BatchResult pairs a variant with the outcome of its run.
type BatchResult struct {
	Variant Variant
	Result  *Result
	Err     error
}

// MakeBatch renders img once per variant, each with base options and the
// variant's foreground color. Runs share nothing and execute concurrently on
// at most workers goroutines. Results come back in variant order; a failed
// run does not stop the others.
func MakeBatch(img image.Image, base Options, variants []Variant, workers int) []BatchResult {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	results := make([]BatchResult, len(variants))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, v := range variants {
		wg.Add(1)
		go func(i int, v Variant) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			opts := base
			fg := v.Foreground
			opts.Foreground = &fg

			res, err := Make(img, opts)
			results[i] = BatchResult{Variant: v, Result: res, Err: err}
			Logger().Info("rendered variant", "name", v.Name, "ok", err == nil)
		}(i, v)
	}

	wg.Wait()
	return results
}
