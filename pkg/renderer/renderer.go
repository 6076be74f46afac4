// Package renderer drives the sampling loop: it turns a scene and a camera
// into pixels, spreading rows across workers.
package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"math/rand"
	"runtime"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/sync/errgroup"

	"github.com/lumen-engine/lumen/log"
	"github.com/lumen-engine/lumen/pkg/core"
	"github.com/lumen-engine/lumen/pkg/integrator"
)

var logger = log.New("renderer")

// Options configures a render
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	Workers         int   // 0 means one per CPU
	Seed            int64 // base seed; the same seed reproduces the image
}

// Stats summarizes a finished render
type Stats struct {
	Width       int
	Height      int
	Samples     int
	Rows        int
	PrimaryRays int64
	Duration    time.Duration
}

// WriteTable renders the statistics as a table
func (s Stats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", s.Samples)})
	table.Append([]string{"Rows", fmt.Sprintf("%d", s.Rows)})
	table.Append([]string{"Primary rays", fmt.Sprintf("%d", s.PrimaryRays)})
	table.Append([]string{"Duration", s.Duration.Round(time.Millisecond).String()})
	table.Render()
}

// Renderer runs the per-pixel sampling loop over a worker pool. Rows are
// the unit of work: each row is owned by exactly one worker, so pixel
// writes need no locking. World and material data are shared read-only.
type Renderer struct {
	opts Options
}

// New creates a renderer, filling in option defaults
func New(opts Options) (*Renderer, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid resolution %dx%d", opts.Width, opts.Height)
	}
	if opts.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("invalid sample count %d", opts.SamplesPerPixel)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	return &Renderer{opts: opts}, nil
}

// Render estimates every pixel with the given integrator and camera.
// The result is deterministic for a fixed seed and resolution, regardless
// of worker count: each row's sampler is seeded from the base seed and the
// row index alone.
func (r *Renderer) Render(ctx context.Context, tracer *integrator.PathTracer, cam *Camera) (*image.RGBA, Stats, error) {
	opts := r.opts
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	start := time.Now()

	logger.Infof("rendering %dx%d, %d spp, %d workers",
		opts.Width, opts.Height, opts.SamplesPerPixel, opts.Workers)

	rows := make(chan int)
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defer close(rows)
		for y := 0; y < opts.Height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < opts.Workers; w++ {
		group.Go(func() error {
			for y := range rows {
				r.renderRow(tracer, cam, img, y)
				logger.Debugf("row %d done", y)
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, Stats{}, err
	}

	stats := Stats{
		Width:       opts.Width,
		Height:      opts.Height,
		Samples:     opts.SamplesPerPixel,
		Rows:        opts.Height,
		PrimaryRays: int64(opts.Width) * int64(opts.Height) * int64(opts.SamplesPerPixel),
		Duration:    time.Since(start),
	}
	logger.Infof("finished in %s", stats.Duration.Round(time.Millisecond))
	return img, stats, nil
}

func (r *Renderer) renderRow(tracer *integrator.PathTracer, cam *Camera, img *image.RGBA, y int) {
	opts := r.opts
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(opts.Seed + int64(y))))

	for x := 0; x < opts.Width; x++ {
		sum := core.NewVec3(0, 0, 0)
		for s := 0; s < opts.SamplesPerPixel; s++ {
			jitter := sampler.Get2D()
			u := (float64(x) + jitter.X) / float64(opts.Width)
			v := (float64(y) + jitter.Y) / float64(opts.Height)
			sum = sum.Add(tracer.Li(cam.Ray(u, v, sampler), sampler))
		}

		// Image rows run top-down, viewport rows bottom-up
		img.SetRGBA(x, opts.Height-1-y, toSRGB(sum, opts.SamplesPerPixel))
	}
}

// toSRGB averages accumulated radiance and applies gamma-2 conversion.
// Non-finite channels are written as black rather than poisoning the pixel.
func toSRGB(sum core.Vec3, samples int) color.RGBA {
	scale := 1.0 / float64(samples)
	return color.RGBA{
		R: toByte(sum.X * scale),
		G: toByte(sum.Y * scale),
		B: toByte(sum.Z * scale),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) || v < 0 {
		v = 0
	}
	v = math.Sqrt(v)
	if v > 0.999 {
		v = 0.999
	}
	return uint8(256 * v)
}
