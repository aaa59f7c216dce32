package raster

import (
	"runtime"
	"sync"

	"github.com/gviegas/scene/linear"
)

// ParallelConfig configures parallel rasterization.
type ParallelConfig struct {
	// Workers is the number of worker goroutines.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// MinHeight is the minimum framebuffer height, in pixels, worth
	// splitting across workers. Below this, single-threaded dispatch
	// is used to avoid spawning goroutines for a handful of rows.
	// If 0, defaults to TileSize*4.
	MinHeight int
}

// DefaultParallelConfig returns sensible defaults for parallel rasterization.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Workers:   runtime.NumCPU(),
		MinHeight: TileSize * 4,
	}
}

// WorkerPool manages a pool of worker goroutines for parallel execution.
// Tasks are submitted via channels and executed concurrently.
type WorkerPool struct {
	workers int
	wg      sync.WaitGroup
	tasks   chan func()
	quit    chan struct{}
	started bool
	mu      sync.Mutex
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers <= 0, it defaults to runtime.NumCPU().
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	return &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*4), // Buffered channel
		quit:    make(chan struct{}),
		started: false,
	}
}

// Start launches the worker goroutines.
// It is safe to call Start multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return
	}

	p.started = true
	for i := 0; i < p.workers; i++ {
		go p.worker()
	}
}

// worker is the main loop for a worker goroutine.
func (p *WorkerPool) worker() {
	for {
		select {
		case task, ok := <-p.tasks:
			if !ok {
				return
			}
			task()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Submit adds a task to the worker pool.
// The task will be executed by one of the workers.
// This method blocks if the task queue is full.
func (p *WorkerPool) Submit(task func()) {
	p.wg.Add(1)
	p.tasks <- task
}

// Wait blocks until all submitted tasks have completed.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}

// Close shuts down the worker pool.
// It signals all workers to stop and closes the task channel; it does
// not wait for tasks that are still queued or running.
func (p *WorkerPool) Close() {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()

	close(p.quit)
	close(p.tasks)
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// RenderParallel dispatches Render across c.Config.Workers goroutines by
// splitting the framebuffer into disjoint, tile-aligned horizontal
// bands, one per worker, and running the full batch against each band
// independently (spec.md §5: tile-parallel dispatch is permitted, not
// required). Every band sees every triangle; rasterizeTriangle clips
// its own tile loop to the band it was given, so a pixel is written by
// exactly one worker and no synchronization on the output buffers is
// needed.
//
// Triangle setup (coefficient matrix, projection, attribute transform)
// is repeated once per band rather than shared, trading redundant
// per-triangle work for a simple, lock-free split; for scenes with few
// triangles and tall frames this is the right trade, and it is why
// RenderParallel falls back to a single-threaded Render below
// c.Config.MinHeight.
func (c *Context) RenderParallel(batch Batch, mvp *linear.M4, flags AttrFlags) {
	cfg := c.Config
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.MinHeight <= 0 {
		cfg.MinHeight = TileSize * 4
	}

	height := c.Color.Height()
	if height < cfg.MinHeight || cfg.Workers <= 1 {
		c.Render(batch, mvp, flags)
		return
	}

	bands := bandBounds(height, cfg.Workers)
	if len(bands) <= 1 {
		c.Render(batch, mvp, flags)
		return
	}

	pool := NewWorkerPool(len(bands))
	pool.Start()
	defer pool.Close()

	for _, b := range bands {
		bandCtx := c.band(b.min, b.max)
		// Render rewrites the attribute streams in place, so each band
		// gets its own copy of them.
		bandBatch := batch
		bandBatch.TexCoord0 = append([]Vertex(nil), batch.TexCoord0...)
		bandBatch.TexCoord1 = append([]Vertex(nil), batch.TexCoord1...)
		bandBatch.Normals = append([]Vertex(nil), batch.Normals...)
		bandBatch.Colors = append([]Vertex(nil), batch.Colors...)
		pool.Submit(func() {
			bandCtx.Render(bandBatch, mvp, flags)
		})
	}
	pool.Wait()
}

type rowBand struct{ min, max int32 }

// bandBounds splits [0, height) into up to workers disjoint ranges,
// each rounded to a TileSize multiple so every tile belongs to exactly
// one band.
func bandBounds(height, workers int) []rowBand {
	tiles := (height + TileSize - 1) / TileSize
	if tiles == 0 {
		return nil
	}
	if workers > tiles {
		workers = tiles
	}

	tilesPerBand := (tiles + workers - 1) / workers

	var bands []rowBand
	for t := 0; t < tiles; t += tilesPerBand {
		min := int32(t * TileSize)
		maxTile := t + tilesPerBand
		if maxTile > tiles {
			maxTile = tiles
		}
		max := int32(maxTile * TileSize)
		if max > int32(height) {
			max = int32(height)
		}
		bands = append(bands, rowBand{min: min, max: max})
	}
	return bands
}
