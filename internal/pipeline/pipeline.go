package pipeline

import (
	"fmt"
	"os"
	"sync"
	"time"

	"picwall/internal/archive"
	"picwall/internal/assets"
	"picwall/internal/logging"
	"picwall/internal/mediatypes"
	"picwall/internal/metrics"
	"picwall/internal/preview"
	"picwall/internal/scan"
	"picwall/internal/workers"
)

// maxWorkers caps the transcode fan-out independent of directory size.
const maxWorkers = 8

// Result is the outcome of transcoding one source image. Exactly one
// Result exists per source; it is produced by one worker, sent over the
// results channel, and owned by the aggregator afterwards. A non-nil Err
// marks a per-item failure that excludes the image from the gallery
// without aborting the build.
type Result struct {
	Ordinal     int
	FileName    string
	DisplayName string
	Preview     []byte
	Full        []byte
	Err         error
}

// Builder runs the gallery build: scan, concurrent transcode, ordered
// aggregation, archive finalization and the freeze handoff.
type Builder struct {
	dir        string
	numWorkers int
	gen        *preview.Generator

	// testDelay, when set by tests, runs inside each worker before its
	// result is sent. It lets tests randomize completion order to prove
	// output order does not depend on scheduling.
	testDelay func(ordinal int)
}

// New returns a builder for the given directory. numWorkers <= 0 selects a
// CPU-proportional default. quality is the preview encoder quality.
func New(dir string, numWorkers, quality int) *Builder {
	if numWorkers <= 0 {
		numWorkers = workers.ForCPU(maxWorkers)
	}
	return &Builder{
		dir:        dir,
		numWorkers: numWorkers,
		gen:        preview.NewGenerator(quality),
	}
}

// Run executes the build and returns the frozen snapshot. It blocks until
// every scanned image has been transcoded (successfully or not); no
// partial state is ever visible to callers. The only fatal error is an
// unlistable gallery directory.
func (b *Builder) Run() (*assets.Snapshot, error) {
	start := time.Now()

	sources, err := scan.Directory(b.dir)
	if err != nil {
		return nil, err
	}
	n := len(sources)

	metrics.BuildImagesScanned.Set(float64(n))
	metrics.BuildWorkers.Set(float64(b.numWorkers))
	logging.Info("Building gallery from %s: %d image(s), %d worker(s), preview format %s",
		b.dir, n, b.numWorkers, b.gen.Format())

	results := b.fanOut(sources)
	snapshot, err := b.aggregate(sources, results, start)
	if err != nil {
		return nil, err
	}

	stats := snapshot.Stats()
	metrics.BuildDuration.Set(stats.Duration.Seconds())
	logging.Info("Gallery build complete: %d of %d image(s) in %v (failures: %d)",
		stats.Succeeded, stats.Scanned, stats.Duration.Round(time.Millisecond), stats.Failed)
	return snapshot, nil
}

// fanOut schedules one transcode per source onto a fixed-size worker set
// and returns the shared completion channel. The channel closes once every
// worker has drained the job queue, which is the barrier the aggregator
// waits on.
func (b *Builder) fanOut(sources []scan.SourceImage) <-chan Result {
	jobs := make(chan scan.SourceImage, len(sources))
	results := make(chan Result, len(sources))

	var wg sync.WaitGroup
	for w := 0; w < b.numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logging.Debug("Transcode worker %d started", id)
			for src := range jobs {
				res := b.transcode(src)
				if b.testDelay != nil {
					b.testDelay(src.Ordinal)
				}
				results <- res
			}
			logging.Debug("Transcode worker %d finished", id)
		}(w)
	}

	for _, src := range sources {
		jobs <- src
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// transcode processes one source image: read the original fully, generate
// the downscaled preview, and hand back both representations. Workers
// share nothing; every failure travels as data in the Result.
func (b *Builder) transcode(src scan.SourceImage) Result {
	start := time.Now()
	res := Result{
		Ordinal:     src.Ordinal,
		FileName:    src.FileName,
		DisplayName: src.DisplayName,
	}

	data, err := os.ReadFile(src.Path)
	if err != nil {
		res.Err = fmt.Errorf("reading %s: %w", src.Path, err)
		return res
	}

	p, err := b.gen.Generate(data)
	if err != nil {
		res.Err = fmt.Errorf("transcoding %s: %w", src.Path, err)
		return res
	}

	res.Full = data
	res.Preview = p
	metrics.TranscodeDuration.Observe(time.Since(start).Seconds())
	return res
}

// aggregate is the single consumer of the completion channel. It slots
// results by ordinal as they arrive, then walks the slots in scan order to
// drive the archive and the asset table. All mutation of shared output
// happens here, on one goroutine, after the fan-out's barrier has fired.
func (b *Builder) aggregate(sources []scan.SourceImage, results <-chan Result, start time.Time) (*assets.Snapshot, error) {
	slots := make([]*Result, len(sources))
	failed := 0

	for res := range results {
		if res.Err != nil {
			failed++
			metrics.TranscodesTotal.WithLabelValues("error").Inc()
			logging.Error("Couldn't process %s: %v", res.FileName, res.Err)
			continue
		}
		metrics.TranscodesTotal.WithLabelValues("success").Inc()
		r := res
		slots[r.Ordinal] = &r
	}

	// Barrier has fired: every worker has reported. Surface the results in
	// original scan order, independent of completion order.
	table := assets.NewTable()
	zb := archive.NewBuilder()
	previewExt := mediatypes.PreviewExt(b.gen.Format())
	previewType := mediatypes.PreviewContentType(b.gen.Format())

	for _, res := range slots {
		if res == nil {
			continue
		}

		if err := zb.Append(res.FileName, res.Full); err != nil {
			return nil, err
		}

		fullKey := assets.FullKey(res.FileName)
		previewKey := assets.PreviewKey(res.DisplayName, previewExt)

		table.Put(fullKey, assets.Asset{Data: res.Full, ContentType: mediatypes.ContentTypeJPEG})
		table.Put(previewKey, assets.Asset{Data: res.Preview, ContentType: previewType})
		table.AddEntry(assets.Entry{
			DisplayName: res.DisplayName,
			PreviewKey:  previewKey,
			FullKey:     fullKey,
		})
	}

	zipData, err := zb.Finalize()
	if err != nil {
		return nil, err
	}
	table.Put(assets.ArchiveKey, assets.Asset{Data: zipData, ContentType: mediatypes.ContentTypeZip})

	succeeded := len(sources) - failed
	metrics.ArchiveSizeBytes.Set(float64(len(zipData)))
	metrics.AssetsServed.WithLabelValues("full").Set(float64(succeeded))
	metrics.AssetsServed.WithLabelValues("preview").Set(float64(succeeded))
	metrics.AssetsServed.WithLabelValues("archive").Set(1)

	return table.Freeze(assets.Stats{
		Scanned:       len(sources),
		Succeeded:     succeeded,
		Failed:        failed,
		Duration:      time.Since(start),
		PreviewFormat: b.gen.Format(),
	}), nil
}
