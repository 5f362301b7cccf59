// SPDX-License-Identifier: MIT
// Copyright (c) 2026 b0mbie
// Source: github.com/b0mbie/bubz2

package pipeline

import (
	"context"
	"io"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/dsnet/compress/bzip2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Compressor runs compression jobs concurrently.
type Compressor struct {
	// Level is the bzip2 compression level. LevelNone copies verbatim.
	Level Level
	// Jobs caps concurrent workers. Zero or negative means NumCPU.
	Jobs int
	// Log receives per-job failures. Nil means the standard logger.
	Log logrus.FieldLogger
	// OnDone, when set, is called after each successful job.
	OnDone func(Job)
}

// Run compresses all jobs and returns after the last one finishes.
//
// A failed job is logged and counted but does not stop the others. The
// returned error is non-nil when the context was canceled or any job
// failed.
func (c *Compressor) Run(ctx context.Context, jobs []Job) error {
	log := c.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	workers := c.Jobs
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var failed atomic.Int64
	for _, job := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := c.compressOne(job); err != nil {
				failed.Add(1)
				log.WithError(err).WithField("source", job.Source).Error("compression failed")
				return nil
			}

			if c.OnDone != nil {
				c.OnDone(job)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return errors.Errorf("%d of %d files failed to compress", n, len(jobs))
	}

	return nil
}

// compressOne writes one destination file from its source.
func (c *Compressor) compressOne(job Job) error {
	source, err := os.Open(job.Source)
	if err != nil {
		return errors.Wrap(err, "open source")
	}
	defer func() { _ = source.Close() }()

	destination, err := os.OpenFile(job.Destination, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Wrap(err, "open destination")
	}

	if err := c.encode(destination, source); err != nil {
		_ = destination.Close()
		return err
	}

	if err := destination.Close(); err != nil {
		return errors.Wrap(err, "close destination")
	}

	return nil
}

// encode streams source into destination at the configured level.
func (c *Compressor) encode(destination io.Writer, source io.Reader) error {
	if c.Level == LevelNone {
		if _, err := io.Copy(destination, source); err != nil {
			return errors.Wrap(err, "copy")
		}

		return nil
	}

	w, err := bzip2.NewWriter(destination, &bzip2.WriterConfig{Level: int(c.Level)})
	if err != nil {
		return errors.Wrap(err, "create encoder")
	}

	if _, err := io.Copy(w, source); err != nil {
		_ = w.Close()
		return errors.Wrap(err, "compress")
	}

	if err := w.Close(); err != nil {
		return errors.Wrap(err, "finish stream")
	}

	return nil
}
