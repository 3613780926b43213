package snesgfx

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

const (
	binaryExt = ".bin"
	imageExt  = ".png"
)

var errBatchMode = errors.New("snesgfx: mode can't be used in a batch")

func extensions(dir Direction) (string, string) {
	if dir == ToConsole {
		return imageExt, binaryExt
	}
	return binaryExt, imageExt
}

func findFiles(ctx context.Context, base, ext string) (<-chan string, <-chan error) {
	out := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(out)
		defer close(errc)
		errc <- filepath.Walk(base, func(file string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			// Ignore any hidden files or directories
			if file != base && info.Name()[0] == '.' {
				if info.Mode().IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// Ignore anything that isn't a normal file
			if !info.Mode().IsRegular() {
				return nil
			}

			if !strings.EqualFold(filepath.Ext(file), ext) {
				return nil
			}

			select {
			case out <- file:
			case <-ctx.Done():
				return errors.New("walk cancelled")
			}

			return nil
		})
	}()
	return out, errc
}

func (c *Converter) fileWorker(ctx context.Context, mode Mode, dir Direction, in <-chan string) <-chan error {
	errc := make(chan error, 1)
	_, ext := extensions(dir)
	go func() {
		defer close(errc)
		for file := range in {
			select {
			case <-ctx.Done():
				return
			default:
			}

			out := strings.TrimSuffix(file, filepath.Ext(file)) + ext
			if err := c.Convert(mode, dir, file, out); err != nil {
				errc <- errors.Wrapf(err, "converting %s", file)
				return
			}
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

// Batch converts every file under path in the given direction using
// workers concurrent conversions. Converting to the console format reads
// every .png file and writes a .bin file alongside it, converting from it
// does the reverse. The first error stops the batch.
func (c *Converter) Batch(ctx context.Context, mode Mode, dir Direction, path string, workers int) error {
	if mode == ModeQuantize {
		return errBatchMode
	}
	if workers < 1 {
		workers = 1
	}

	base, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	var errcList []<-chan error

	ext, _ := extensions(dir)
	files, errc := findFiles(ctx, base, ext)
	errcList = append(errcList, errc)

	for i := 0; i < workers; i++ {
		errcList = append(errcList, c.fileWorker(ctx, mode, dir, files))
	}

	return waitForPipeline(errcList...)
}
