// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch calls fun with freshly opened settings every time the given file
// is written or created, until ctx is done. Read and watch errors are
// passed to fun with nil settings. The directory is watched rather than
// the file, so that editors that replace the file on save are seen.
// Watch blocks; fun is called on the watching goroutine.
func Watch(ctx context.Context, filename string, fun func(s *Settings, err error)) error {
	if _, err := FormatForFile(filename); err != nil {
		return err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "config.Watch")
	}
	defer w.Close()

	target := filepath.Clean(filename)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return errors.Wrap(err, "config.Watch")
	}
	slog.Debug("config: watching settings", "file", target)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			fun(Open(filename))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fun(nil, errors.Wrap(err, "config.Watch"))
		}
	}
}
