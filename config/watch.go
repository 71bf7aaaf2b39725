// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
)

// Watch reloads the config file whenever it is written or recreated,
// and calls fn with each config that loads and validates. Files that
// fail to load are logged and skipped. The directory is watched rather
// than the file, so that editors that replace the file are followed.
// Watch returns after the watcher is set up; watching stops when ctx
// is done.
func Watch(ctx context.Context, filename string, fn func(cfg *Config)) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	filename, err = filepath.Abs(filename)
	if err != nil {
		return err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filename {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(filename)
				if errors.Log(err) != nil {
					continue
				}
				slog.Debug("config reloaded", "file", filename)
				fn(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("config watcher", "err", err)
			}
		}
	}()
	return nil
}
