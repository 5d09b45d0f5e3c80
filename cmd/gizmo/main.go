// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gizmo replays recorded widget drag scripts against a scene
// and prints the resulting poses.
package main

import (
	"os"

	"cogentcore.org/gizmo/logx"
)

func main() {
	logx.InitHandler(os.Stderr)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
