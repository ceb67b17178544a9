// Copyright ©2024 The GUDA Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mmbench

import (
	"fmt"
	"runtime/debug"
)

const root = "github.com/LynnColeArt/mmbench"

// Version returns the module version and its checksum; WriteReport appends
// the version to the report title. The returned values
// are only valid in binaries built with module support. When mmbench is the
// main module the main module's version is reported.
func Version() (version, sum string) {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	if b.Main.Path == root {
		return b.Main.Version, b.Main.Sum
	}
	for _, m := range b.Deps {
		if m.Path != root {
			continue
		}
		if m.Replace != nil {
			switch {
			case m.Replace.Version != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Version), m.Replace.Sum
			case m.Replace.Path != "":
				return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Path), m.Replace.Sum
			}
		}
		return m.Version, m.Sum
	}
	return "", ""
}
