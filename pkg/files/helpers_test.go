// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files_test

import (
	"fmt"
	"io"
)

type recordingUI struct {
	lines []string
}

func (u *recordingUI) Printf(str string, args ...interface{}) {
	u.lines = append(u.lines, fmt.Sprintf(str, args...))
}
func (u *recordingUI) Debugf(string, ...interface{}) {}
func (u *recordingUI) DebugWriter() io.Writer        { return io.Discard }
