// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog handler and level control,
// and colored printing of messages at a given level.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically be
// set through [SetLevel] or [InitHandler].
var UserLevel slog.LevelVar

func init() {
	UserLevel.Set(defaultUserLevel)
}

// ParseLevel returns the level for the given name:
// debug, info, warn or error (case insensitive).
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(strings.TrimSpace(name)))
	return l, err
}

// SetLevel sets [UserLevel] from the given level name.
// An empty name leaves the level unchanged.
func SetLevel(name string) error {
	if name == "" {
		return nil
	}
	l, err := ParseLevel(name)
	if err != nil {
		return fmt.Errorf("logx: %w", err)
	}
	UserLevel.Set(l)
	return nil
}

// InitHandler makes the default slog logger write text records to w,
// filtered by [UserLevel].
func InitHandler(w io.Writer) {
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &UserLevel})))
}

var output = termenv.NewOutput(os.Stderr)

// SetOutput sets the writer used by the Println functions.
func SetOutput(w io.Writer) {
	output = termenv.NewOutput(w)
}

// Println prints the given arguments with the color for the given
// level, if the level is at or above [UserLevel].
func Println(level slog.Level, a ...any) {
	if level < UserLevel.Level() {
		return
	}
	s := strings.TrimSuffix(fmt.Sprintln(a...), "\n")
	st := output.String(s)
	switch {
	case level >= slog.LevelError:
		st = st.Foreground(termenv.ANSIRed).Bold()
	case level >= slog.LevelWarn:
		st = st.Foreground(termenv.ANSIYellow)
	case level >= slog.LevelInfo:
		st = st.Foreground(termenv.ANSICyan)
	default:
		st = st.Faint()
	}
	fmt.Fprintln(output, st.String())
}

// PrintlnError prints the given arguments in the error color.
func PrintlnError(a ...any) {
	Println(slog.LevelError, a...)
}

// PrintlnWarn prints the given arguments in the warning color.
func PrintlnWarn(a ...any) {
	Println(slog.LevelWarn, a...)
}

// PrintlnInfo prints the given arguments in the info color.
func PrintlnInfo(a ...any) {
	Println(slog.LevelInfo, a...)
}

// PrintlnDebug prints the given arguments in the debug color.
func PrintlnDebug(a ...any) {
	Println(slog.LevelDebug, a...)
}
