/*
Package bmpfilter provides definitions that are shared by the command line tools.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package bmpfilter

import (
  "fmt"
  "io"
  "runtime"
)

// Version number of the whole bmpfilter package.
const (
  VERSION_MAJOR = 1
  VERSION_MINOR = 0
  VERSION_PATCH = 0
)

// Version returns the version string of the bmpfilter package.
func Version() string {
  return fmt.Sprintf("%d.%d.%d", VERSION_MAJOR, VERSION_MINOR, VERSION_PATCH)
}

// PrintVersion prints the current version of the bmpfilter package to w, prefixed by the specified tool name.
func PrintVersion(w io.Writer, toolName string) {
  fmt.Fprintf(w, "%s version %s (binary: %s, %s)\n", toolName, Version(), runtime.GOOS, runtime.GOARCH)
}
