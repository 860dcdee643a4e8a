/*
Package filter implements the image filters and the registry that creates them by name.

Every filter maps an input image to a newly allocated output image and never modifies its input. Neighborhood
based filters replicate edge pixels for positions outside of the image.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package filter

import (
  "errors"
  "fmt"
  "sort"
  "strconv"

  "github.com/InfinityTools/bmpfilter/raster"
)

// ErrArgument indicates an unknown filter name or invalid filter parameters. Test with errors.Is.
var ErrArgument = errors.New("filter: invalid argument")

// Filter transforms images.
type Filter interface {
  // Name returns the name of the filter for identification purposes.
  Name() string
  // Apply returns a new image with the filter effect applied to img. img is not modified.
  Apply(img *raster.Image) *raster.Image
}

// CreateFunc validates the given parameters and returns a configured filter.
type CreateFunc func(params []string) (Filter, error)

type filterType struct {
  name    string
  create  CreateFunc
}

type filterMap map[string]filterType


var filterTypes filterMap = make(filterMap)


// Create returns a new filter of the given name, configured with the given parameters.
//
// Returns an error wrapping ErrArgument if the filter does not exist or the parameters are invalid.
func Create(name string, params []string) (Filter, error) {
  f, ok := filterTypes[name]
  if !ok { return nil, fmt.Errorf("%w: cannot find filter with name %s", ErrArgument, name) }
  return f.create(params)
}

// Exists returns whether a filter of the given name is registered.
func Exists(name string) bool {
  _, ok := filterTypes[name]
  return ok
}

// Names returns the names of all registered filters in sorted order.
func Names() []string {
  names := make([]string, 0, len(filterTypes))
  for name := range filterTypes {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}


// registerFilter registers a filter constructor. It must be called by each filter once.
func registerFilter(name string, create CreateFunc) {
  filterTypes[name] = filterType{name, create}
}

// Used internally. Checks that exactly count parameters are given.
func checkParamCount(name string, params []string, count int) error {
  if len(params) != count {
    return fmt.Errorf("%w: incorrect number of arguments for filter %s: expected %d, got %d",
                      ErrArgument, name, count, len(params))
  }
  return nil
}

// Converts a string of decimal digits into a non-negative integer. Signs, whitespace and other notations are rejected.
func parseSize(value string) (int, error) {
  if len(value) == 0 || !allChars(value, false) {
    return 0, fmt.Errorf("%w: not a non-negative integer: %q", ErrArgument, value)
  }
  ret, err := strconv.ParseUint(value, 10, strconv.IntSize - 1)
  if err != nil { return 0, fmt.Errorf("%w: integer out of range: %q", ErrArgument, value) }
  return int(ret), nil
}

// Converts a string of decimal digits with an optional fraction into a float. Signs and exponents are rejected.
func parseNumber(value string) (float64, error) {
  if len(value) == 0 || !allChars(value, true) {
    return 0, fmt.Errorf("%w: not a number: %q", ErrArgument, value)
  }
  ret, err := strconv.ParseFloat(value, 64)
  if err != nil { return 0, fmt.Errorf("%w: not a number: %q", ErrArgument, value) }
  return ret, nil
}

// Used internally. Returns whether value consists only of decimal digits and, if allowDot is set, '.' characters.
func allChars(value string, allowDot bool) bool {
  for i := 0; i < len(value); i++ {
    c := value[i]
    if c >= '0' && c <= '9' { continue }
    if allowDot && c == '.' { continue }
    return false
  }
  return true
}
