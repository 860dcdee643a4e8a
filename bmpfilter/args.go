package main
// Handles command line arguments for bmpfilter.

import (
  "errors"
  "fmt"

  "github.com/spf13/pflag"

  "github.com/InfinityTools/bmpfilter/config"
  "github.com/InfinityTools/bmpfilter/pipeline"
)

const (
  CMDOPT_HELP = "help"
  CMDOPT_VERSION = "version"
  CMDOPT_VERBOSE = "verbose"
  CMDOPT_SILENT = "silent"
  CMDOPT_LOG_STYLE = "log-style"
  CMDOPT_CONFIG = "config"
  CMDOPT_THREADED = "threaded"
  CMDOPT_NO_THREADED = "no-threaded"
)

type CmdOptions struct {
  help        bool
  version     bool
  verbose     bool
  silent      bool
  logStyle    bool
  config      string
  threaded    bool
  noThreaded  bool
}


// Registers all options in the given flag set. Parsing stops at the first positional argument, so filter
// definitions are passed on verbatim.
func (opts *CmdOptions) addFlags(flags *pflag.FlagSet) {
  flags.SetInterspersed(false)
  flags.BoolVarP(&opts.help, CMDOPT_HELP, "h", false, "Print this help and exit.")
  flags.BoolVar(&opts.version, CMDOPT_VERSION, false, "Print version information and exit.")
  flags.BoolVar(&opts.verbose, CMDOPT_VERBOSE, false, "Show additional log messages.")
  flags.BoolVar(&opts.silent, CMDOPT_SILENT, false, "Suppress any log messages.")
  flags.BoolVar(&opts.logStyle, CMDOPT_LOG_STYLE, false, "Print log messages with timestamp and log level.")
  flags.StringVar(&opts.config, CMDOPT_CONFIG, "", "Load the conversion job from an XML or JSON file.")
  flags.BoolVar(&opts.threaded, CMDOPT_THREADED, false, "Apply filters on multiple threads.")
  flags.BoolVar(&opts.noThreaded, CMDOPT_NO_THREADED, false, "Apply filters on a single thread.")
}

// Returns whether multithreading was explicitly requested (first value) and whether the option was set at all.
func (opts *CmdOptions) multiThreaded() (bool, bool) {
  if opts.noThreaded { return false, true }
  if opts.threaded { return true, true }
  return false, false
}


// Assembles the conversion job from a job file and/or the positional arguments.
//
// Without job file the arguments are: input output [-filter [param ...]] ...
// With job file all arguments are filter definitions which are appended to the filters of the job file.
func buildJob(opts *CmdOptions, args []string) (*pipeline.Job, error) {
  var job *pipeline.Job
  if opts.config != "" {
    var err error
    job, err = config.ImportJobFile(opts.config)
    if err != nil { return nil, err }
  } else {
    if len(args) < 2 { return nil, errors.New("The path to the input and/or output file is not specified") }
    job = &pipeline.Job{Input: args[0], Output: args[1]}
    args = args[2:]
  }

  filters, err := parseFilterChain(args)
  if err != nil { return nil, err }
  job.Filters = append(job.Filters, filters...)
  return job, nil
}

// Groups the given arguments into filter definitions. A filter name is prefixed by a single '-'. All following
// arguments up to the next filter name are parameters of that filter.
func parseFilterChain(args []string) ([]pipeline.FilterSpec, error) {
  var filters []pipeline.FilterSpec
  for _, arg := range args {
    if isFilterName(arg) {
      filters = append(filters, pipeline.FilterSpec{Name: arg[1:]})
    } else {
      if len(filters) == 0 { return nil, fmt.Errorf("Parameter %q without filter", arg) }
      cur := &filters[len(filters)-1]
      cur.Params = append(cur.Params, arg)
    }
  }
  return filters, nil
}

// Used internally. Returns whether arg denotes a filter name: a '-' followed by a letter.
func isFilterName(arg string) bool {
  if len(arg) < 2 || arg[0] != '-' { return false }
  c := arg[1]
  return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
