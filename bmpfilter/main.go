/*
BMP Filter (bmpfilter) applies a chain of image filters to a 24-bit BMP file.

BMP Filter is released under the BSD 2-clause license. See LICENSE in the project's root folder for more details.
*/
package main

import (
  "fmt"
  "io"
  "os"
  "strings"

  "github.com/InfinityTools/go-logging"
  "github.com/spf13/cobra"

  "github.com/InfinityTools/bmpfilter"
  "github.com/InfinityTools/bmpfilter/filter"
  "github.com/InfinityTools/bmpfilter/pipeline"
)

const TOOL_NAME = "BMP Filter"

func main() {
  if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
    os.Exit(1)
  }
}


// Creates the command line interface. Regular output goes to stdout, log messages and errors go to stderr.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
  opts := &CmdOptions{}
  cmd := &cobra.Command{
    Use: "bmpfilter [options] input output [-filter [param ...]] ...",
    Short: "Applies image filters to 24-bit BMP files.",
    SilenceUsage: true,
    SilenceErrors: true,
    Args: cobra.ArbitraryArgs,
    RunE: func(cmd *cobra.Command, args []string) error {
      err := run(opts, args, stdout, stderr)
      if err != nil {
        logging.Errorf("Error: %v\n", err)
      }
      return err
    },
  }
  cmd.SetOut(stdout)
  cmd.SetErr(stderr)
  cmd.SetHelpFunc(func(*cobra.Command, []string) { printHelp(stdout) })
  cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
    fmt.Fprintf(stderr, "Error: %v\n", err)
    return err
  })
  opts.addFlags(cmd.Flags())
  return cmd
}

// Used internally. Executes the command for the parsed options and remaining arguments.
func run(opts *CmdOptions, args []string, stdout, stderr io.Writer) error {
  setupLogging(opts, stderr)
  if b, x := opts.multiThreaded(); x {
    filter.SetMultiThreaded(b)
  }

  if opts.version {
    bmpfilter.PrintVersion(stdout, TOOL_NAME)
    return nil
  }
  if opts.help || (len(args) == 0 && opts.config == "") {
    printHelp(stdout)
    return nil
  }

  job, err := buildJob(opts, args)
  if err != nil { return err }

  logging.Infof("Starting job: %s -> %s\n", job.Input, job.Output)
  if err := pipeline.Run(*job); err != nil {
    logging.Infoln("Conversion failed.")
    return err
  }
  logging.Infoln("Conversion finished successfully.")
  return nil
}

// Used internally. Directs all log output to w and applies verbosity and log style of the given options.
func setupLogging(opts *CmdOptions, w io.Writer) {
  logging.SetOutput(logging.LOG, w)
  logging.SetOutput(logging.INFO, w)
  logging.SetOutput(logging.ERROR, w)

  if opts.silent {
    logging.SetVerbosity(logging.ERROR)
  } else if opts.verbose {
    logging.SetVerbosity(logging.LOG)
  } else {
    logging.SetVerbosity(logging.INFO)
  }

  logging.SetPrefixCaller(false)
  if opts.logStyle {
    logging.SetPrefixTimestamp(true)
    logging.SetPrefixLevel(true)
  } else {
    logging.SetPrefixTimestamp(false)
    logging.SetPrefixLevel(false)
  }
}


func printHelp(w io.Writer) {
  fmt.Fprintf(w, "Usage: %s [options] input output [-filter [param ...]] ...\n", os.Args[0])
  const helpText = "Applies a chain of image filters to an uncompressed 24-bit BMP file and writes\n" +
                   "the result to another BMP file. Filters are applied in the given order.\n" +
                   "\n" +
                // "...............................................................................\n" +
                   "Options:\n" +
                   "  --config jobfile          Load input, output and filters from an XML or JSON\n" +
                   "                            job file. Filters specified on the command line are\n" +
                   "                            appended to the filters of the job file.\n" +
                   "  --verbose                 Show additional log messages.\n" +
                   "  --silent                  Suppress any log messages.\n" +
                   "  --log-style               Print log messages in log style, complete with\n" +
                   "                            timestamp and log level.\n" +
                   "  --threaded                Apply filters on multiple threads.\n" +
                   "  --no-threaded             Apply filters on a single thread.\n" +
                   "  --version                 Print version information and exit.\n" +
                   "  --help                    Print this help and exit.\n" +
                   "\n" +
                   "Use -- to separate options from filters if input and output are taken from a\n" +
                   "job file.\n" +
                   "\n"
  fmt.Fprint(w, helpText)

  fmt.Fprintln(w, "Filters:")
  for _, h := range filterHelp {
    fmt.Fprintf(w, "  %-24s  %s\n", h.usage, strings.Join(h.text, "\n" + strings.Repeat(" ", 28)))
  }
  fmt.Fprintln(w)
  fmt.Fprintf(w, "Example: %s in.bmp out.bmp -crop 800 600 -gs -blur 0.5\n", os.Args[0])
}

// Descriptions of the available filters.
var filterHelp = []struct {
  usage string
  text  []string
}{
  {"-crop width height", []string{"Crops the image to the given width and height. The upper left",
                                  "part of the image is used."}},
  {"-gs", []string{"Converts the image to shades of gray."}},
  {"-neg", []string{"Converts the image to a negative."}},
  {"-sharp", []string{"Increases the sharpness."}},
  {"-edge threshold", []string{"Detects edges. Pixels above threshold become white, all others",
                               "black. Threshold is a value in range [0.0, 1.0]."}},
  {"-blur sigma", []string{"Applies a Gaussian blur with standard deviation sigma."}},
}
