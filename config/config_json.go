package config
// Parse functionality for JSON structures.

import (
  "encoding/json"
  "fmt"
  "strings"

  "github.com/InfinityTools/bmpfilter/pipeline"
)

// Used internally by json.Unmarshal to store a filter parameter. Both strings and numbers are accepted.
type JsonParam string

// Used internally by json.Unmarshal to store filter definitions.
type JsonFilter struct {
  Name          string        `json:"name"`
  Params        []JsonParam   `json:"params"`
}

// Used internally by json.Unmarshal to store job data from JSON scripts.
type JsonJob struct {
  Input         string        `json:"input"`
  Output        string        `json:"output"`
  Filters       []JsonFilter  `json:"filters"`
}

// UnmarshalJSON stores strings verbatim and numbers in their literal notation.
func (p *JsonParam) UnmarshalJSON(data []byte) error {
  var s string
  if err := json.Unmarshal(data, &s); err == nil {
    *p = JsonParam(s)
    return nil
  }
  var n json.Number
  if err := json.Unmarshal(data, &n); err != nil {
    return fmt.Errorf("filter parameter must be a string or number: %s", strings.TrimSpace(string(data)))
  }
  *p = JsonParam(n.String())
  return nil
}


// Used internally. Parses JSON source into a job.
func importJson(buffer []byte) (*pipeline.Job, error) {
  jsonJob := JsonJob{}
  if err := json.Unmarshal(buffer, &jsonJob); err != nil { return nil, err }
  return processJobJson(&jsonJob), nil
}

// Used internally. Converts parsed JSON input into a job.
func processJobJson(input *JsonJob) *pipeline.Job {
  job := pipeline.Job{
    Input: strings.TrimSpace(input.Input),
    Output: strings.TrimSpace(input.Output),
  }
  for _, filter := range input.Filters {
    params := make([]string, len(filter.Params))
    for idx, param := range filter.Params {
      params[idx] = string(param)
    }
    job.Filters = append(job.Filters, newFilterSpec(filter.Name, params))
  }
  return &job
}
