package config
// Parse functionality for XML structures.

import (
  "encoding/xml"
  "strings"

  "github.com/InfinityTools/bmpfilter/pipeline"
)

// Used internally by xml.Unmarshal to store filter definitions.
type XmlFilter struct {
  Name          string        `xml:"name,attr"`
  Params        []string      `xml:"param"`
}

// Used internally by xml.Unmarshal to store job data from XML scripts.
type XmlJob struct {
  XMLName       xml.Name      `xml:"job"`
  Input         string        `xml:"input"`
  Output        string        `xml:"output"`
  Filters       []XmlFilter   `xml:"filters>filter"`
}


// Used internally. Parses XML source into a job.
func importXml(buffer []byte) (*pipeline.Job, error) {
  xmlJob := XmlJob{}
  if err := xml.Unmarshal(buffer, &xmlJob); err != nil { return nil, err }
  return processJobXml(&xmlJob), nil
}

// Used internally. Converts parsed XML input into a job.
func processJobXml(input *XmlJob) *pipeline.Job {
  job := pipeline.Job{
    Input: strings.TrimSpace(input.Input),
    Output: strings.TrimSpace(input.Output),
  }
  for _, filter := range input.Filters {
    job.Filters = append(job.Filters, newFilterSpec(filter.Name, filter.Params))
  }
  return &job
}
