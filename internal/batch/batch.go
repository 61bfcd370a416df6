// Package batch decodes and executes a file of bulk conversion jobs, the
// engine behind quantctl's "batch" subcommand.
package batch

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"

	"github.com/halvorsen/quant"
)

// Job is a single requested conversion: take Magnitude expressed in
// From, and report it in To.
type Job struct {
	Magnitude float64 `yaml:"magnitude"`
	From      string  `yaml:"from"`
	To        string  `yaml:"to"`
}

// File is the top-level shape of a batch YAML document.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Result is one job's outcome: either Value is set, or Err describes why
// the job could not be completed.
type Result struct {
	Job   Job
	Value float64
	Err   error
}

// Decode parses a YAML batch file from r.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("batch: reading input: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("batch: decoding yaml: %w", err)
	}
	return &f, nil
}

// Run executes every job in f independently; a failure in one job never
// aborts the rest.
func Run(f *File) []Result {
	results := make([]Result, len(f.Jobs))
	for i, job := range f.Jobs {
		results[i] = runJob(job)
	}
	return results
}

func runJob(job Job) Result {
	q, err := quant.New(job.Magnitude, job.From)
	if err != nil {
		return Result{Job: job, Err: fmt.Errorf("parsing %q: %w", job.From, err)}
	}
	value, err := q.Convert(job.To)
	if err != nil {
		return Result{Job: job, Err: fmt.Errorf("converting to %q: %w", job.To, err)}
	}
	return Result{Job: job, Value: value}
}
