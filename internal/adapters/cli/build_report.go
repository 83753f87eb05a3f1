package cli

import (
	"fmt"
	"time"
)

type ExportStep struct {
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Success   bool
	Error     string
}

type ExportReport struct {
	output    *Output
	steps     []ExportStep
	warnings  []string
	files     []string
	startTime time.Time
	outputDir string
	failed    bool
}

func NewExportReport(output *Output, outputDir string) *ExportReport {
	return &ExportReport{
		output:    output,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) StartStep(name string) int {
	r.steps = append(r.steps, ExportStep{Name: name, StartTime: time.Now()})
	return len(r.steps) - 1
}

func (r *ExportReport) EndStep(step int, err error) {
	s := &r.steps[step]
	s.EndTime = time.Now()
	s.Success = err == nil
	if err != nil {
		s.Error = err.Error()
		r.failed = true
	}
}

func (r *ExportReport) AddWarning(msg string) {
	r.warnings = append(r.warnings, msg)
}

func (r *ExportReport) AddFiles(paths ...string) {
	r.files = append(r.files, paths...)
}

func (r *ExportReport) HasFailures() bool {
	return r.failed
}

func (r *ExportReport) Render() {
	o := r.output
	duration := time.Since(r.startTime)

	for _, step := range r.steps {
		if step.Success {
			o.PrintSuccess("%s (%s)", step.Name, formatDuration(step.EndTime.Sub(step.StartTime)))
			continue
		}
		o.PrintError("%s: %s", step.Name, step.Error)
	}

	for _, w := range dedupe(r.warnings) {
		o.PrintWarning("%s", w)
	}

	if len(r.files) > 0 {
		o.PrintStep("%d files written:", len(r.files))
		for _, f := range r.files {
			o.PrintFile(f)
		}
	}

	if r.failed {
		o.PrintError("Export failed after %s", formatDuration(duration))
		return
	}
	o.PrintSuccess("Export complete in %s", formatDuration(duration))
	if r.outputDir != "" {
		o.PrintStep("%s", o.Gray("Output: "+r.outputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}

// dedupe keeps first occurrences in order and annotates repeats.
func dedupe(items []string) []string {
	counts := make(map[string]int, len(items))
	var order []string
	for _, item := range items {
		if counts[item] == 0 {
			order = append(order, item)
		}
		counts[item]++
	}
	out := make([]string, len(order))
	for i, item := range order {
		if n := counts[item]; n > 1 {
			out[i] = fmt.Sprintf("%s (%d occurrences)", item, n)
		} else {
			out[i] = item
		}
	}
	return out
}
