// internal/batch/manifest.go
package batch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"seqedit/core/edit"
	"seqedit/internal/opspec"
)

// ErrManifest wraps every manifest validation problem.
var ErrManifest = errors.New("invalid manifest")

// Manifest is the on-disk batch description.
type Manifest struct {
	// LineWidth overrides the configured FASTA line width for every job.
	LineWidth *int      `yaml:"line_width,omitempty"`
	Jobs      []JobSpec `yaml:"jobs"`
}

// JobSpec is one manifest entry. Exactly one of Op or Ops must be set.
type JobSpec struct {
	ID     string   `yaml:"id,omitempty"`
	Input  string   `yaml:"input"`
	Output string   `yaml:"output,omitempty"`
	Op     string   `yaml:"op,omitempty"`
	Ops    []string `yaml:"ops,omitempty"`
}

// Job is a validated, ready-to-run JobSpec.
type Job struct {
	Index  int // position in the manifest
	ID     string
	Input  string
	Output string
	Ops    []edit.Operation
}

// OpStrings renders the job's operations in command-line form.
func (j Job) OpStrings() []string {
	out := make([]string, len(j.Ops))
	for i, op := range j.Ops {
		out[i] = op.String()
	}
	return out
}

// Kinds lists the variant of each of the job's operations.
func (j Job) Kinds() []string {
	out := make([]string, len(j.Ops))
	for i, op := range j.Ops {
		out[i] = string(op.Kind())
	}
	return out
}

// LoadManifest reads and decodes a manifest file. Unknown keys are rejected.
func LoadManifest(path string) (Manifest, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Manifest{}, err
	}
	defer fh.Close()
	m, err := DecodeManifest(fh)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DecodeManifest decodes a YAML manifest from r.
func DecodeManifest(r io.Reader) (Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Manifest{}, fmt.Errorf("%w: empty manifest", ErrManifest)
		}
		return Manifest{}, fmt.Errorf("%w: %v", ErrManifest, err)
	}
	return m, nil
}

// Resolve validates every entry and returns runnable jobs. Relative paths are
// resolved against baseDir. All problems are reported together.
func (m Manifest) Resolve(baseDir string) ([]Job, error) {
	var problems []error
	if len(m.Jobs) == 0 {
		problems = append(problems, errors.New("no jobs"))
	}
	if m.LineWidth != nil && *m.LineWidth < 0 {
		problems = append(problems, errors.New("line_width must be ≥ 0"))
	}

	jobs := make([]Job, 0, len(m.Jobs))
	ids := make(map[string]int, len(m.Jobs))
	outputs := make(map[string]int, len(m.Jobs))
	for i, spec := range m.Jobs {
		label := fmt.Sprintf("job %d", i+1)
		if spec.ID != "" {
			label = fmt.Sprintf("job %d (%s)", i+1, spec.ID)
		}
		job, err := resolveJob(i, spec, baseDir)
		if err != nil {
			problems = append(problems, fmt.Errorf("%s: %w", label, err))
			continue
		}
		if prev, dup := ids[job.ID]; dup {
			problems = append(problems, fmt.Errorf("%s: duplicate id %q (also job %d)", label, job.ID, prev+1))
			continue
		}
		if prev, dup := outputs[job.Output]; dup {
			problems = append(problems, fmt.Errorf("%s: output %s already written by job %d", label, job.Output, prev+1))
			continue
		}
		ids[job.ID] = i
		outputs[job.Output] = i
		jobs = append(jobs, job)
	}

	// Jobs run concurrently, so no job may read a file another job writes.
	inputs := make(map[string]int, len(jobs))
	for _, j := range jobs {
		if _, seen := inputs[j.Input]; !seen {
			inputs[j.Input] = j.Index
		}
	}
	for _, j := range jobs {
		if reader, clash := inputs[j.Output]; clash && reader != j.Index {
			problems = append(problems, fmt.Errorf("job %d (%s): output %s is the input of job %d",
				j.Index+1, j.ID, j.Output, reader+1))
		}
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%w:\n%w", ErrManifest, errors.Join(problems...))
	}
	return jobs, nil
}

func resolveJob(i int, spec JobSpec, baseDir string) (Job, error) {
	if strings.TrimSpace(spec.Input) == "" {
		return Job{}, errors.New("missing input")
	}
	if spec.Input == "-" {
		return Job{}, errors.New("stdin input is not supported in batch mode")
	}
	lines := spec.Ops
	switch {
	case spec.Op != "" && len(spec.Ops) > 0:
		return Job{}, errors.New("op conflicts with ops")
	case spec.Op != "":
		lines = []string{spec.Op}
	case len(spec.Ops) == 0:
		return Job{}, errors.New("missing op")
	}

	ops := make([]edit.Operation, 0, len(lines))
	for _, line := range lines {
		op, err := opspec.ParseLine(line)
		if err != nil {
			return Job{}, fmt.Errorf("op %q: %w", line, err)
		}
		ops = append(ops, op)
	}

	id := spec.ID
	if id == "" {
		id = uuid.New().String()
	}
	input := resolvePath(baseDir, spec.Input)
	output := spec.Output
	if output == "" {
		output = DefaultOutputPath(input, id)
	} else {
		output = resolvePath(baseDir, output)
	}
	if output == input {
		return Job{}, errors.New("output would overwrite input")
	}
	return Job{Index: i, ID: id, Input: input, Output: output, Ops: ops}, nil
}

func resolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) || baseDir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(baseDir, p)
}

// DefaultOutputPath places the result next to input as "<stem>.<id>.fa",
// keeping a ".gz" suffix when the input has one.
func DefaultOutputPath(input, id string) string {
	dir, base := filepath.Split(input)
	gz := strings.HasSuffix(base, ".gz")
	base = strings.TrimSuffix(base, ".gz")
	for _, ext := range []string{".fasta", ".fna", ".fa"} {
		if strings.HasSuffix(base, ext) {
			base = strings.TrimSuffix(base, ext)
			break
		}
	}
	name := base + "." + id + ".fa"
	if gz {
		name += ".gz"
	}
	return filepath.Join(dir, name)
}
