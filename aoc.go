// Package aoc runs Advent of Code solvers: it checks each part against the
// sample in its doc comment, then solves the real input.
package aoc

import (
	"bufio"
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"os"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/types/logger"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		return sample{want: m[1], input: m[2]}, true
	}
	return sample{}, false
}

// extractSamples collects the samples of every function documented with a
// want= comment in the non-test Go files of src. A sample without input
// reuses the one before it.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var lastInput string
	samples := make(map[string]sample)
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		data, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, data, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is embedded by solvers. The harness fills it in before each part.
type Puzzle struct {
	SampleMode bool

	// Logf receives Debugf output.
	Logf logger.Logf

	solver  partSolver
	samples map[string]sample
	input   []byte
}

// NewPuzzle returns a Puzzle whose Input is input, to exercise solvers
// outside of Run.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{input: []byte(input)}
}

// Input returns the sample input in sample mode, the puzzle input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	return p.input
}

// maxLine is the longest line Scanner accepts.
const maxLine = 1 << 20

func (p *Puzzle) Scanner() *bufio.Scanner {
	s := bufio.NewScanner(bytes.NewReader(p.Input()))
	s.Buffer(nil, maxLine)
	return s
}

// ForLinesY calls onLine for each line of input along with its row
// number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf logs when running with --debug against the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.Logf != nil {
		p.Logf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

func (d day) hasPart(part string) bool {
	return slices.ContainsFunc(d.parts, func(ps partSolver) bool {
		return ps.Part == part
	})
}

type partSolver struct {
	Part string
	Name string
}

var (
	methodRx   = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	partType   = reflect.TypeOf((func() any)(nil))
	puzzleType = reflect.TypeOf((*Puzzle)(nil))
)

// extractMethods finds the methods of x named D{day}p{part}. They must
// have the signature func() any; others are reported as errors.
func extractMethods(x any) (map[int]day, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	if f, ok := v.Elem().Type().FieldByName("Puzzle"); !ok || f.Type != puzzleType {
		return nil, fmt.Errorf("solver: %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := methodRx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		if mt := v.Method(i).Type(); mt != partType {
			return nil, fmt.Errorf("solver: %s has type %v; want func() any", mn, mt)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// runOptions mirror the command line flags.
type runOptions struct {
	part       string
	debug      bool
	onlySample bool
	skipSample bool
	inputPath  string
}

type runner struct {
	year    int
	slvr    any
	days    map[int]day
	samples map[string]sample
	cfg     *Config
	out     io.Writer
}

func newRunner(year int, src fs.FS, slvr any) (*runner, error) {
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	return &runner{
		year:    year,
		slvr:    slvr,
		days:    days,
		samples: samples,
		out:     os.Stdout,
	}, nil
}

func (r *runner) dayNums() []int {
	nums := maps.Keys(r.days)
	slices.Sort(nums)
	return nums
}

func (r *runner) loadInput(d int, o runOptions) ([]byte, error) {
	if o.inputPath != "" {
		b, err := os.ReadFile(o.inputPath)
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}
		return b, nil
	}
	return r.cfg.fileOrFetch(
		fmt.Sprintf("%d/%d.input", r.year, d),
		fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(r.cfg.BaseURL, "/"), r.year, d),
	)
}

func (r *runner) runDay(d day, o runOptions) error {
	if o.part != "" && !d.hasPart(o.part) {
		return fmt.Errorf("no part %s for day %d", o.part, d.day)
	}
	p := &Puzzle{samples: r.samples}
	fmt.Fprintln(r.out, "Running day", d.day)
	sr := reflect.ValueOf(r.slvr)
	sr.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	for _, ps := range d.parts {
		if o.part != "" && ps.Part != o.part {
			continue
		}
		p.solver = ps
		fn := sr.MethodByName(ps.Name).Interface().(func() any)

		for _, sm := range []bool{true, false} {
			if !sm && o.onlySample {
				continue
			} else if sm && o.skipSample {
				continue
			}
			if _, ok := r.samples[ps.Name]; sm && !ok {
				continue
			}
			p.SampleMode = sm
			p.Logf = logger.Discard
			if sm && o.debug {
				p.Logf = logger.WithPrefix(func(format string, args ...any) {
					fmt.Fprintf(r.out, format+"\n", args...)
				}, fmt.Sprintf("day %d part %s: ", d.day, ps.Part))
			}
			if !sm && p.input == nil {
				in, err := r.loadInput(d.day, o)
				if err != nil {
					return fmt.Errorf("day %d: %w", d.day, err)
				}
				p.input = in
			}
			t0 := time.Now()
			got := fn()
			if sm {
				want := p.Sample().want
				if fmt.Sprint(got) != want {
					fmt.Fprintf(r.out, "part %s: %v ❌; want %v\n", ps.Part, got, want)
					return fmt.Errorf("day %d part %s: sample got %v; want %v", d.day, ps.Part, got, want)
				}
				fmt.Fprintf(r.out, "part %s sample: %v ✅ (%v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			} else {
				fmt.Fprintf(r.out, "part %s: %v (took %v)\n", ps.Part, got, time.Since(t0).Round(time.Microsecond))
			}
		}
	}
	return nil
}

// Run runs the solvers of slvr for the given year from the command line.
// slvr must be a pointer to a struct embedding *Puzzle with methods named
// D{day}p{part}. src holds the solver sources, read for samples.
func Run(year int, src fs.FS, slvr any) {
	r, err := newRunner(year, src, slvr)
	if err == nil {
		err = r.command().Execute()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// MustDo panics if err is non-nil.
func MustDo(err error) {
	if err != nil {
		panic(err)
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
