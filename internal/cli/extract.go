package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/javapkg/builddep/pkg/artifact"
	"github.com/javapkg/builddep/pkg/builddep"
	"github.com/javapkg/builddep/pkg/errors"
	"github.com/javapkg/builddep/pkg/pom"
	"github.com/javapkg/builddep/pkg/render/nodelink"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var extractFormats = []string{formatText, formatJSON, formatDOT, formatSVG}

// defaultDescriptor is read when no descriptor is given.
const defaultDescriptor = "pom.xml"

// extractOpts holds the command-line flags for the extract command.
type extractOpts struct {
	format   string // output format
	output   string // output file path (stdout if empty)
	sorted   bool   // sort artifacts instead of keeping extraction order
	detailed bool   // multi-line node labels in dot/svg output
}

// extraction is the outcome for one descriptor.
type extraction struct {
	path    string
	project *pom.Project
	result  *builddep.Result
}

// report is the JSON form of an extraction run.
type report struct {
	Projects  []string            `json:"projects"`
	Artifacts []artifact.Artifact `json:"artifacts"`
}

func (c *CLI) extractCommand() *cobra.Command {
	opts := extractOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "extract [pom.xml...]",
		Short: "Extract build dependencies from project descriptors",
		Long: `Extract the build dependencies of one or more Maven project descriptors.

Descriptors are read concurrently. When several are given (a multi-module
build), their dependencies are merged in argument order.

Examples:
  builddep extract                              # ./pom.xml
  builddep extract app/pom.xml lib/pom.xml      # merged result
  builddep extract --format json --sorted
  builddep extract --format svg -o deps.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{defaultDescriptor}
			}
			return c.runExtract(cmd.Context(), cmd.OutOrStdout(), args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: "+strings.Join(extractFormats, ", "))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.sorted, "sorted", false, "sort artifacts by coordinate")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show extension, classifier and version on separate lines (dot, svg)")

	return cmd
}

func (c *CLI) runExtract(ctx context.Context, stdout io.Writer, paths []string, opts extractOpts) error {
	if err := errors.ValidateFormat(opts.format, extractFormats...); err != nil {
		return err
	}

	x, _, err := c.newExtractor()
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	runs, err := extractFiles(ctx, x, paths)
	if err != nil {
		return err
	}

	total := builddep.NewResult()
	for _, r := range runs {
		total.Merge(r.result)
	}

	data, err := renderExtraction(ctx, runs, total, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	if total.Len() == 0 {
		printWarning(stdout, "No build dependencies found")
	} else {
		printSuccess(stdout, "Extracted build dependencies")
	}
	printStats(stdout, len(runs), total.Len())
	printFile(stdout, opts.output)
	prog.done(fmt.Sprintf("Extracted %d build dependencies", total.Len()))
	return nil
}

// extractFiles parses and extracts each descriptor concurrently.
// Results keep the order of paths.
func extractFiles(ctx context.Context, x *builddep.Extractor, paths []string) ([]extraction, error) {
	logger := loggerFromContext(ctx)
	runs := make([]extraction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := pom.ParseFile(path)
			if err != nil {
				return err
			}
			res := builddep.NewResult()
			x.Extract(p, res)
			logger.Debug("extracted", "path", path, "project", p.Coordinate(), "artifacts", res.Len())
			runs[i] = extraction{path: path, project: p, result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return runs, nil
}

func renderExtraction(ctx context.Context, runs []extraction, total *builddep.Result, opts extractOpts) ([]byte, error) {
	switch opts.format {
	case formatJSON:
		rep := report{Projects: make([]string, len(runs)), Artifacts: artifactsOf(total, opts.sorted)}
		for i, r := range runs {
			rep.Projects[i] = r.project.Coordinate().String()
		}
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode report")
		}
		return append(data, '\n'), nil

	case formatDOT, formatSVG:
		graphs := make([]nodelink.Graph, len(runs))
		for i, r := range runs {
			graphs[i] = nodelink.Graph{Project: r.project.Coordinate(), Deps: artifactsOf(r.result, opts.sorted)}
		}
		dot := nodelink.ToDOT(graphs, nodelink.Options{Detailed: opts.detailed})
		if opts.format == formatDOT {
			return []byte(dot), nil
		}
		return nodelink.RenderSVG(ctx, dot)

	default:
		var b strings.Builder
		for _, a := range artifactsOf(total, opts.sorted) {
			b.WriteString(a.String())
			b.WriteByte('\n')
		}
		return []byte(b.String()), nil
	}
}

// artifactsOf returns the result's artifacts, never nil.
func artifactsOf(r *builddep.Result, sorted bool) []artifact.Artifact {
	arts := r.Artifacts()
	if sorted {
		arts = r.Sorted()
	}
	if arts == nil {
		arts = []artifact.Artifact{}
	}
	return arts
}
