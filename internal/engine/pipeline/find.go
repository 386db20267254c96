package pipeline

import (
	"bufio"
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/ontoforge/ontoforge/internal/core/domain"
	"go.trai.ch/zerr"
)

// FindEntitiesStep searches one or more ontologies for entities matching
// search terms read from a file or stdin, and writes a CSV report to a file
// or stdout. It has no build dependencies and needs no project
// configuration.
type FindEntitiesStep struct {
	deps       Deps
	searchOnts []string
	termsPath  string
	outPath    string
}

// NewFindEntitiesStep returns the entity search step. Empty termsPath and
// outPath select stdin and stdout.
func NewFindEntitiesStep(
	deps Deps, searchOnts []string, termsPath, outPath string,
) (*FindEntitiesStep, error) {
	if termsPath != "" && !isFile(termsPath) {
		return nil, zerr.With(
			zerr.New("the input file of search terms could not be found"), "file", termsPath,
		)
	}
	if len(searchOnts) == 0 {
		return nil, zerr.New("you must specify at least one ontology to search")
	}
	for _, ont := range searchOnts {
		if !isFile(ont) {
			return nil, zerr.With(
				zerr.New("the search ontology could not be found"), "file", ont,
			)
		}
	}
	return &FindEntitiesStep{
		deps:       deps,
		searchOnts: searchOnts,
		termsPath:  termsPath,
		outPath:    outPath,
	}, nil
}

func (s *FindEntitiesStep) Name() string {
	return "entity search"
}

// BuildRequired always reports true: all input is external.
func (s *FindEntitiesStep) BuildRequired() (bool, error) {
	return true, nil
}

func (s *FindEntitiesStep) Build(ctx context.Context) (domain.ProductSet, error) {
	for _, ont := range s.searchOnts {
		s.deps.Logger.Info("Reading source ontology " + ont + "...")
		if err := s.deps.Finder.AddOntology(ctx, ont); err != nil {
			return nil, err
		}
	}

	termsIn := s.deps.Stdin
	if s.termsPath != "" {
		f, err := os.Open(s.termsPath) //nolint:gosec // user-provided search terms file
		if err != nil {
			return nil, zerr.Wrap(err, "failed to open the search terms file")
		}
		defer f.Close() //nolint:errcheck
		termsIn = f
	}

	out := s.deps.Stdout
	if s.outPath != "" {
		s.deps.Logger.Info("Writing search results to " + s.outPath + "...")
		f, err := os.Create(s.outPath)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to create the search results file")
		}
		defer f.Close() //nolint:errcheck
		out = f
	}

	if err := s.writeReport(ctx, termsIn, out); err != nil {
		return nil, err
	}
	return domain.ProductSet{}, nil
}

// writeReport matches each search term and writes one CSV row per matching
// entity.
func (s *FindEntitiesStep) writeReport(ctx context.Context, termsIn io.Reader, out io.Writer) error {
	writer := csv.NewWriter(out)
	header := []string{
		"Search term", "Matching entity", "Label(s)", "Annotation", "Value",
		"Match type", "Definition(s)",
	}
	if err := writer.Write(header); err != nil {
		return zerr.Wrap(err, "failed to write the search report")
	}

	scanner := bufio.NewScanner(termsIn)
	for scanner.Scan() {
		term := strings.TrimSpace(scanner.Text())
		if term == "" {
			continue
		}

		matches, err := s.deps.Finder.Find(ctx, term)
		if err != nil {
			return err
		}
		for _, m := range matches {
			matchType := "Partial"
			if m.FullMatch {
				matchType = "Full"
			}
			record := []string{
				term, m.IRI, strings.Join(m.Labels, ","), m.Annotation, m.Value,
				matchType, strings.Join(m.Definitions, ","),
			}
			if err := writer.Write(record); err != nil {
				return zerr.Wrap(err, "failed to write the search report")
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return zerr.Wrap(err, "failed to read the search terms")
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return zerr.Wrap(err, "failed to write the search report")
	}
	return nil
}

func (s *FindEntitiesStep) NotRequiredMessage() string {
	return "The entity search input is already up to date."
}
