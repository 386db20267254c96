// Package project creates the folder structure and starting files for a new
// ontology development project.
package project

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ontoforge/ontoforge/internal/adapters/config"
	"github.com/ontoforge/ontoforge/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scaffolder initializes new ontology projects.
type Scaffolder struct {
	logger ports.Logger
}

// NewScaffolder creates a project scaffolder.
func NewScaffolder(logger ports.Logger) *Scaffolder {
	return &Scaffolder{logger: logger}
}

// Create initializes a new ontology project in targetDir for an ontology
// document named ontFileName: the configuration file, the folder structure
// and starting source files.
func (s *Scaffolder) Create(targetDir, ontFileName string) error {
	info, err := os.Stat(targetDir)
	if err != nil || !info.IsDir() {
		return zerr.With(
			zerr.New("the target directory for the new project could not be found"),
			"dir", targetDir,
		)
	}

	s.logger.Info("Creating custom project configuration file...")
	proj, err := s.writeConfig(targetDir, ontFileName)
	if err != nil {
		return err
	}

	s.logger.Info("Generating project folder structure...")
	if err := s.createDirs(proj); err != nil {
		return err
	}

	s.logger.Info("Creating initial source files...")
	return s.createSourceFiles(proj)
}

// writeConfig renders the configuration template into the target directory
// and loads it back.
func (s *Scaffolder) writeConfig(targetDir, ontFileName string) (*config.Project, error) {
	confPath := filepath.Join(targetDir, config.DefaultFileName)
	if _, err := os.Stat(confPath); err == nil {
		return nil, zerr.With(
			zerr.New(
				"a project configuration file already exists in the target directory; "+
					"move, delete, or rename it before initializing a new project",
			),
			"file", confPath,
		)
	}

	ontName := strings.TrimSuffix(ontFileName, filepath.Ext(ontFileName))
	content := renderTemplate(configTemplate, ontName)
	content = strings.ReplaceAll(content, "ONTFILE", ontFileName)
	if err := os.WriteFile(confPath, []byte(content), 0o644); err != nil {
		return nil, zerr.Wrap(err, "failed to create the project configuration file")
	}

	return config.Load(confPath)
}

// createDirs creates the project folder structure derived from the new
// configuration.
func (s *Scaffolder) createDirs(proj *config.Project) error {
	ontPath, err := proj.OntologyFilePath()
	if err != nil {
		return err
	}
	basePath, err := proj.BaseOntologyPath()
	if err != nil {
		return err
	}

	dirs := []string{
		proj.EntitySourceDir(),
		proj.ImportsSrcDir(),
		filepath.Dir(ontPath),
		filepath.Dir(basePath),
		proj.ImportsDir(),
	}
	for _, dir := range dirs {
		info, err := os.Stat(dir)
		if err == nil && !info.IsDir() {
			return zerr.With(
				zerr.New("the path already exists but is not a directory"), "path", dir,
			)
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return zerr.Wrap(err, "failed to create a project directory")
		}
	}
	return nil
}

// createSourceFiles writes the starting term tables, the top-level imports
// file and the base ontology document.
func (s *Scaffolder) createSourceFiles(proj *config.Project) error {
	ontName, err := proj.OntFileBase()
	if err != nil {
		return err
	}
	basePath, err := proj.BaseOntologyPath()
	if err != nil {
		return err
	}

	files := []struct {
		path     string
		template string
	}{
		{proj.TopImportsFilePath(), topImportsTemplate},
		{
			filepath.Join(proj.ImportsSrcDir(), "bfo_"+ontName+"_entities.csv"),
			importTermsTemplate,
		},
		{filepath.Join(proj.EntitySourceDir(), ontName+"_classes.csv"), classesTemplate},
		{filepath.Join(proj.EntitySourceDir(), ontName+"_properties.csv"), propertiesTemplate},
		{filepath.Join(proj.EntitySourceDir(), ontName+"_individuals.csv"), individualsTemplate},
		{basePath, baseOntologyTemplate},
	}
	for _, f := range files {
		content := renderTemplate(f.template, ontName)
		if err := os.WriteFile(f.path, []byte(content), 0o644); err != nil {
			return zerr.With(
				zerr.Wrap(err, "failed to create a project source file"), "file", f.path,
			)
		}
	}
	return nil
}

// renderTemplate substitutes the project name into a starting file template.
func renderTemplate(tmpl, ontName string) string {
	return strings.ReplaceAll(tmpl, "ONTNAME", ontName)
}
