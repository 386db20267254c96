package ports

// ProjectScaffolder initializes the folder structure and starting files for
// a new ontology development project.
//
//go:generate go run go.uber.org/mock/mockgen -source=project.go -destination=mocks/mock_project.go -package=mocks
type ProjectScaffolder interface {
	// Create initializes a new project in targetDir for an ontology document
	// named ontFileName.
	Create(targetDir, ontFileName string) error
}
