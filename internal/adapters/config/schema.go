package config

// projectFile represents the structure of the ontology.yaml project
// configuration file.
type projectFile struct {
	Ontology  ontologyDTO  `yaml:"ontology"`
	Build     buildDTO     `yaml:"build"`
	Imports   importsDTO   `yaml:"imports"`
	Reasoning reasoningDTO `yaml:"reasoning"`
	IRIs      irisDTO      `yaml:"iris"`
	Output    outputDTO    `yaml:"output"`
}

type ontologyDTO struct {
	File              string   `yaml:"file"`
	BaseFile          string   `yaml:"base_file"`
	EntitySourceDir   string   `yaml:"entity_source_dir"`
	EntitySourceFiles []string `yaml:"entity_source_files"`
	ExpandEntityDefs  *bool    `yaml:"expand_entity_defs"`
}

type buildDTO struct {
	Dir      string `yaml:"dir"`
	InSource bool   `yaml:"insource_builds"`
}

type importsDTO struct {
	SrcDir       string `yaml:"src_dir"`
	Dir          string `yaml:"dir"`
	TopFile      string `yaml:"top_file"`
	ModuleSuffix string `yaml:"module_suffix"`
}

type reasoningDTO struct {
	Reasoner           string   `yaml:"reasoner"`
	InferenceTypes     []string `yaml:"inference_types"`
	AnnotateInferred   bool     `yaml:"annotate_inferred"`
	PreprocessInverses bool     `yaml:"preprocess_inverses"`
	ExcludedTypesFile  string   `yaml:"excluded_types_file"`
	AnnotateMerged     *bool    `yaml:"annotate_merged"`
}

type irisDTO struct {
	DevBase         string `yaml:"dev_base"`
	ReleaseBase     string `yaml:"release_base"`
	ReleaseOntology string `yaml:"release_ontology"`
}

type outputDTO struct {
	Format string `yaml:"format"`
}
