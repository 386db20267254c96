package domain

// Reasoner names accepted by the "reasoner" configuration setting.
var Reasoners = []string{"HermiT", "ELK", "Pellet", "JFact"}

// InferenceTypes lists the axiom inference types the reasoning step can
// materialize.
var InferenceTypes = []string{
	"subclasses", "equivalent classes", "disjoint classes", "types",
	"subdata properties", "subobject properties", "inverse object properties",
	"property values",
}

// DefaultInferenceTypes is the inference type set used when the configuration
// file does not name one.
var DefaultInferenceTypes = []string{
	"subclasses", "equivalent classes", "types", "subdata properties",
	"subobject properties",
}

// OutputFormats maps accepted ontology serialization format names to
// themselves in canonical spelling.
var OutputFormats = []string{"RDF/XML", "Turtle", "OWL/XML", "Manchester"}

// EntailmentReport is the structured result of a consistency and coherence
// check. An inconsistent or incoherent ontology is a diagnostic result, not
// an error.
type EntailmentReport struct {
	Consistent           bool
	UnsatisfiableClasses []string
}

// InferenceSpec configures a run of the reasoner that materializes inferred
// axioms into an ontology document.
type InferenceSpec struct {
	Types              []string
	Annotate           bool
	PreprocessInverses bool
	ExcludedTypesFile  string
}

// ModuleInfo describes one compiled import module: the module document file
// and its IRI. Filename is empty when the whole source ontology is imported
// directly rather than through an extracted module.
type ModuleInfo struct {
	Filename string
	IRI      string
}

// ImportTerm is one row of an import module terms file: a single entity to
// pull from a source ontology, with its extraction method.
type ImportTerm struct {
	ID              string
	Exclude         bool
	Method          string
	RelatedEntities string
}

// EntityMatch is a single result from an entity search across one or more
// ontologies.
type EntityMatch struct {
	IRI         string
	Labels      []string
	Annotation  string
	Value       string
	FullMatch   bool
	Definitions []string
}
