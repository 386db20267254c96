package project

// configTemplate is the starting ontology.yaml for a new project. The
// placeholders ONTFILE and ONTNAME are replaced with the new ontology's file
// name and stem.
const configTemplate = `# Ontology project configuration.

ontology:
  # The compiled ontology document.
  file: ontology/ONTFILE
  # Term description tables compiled into the ontology.
  entity_source_files:
    - "ONTNAME_*.csv"
    - "ONTNAME_*.xlsx"

build:
  dir: build

imports:
  src_dir: src/imports
  dir: imports

reasoning:
  reasoner: HermiT

iris:
  # Base IRI used for compiled documents during development. Defaults to a
  # file IRI for the project directory when unset.
  #dev_base: https://example.org/ONTNAME
  # Base IRI used for released documents.
  #release_base: https://example.org/ONTNAME

output:
  format: RDF/XML
`

// topImportsTemplate is the starting top-level imports file.
const topImportsTemplate = `Entities file,IRI,Ignore
bfo_ONTNAME_entities.csv,http://purl.obolibrary.org/obo/bfo.owl,
`

// importTermsTemplate is a starting import terms file pulling a few Basic
// Formal Ontology classes.
const importTermsTemplate = `ID,Exclude,Method,Related entities
BFO:0000001,,Locality,
BFO:0000002,,Locality,
BFO:0000003,,Locality,
`

// classesTemplate is a starting class terms file.
const classesTemplate = `Type,ID,Label,Text definition,Parent
class,ONTNAME:0000001,sample class,A short definition of the sample class.,BFO:0000002
`

// propertiesTemplate is a starting property terms file.
const propertiesTemplate = `Type,ID,Label,Text definition,Parent
object property,ONTNAME:0000100,sample property,A short definition of the sample property.,
`

// individualsTemplate is a starting individuals terms file.
const individualsTemplate = `Type,ID,Label,Instance of
individual,ONTNAME:0000200,sample individual,ONTNAME:0000001
`

// baseOntologyTemplate is the starting base ontology document.
const baseOntologyTemplate = `<?xml version="1.0"?>
<rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#"
         xmlns:rdfs="http://www.w3.org/2000/01/rdf-schema#"
         xmlns:owl="http://www.w3.org/2002/07/owl#">
    <owl:Ontology rdf:about="https://example.org/ONTNAME/ONTNAME-base.owl"/>
</rdf:RDF>
`
