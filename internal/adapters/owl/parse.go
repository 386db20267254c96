package owl

import (
	"encoding/xml"
	"io"

	"go.trai.ch/zerr"
)

// owlNamespace is the namespace of OWL vocabulary elements in RDF/XML
// documents.
const owlNamespace = "http://www.w3.org/2002/07/owl#"

// rdfNamespace is the RDF syntax namespace.
const rdfNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// scanImports extracts the direct import IRIs from an RDF/XML ontology
// document. Only owl:imports elements directly below the owl:Ontology header
// are considered.
func scanImports(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var imports []string
	depth := 0
	ontologyDepth := -1
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return imports, nil
		}
		if err != nil {
			return nil, zerr.Wrap(err, "failed to parse ontology document")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if t.Name.Space == owlNamespace && t.Name.Local == "Ontology" && ontologyDepth == -1 {
				ontologyDepth = depth
				continue
			}
			if ontologyDepth == -1 || depth != ontologyDepth+1 {
				continue
			}
			if t.Name.Space == owlNamespace && t.Name.Local == "imports" {
				for _, attr := range t.Attr {
					if attr.Name.Space == rdfNamespace && attr.Name.Local == "resource" {
						imports = append(imports, attr.Value)
					}
				}
			}
		case xml.EndElement:
			// The first ontology header is the document's own; anything
			// after it is axiom content.
			if depth == ontologyDepth {
				return imports, nil
			}
			depth--
		}
	}
}
