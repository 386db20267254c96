package domain

import "go.trai.ch/zerr"

// ProductSet maps product names to the values a build target's run step
// produced. Product sets are merged across the dependency graph; a key may be
// contributed by exactly one target.
type ProductSet map[string]any

// Merge copies all entries of other into p. A key already present in p is a
// build-definition error, even if the values are equal; the error names the
// target that contributed the duplicate key.
func (p ProductSet) Merge(other ProductSet, producer string) error {
	for key, value := range other {
		if _, exists := p[key]; exists {
			err := zerr.Wrap(ErrProductConflict, "a build product key was contributed twice")
			err = zerr.With(err, "key", key)
			return zerr.With(err, "produced_by", producer)
		}
		p[key] = value
	}
	return nil
}
