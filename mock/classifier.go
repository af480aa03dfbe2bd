package mock

import "github.com/fwojciec/doctidy"

var _ doctidy.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of doctidy.Classifier.
type Classifier struct {
	ClassifyFn func(stem string) string
}

func (c *Classifier) Classify(stem string) string {
	return c.ClassifyFn(stem)
}
