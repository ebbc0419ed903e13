// Package scoring provides functionality to score feature vectors against a trained ranking model.
package scoring

import "fmt"

// DimensionMismatchError signals that a model's weight count does not match
// the length of the feature vector being scored. A misaligned dot product
// would silently pair weights with the wrong features.
type DimensionMismatchError struct {
	WeightCount  int
	FeatureCount int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: model has %d weights but feature vector has %d entries", e.WeightCount, e.FeatureCount)
}
