// Package shape holds plain geometric value objects and the JSON helpers
// used to move them between text and typed form.
package shape

import (
	"encoding/json"
	"fmt"
)

// Rectangle is an immutable width/height pair. Values are not validated -
// non-negative dimensions are a convention, not a contract.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle creates a rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area computes width * height at call time, it is never cached.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}

// Marshal encodes any record to its canonical JSON text. Field order and
// the treatment of non-plain values follow the stock encoder.
func Marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to encode value: %w", err)
	}
	return string(data), nil
}

// Unmarshal parses JSON text into a value of type T. Since behavior in Go
// travels with the type, decoding into T is what attaches the type's method
// set to the parsed data - fields the text does not mention stay at their
// zero values and only show up when a method touches them.
func Unmarshal[T any](text string) (*T, error) {
	v := new(T)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		return nil, fmt.Errorf("unable to decode value: %w", err)
	}
	return v, nil
}
