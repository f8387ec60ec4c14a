package seq

import (
	"github.com/goccy/go-json"
)

// MarshalJSON encodes the realized contents as a JSON array. An empty view
// encodes as [] rather than null.
func (s *Seq[T]) MarshalJSON() ([]byte, error) {
	vals, err := s.ToSlice()
	if err != nil {
		return nil, err
	}
	return json.Marshal(vals)
}

// MarshalYAML implements yaml.Marshaler by handing the realized contents
// to the encoder.
func (s *Seq[T]) MarshalYAML() (interface{}, error) {
	return s.ToSlice()
}
