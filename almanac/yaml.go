package almanac

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DecodeYAML reads an almanac document:
//
//	seeds: [79, 14, 55, 13]
//	stages:
//	  - from: seed
//	    to: soil
//	    rules:
//	      - {destination: 50, source: 98, length: 2}
func DecodeYAML(r io.Reader) (*Almanac, error) {
	var a Almanac
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("invalid YAML almanac: empty document")
		}
		return nil, fmt.Errorf("invalid YAML almanac: %w", err)
	}
	return &a, nil
}

// EncodeYAML writes a as a YAML document.
func EncodeYAML(w io.Writer, a *Almanac) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(a); err != nil {
		return err
	}
	return enc.Close()
}
