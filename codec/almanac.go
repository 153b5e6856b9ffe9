package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/pithecene-io/rangemap/almanac"
	"github.com/pithecene-io/rangemap/remap"
)

// HeaderFrame opens an almanac stream.
type HeaderFrame struct {
	Type    string           `msgpack:"type"`
	Version int              `msgpack:"version"`
	Seeds   []int64          `msgpack:"seeds"`
	Order   []remap.StageKey `msgpack:"order,omitempty"`
}

// StageFrame carries one stage's triples.
type StageFrame struct {
	Type  string           `msgpack:"type"`
	From  string           `msgpack:"from"`
	To    string           `msgpack:"to"`
	Rules []almanac.Triple `msgpack:"rules"`
}

// Encode writes a as a header frame followed by one frame per stage.
func Encode(w io.Writer, a *almanac.Almanac) error {
	enc := NewFrameEncoder(w)

	header := HeaderFrame{
		Type:    HeaderType,
		Version: FormatVersion,
		Seeds:   a.Seeds,
		Order:   a.Order,
	}
	if err := enc.WriteFrame(&header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range a.Stages {
		frame := StageFrame{Type: StageType, From: s.From, To: s.To, Rules: s.Rules}
		if err := enc.WriteFrame(&frame); err != nil {
			return fmt.Errorf("write stage %s: %w", s.Key(), err)
		}
	}
	return nil
}

// Decode reads an almanac stream written by Encode.
func Decode(r io.Reader) (*almanac.Almanac, error) {
	dec := NewFrameDecoder(r)
	var a *almanac.Almanac

	for n := 1; ; n++ {
		payload, err := dec.ReadFrame()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", n, err)
		}

		frame, err := DecodeFrame(payload)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", n, err)
		}

		switch f := frame.(type) {
		case *HeaderFrame:
			if a != nil {
				return nil, &FrameError{Kind: FrameErrorSequence, Msg: fmt.Sprintf("frame %d: repeated header", n)}
			}
			if f.Version != FormatVersion {
				return nil, &FrameError{
					Kind: FrameErrorVersion,
					Msg:  fmt.Sprintf("unsupported almanac layout version %d (want %d)", f.Version, FormatVersion),
				}
			}
			a = &almanac.Almanac{Seeds: f.Seeds, Order: f.Order}
		case *StageFrame:
			if a == nil {
				return nil, &FrameError{Kind: FrameErrorSequence, Msg: fmt.Sprintf("frame %d: stage before header", n)}
			}
			a.Stages = append(a.Stages, almanac.StageSpec{From: f.From, To: f.To, Rules: f.Rules})
		}
	}

	if a == nil {
		return nil, &FrameError{Kind: FrameErrorSequence, Msg: "stream has no header frame"}
	}
	return a, nil
}
