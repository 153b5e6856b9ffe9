// Package codec implements the binary almanac encoding: a stream of
// length-prefixed msgpack frames.
//
// Each frame is a 4-byte big-endian payload length followed by a msgpack map
// carrying a "type" discriminant. A stream holds exactly one header frame
// (seeds and optional traversal order) followed by one frame per stage in
// declaration order, and ends at a clean EOF.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Frame size constants.
const (
	// MaxFrameSize is the maximum frame size (16 MiB), including length prefix.
	MaxFrameSize = 16 * 1024 * 1024
	// MaxPayloadSize is the maximum payload size (MaxFrameSize - 4 bytes).
	MaxPayloadSize = MaxFrameSize - LengthPrefixSize
	// LengthPrefixSize is the size of the length prefix in bytes.
	LengthPrefixSize = 4
)

// Frame type discriminants.
const (
	HeaderType = "almanac"
	StageType  = "stage"
)

// FormatVersion is the stream layout version written into header frames.
const FormatVersion = 1

// FrameErrorKind classifies frame errors.
type FrameErrorKind int

const (
	// FrameErrorPartial indicates a truncated or incomplete frame.
	FrameErrorPartial FrameErrorKind = iota
	// FrameErrorTooLarge indicates a frame exceeding MaxFrameSize.
	FrameErrorTooLarge
	// FrameErrorDecode indicates a msgpack decoding error.
	FrameErrorDecode
	// FrameErrorSequence indicates frames in an invalid order or of an unknown type.
	FrameErrorSequence
	// FrameErrorVersion indicates a header written by an unsupported layout version.
	FrameErrorVersion
)

// FrameError represents a frame encoding or decoding error.
type FrameError struct {
	Kind FrameErrorKind
	Msg  string
	Err  error
}

func (e *FrameError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *FrameError) Unwrap() error {
	return e.Err
}

// IsFrameError reports whether err carries a *FrameError of the given kind.
func IsFrameError(err error, kind FrameErrorKind) bool {
	var frameErr *FrameError
	if errors.As(err, &frameErr) {
		return frameErr.Kind == kind
	}
	return false
}

// FrameDecoder reads length-prefixed frames from a stream.
type FrameDecoder struct {
	reader io.Reader
}

// NewFrameDecoder creates a new frame decoder.
func NewFrameDecoder(r io.Reader) *FrameDecoder {
	return &FrameDecoder{reader: r}
}

// ReadFrame reads a single frame and returns its raw msgpack payload.
//
// Errors:
//   - io.EOF: stream ended cleanly (no more frames)
//   - *FrameError with Kind=FrameErrorPartial: incomplete frame
//   - *FrameError with Kind=FrameErrorTooLarge: frame exceeds limit
func (d *FrameDecoder) ReadFrame() ([]byte, error) {
	var lengthBuf [LengthPrefixSize]byte
	_, err := io.ReadFull(d.reader, lengthBuf[:])
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read length prefix",
			Err:  err,
		}
	}

	payloadSize := binary.BigEndian.Uint32(lengthBuf[:])
	if payloadSize > MaxPayloadSize {
		return nil, &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", payloadSize, MaxPayloadSize),
		}
	}

	payload := make([]byte, payloadSize)
	_, err = io.ReadFull(d.reader, payload)
	if err != nil {
		return nil, &FrameError{
			Kind: FrameErrorPartial,
			Msg:  "failed to read payload",
			Err:  err,
		}
	}

	return payload, nil
}

// FrameEncoder writes length-prefixed frames to a stream.
type FrameEncoder struct {
	writer io.Writer
}

// NewFrameEncoder creates a new frame encoder.
func NewFrameEncoder(w io.Writer) *FrameEncoder {
	return &FrameEncoder{writer: w}
}

// WriteFrame msgpack-encodes v and writes it with its length prefix.
func (e *FrameEncoder) WriteFrame(v any) error {
	payload, err := msgpack.Marshal(v)
	if err != nil {
		return &FrameError{Kind: FrameErrorDecode, Msg: "failed to encode frame", Err: err}
	}
	if len(payload) > MaxPayloadSize {
		return &FrameError{
			Kind: FrameErrorTooLarge,
			Msg:  fmt.Sprintf("payload size %d exceeds maximum %d", len(payload), MaxPayloadSize),
		}
	}

	var lengthBuf [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(lengthBuf[:], uint32(len(payload)))
	if _, err := e.writer.Write(lengthBuf[:]); err != nil {
		return err
	}
	_, err = e.writer.Write(payload)
	return err
}

// frameTypeHeader decodes only the type field of a frame.
type frameTypeHeader struct {
	Type string `msgpack:"type"`
}

// DecodeFrame decodes a payload into a *HeaderFrame or *StageFrame,
// discriminating on the type field.
func DecodeFrame(payload []byte) (any, error) {
	var head frameTypeHeader
	if err := msgpack.Unmarshal(payload, &head); err != nil {
		return nil, &FrameError{
			Kind: FrameErrorDecode,
			Msg:  "failed to decode frame type",
			Err:  err,
		}
	}

	switch head.Type {
	case HeaderType:
		var h HeaderFrame
		if err := msgpack.Unmarshal(payload, &h); err != nil {
			return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode header frame", Err: err}
		}
		return &h, nil
	case StageType:
		var s StageFrame
		if err := msgpack.Unmarshal(payload, &s); err != nil {
			return nil, &FrameError{Kind: FrameErrorDecode, Msg: "failed to decode stage frame", Err: err}
		}
		return &s, nil
	default:
		return nil, &FrameError{
			Kind: FrameErrorSequence,
			Msg:  fmt.Sprintf("unknown frame type %q", head.Type),
		}
	}
}
