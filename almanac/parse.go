package almanac

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/pithecene-io/rangemap/remap"
)

const (
	seedsPrefix  = "seeds:"
	headerSuffix = " map:"
	keySeparator = "-to-"
)

// ParseErrorKind classifies text parse failures.
type ParseErrorKind int

const (
	// ParseErrorSyntax indicates a line that does not fit the grammar.
	ParseErrorSyntax ParseErrorKind = iota
	// ParseErrorNumber indicates a token that is not a valid integer.
	ParseErrorNumber
	// ParseErrorStructure indicates a well-formed line in the wrong place,
	// such as a triple before any header or a repeated header.
	ParseErrorStructure
)

// ParseError reports a failure at a specific input line.
type ParseError struct {
	Kind ParseErrorKind
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("line %d: %s: %v", e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err carries a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// Parse reads the text almanac format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
// Blank lines are ignored. Each header opens a stage; every following line of
// three integers adds a (destination, source, length) triple to it.
func Parse(r io.Reader) (*Almanac, error) {
	a := &Almanac{}
	seen := make(map[remap.StageKey]bool)
	sawSeeds := false
	current := -1

	s := bufio.NewScanner(r)
	s.Buffer(nil, 1024*1024)
	line := 0
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" {
			continue
		}

		switch {
		case strings.HasPrefix(text, seedsPrefix):
			if sawSeeds {
				return nil, &ParseError{Kind: ParseErrorStructure, Line: line, Msg: "repeated seeds line"}
			}
			seeds, err := parseNumbers(strings.TrimPrefix(text, seedsPrefix), line)
			if err != nil {
				return nil, err
			}
			a.Seeds = seeds
			sawSeeds = true

		case strings.HasSuffix(text, headerSuffix):
			if !sawSeeds {
				return nil, &ParseError{Kind: ParseErrorStructure, Line: line, Msg: "stage header before seeds line"}
			}
			key, err := ParseStageKey(strings.TrimSuffix(text, headerSuffix))
			if err != nil {
				return nil, &ParseError{Kind: ParseErrorSyntax, Line: line, Msg: "invalid stage header", Err: err}
			}
			if seen[key] {
				return nil, &ParseError{Kind: ParseErrorStructure, Line: line, Msg: fmt.Sprintf("repeated stage %s", key)}
			}
			seen[key] = true
			a.Stages = append(a.Stages, StageSpec{From: key.From, To: key.To})
			current = len(a.Stages) - 1

		default:
			if current < 0 {
				return nil, &ParseError{Kind: ParseErrorStructure, Line: line, Msg: "mapping line outside a stage"}
			}
			nums, err := parseNumbers(text, line)
			if err != nil {
				return nil, err
			}
			if len(nums) != 3 {
				return nil, &ParseError{
					Kind: ParseErrorSyntax,
					Line: line,
					Msg:  fmt.Sprintf("mapping line needs 3 numbers, got %d", len(nums)),
				}
			}
			st := &a.Stages[current]
			st.Rules = append(st.Rules, Triple{Destination: nums[0], Source: nums[1], Length: nums[2]})
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("read almanac: %w", err)
	}
	if !sawSeeds {
		return nil, &ParseError{Kind: ParseErrorStructure, Line: line, Msg: "missing seeds line"}
	}

	return a, nil
}

// ParseStageKey splits "seed-to-soil" into its domains.
func ParseStageKey(s string) (remap.StageKey, error) {
	from, to, ok := strings.Cut(strings.TrimSpace(s), keySeparator)
	if !ok || from == "" || to == "" || strings.ContainsFunc(from+to, unicode.IsSpace) {
		return remap.StageKey{}, fmt.Errorf("%w: %q is not of the form <from>-to-<to>", ErrStageName, s)
	}
	return remap.StageKey{From: from, To: to}, nil
}

// CheckStageKey reports an error unless k reads back unchanged from its
// text header. Keys from YAML and msgpack documents go through the same
// rule as parsed headers.
func CheckStageKey(k remap.StageKey) error {
	got, err := ParseStageKey(k.String())
	if err != nil {
		return err
	}
	if got != k {
		return fmt.Errorf("%w: from %q and to %q read back as %s", ErrStageName, k.From, k.To, got)
	}
	return nil
}

func parseNumbers(s string, line int) ([]int64, error) {
	fields := strings.Fields(s)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, &ParseError{Kind: ParseErrorNumber, Line: line, Msg: fmt.Sprintf("invalid number %q", f), Err: err}
		}
		out = append(out, n)
	}
	return out, nil
}

// WriteText writes a in the text almanac format accepted by Parse.
// Stages are written in declaration order. An explicit Order has no text
// form; callers that must keep it refuse the text target instead.
func WriteText(w io.Writer, a *Almanac) error {
	bw := bufio.NewWriter(w)

	bw.WriteString(seedsPrefix)
	for _, s := range a.Seeds {
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatInt(s, 10))
	}
	bw.WriteByte('\n')

	for _, st := range a.Stages {
		fmt.Fprintf(bw, "\n%s%s\n", st.Key(), headerSuffix)
		for _, t := range st.Rules {
			fmt.Fprintf(bw, "%d %d %d\n", t.Destination, t.Source, t.Length)
		}
	}

	return bw.Flush()
}
