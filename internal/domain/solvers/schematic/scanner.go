package schematic

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// ErrMalformedNumber is reported in strict mode when a digit run cannot be
// represented as an unsigned 64-bit integer.
var ErrMalformedNumber = errors.New("malformed number")

// MalformedNumberError describes the digit run that failed to parse.
type MalformedNumberError struct {
	Row  int
	Col  int
	Text string
}

func (e *MalformedNumberError) Error() string {
	return fmt.Sprintf("%v at row %d, column %d: %q", ErrMalformedNumber, e.Row, e.Col, e.Text)
}

func (e *MalformedNumberError) Unwrap() error {
	return ErrMalformedNumber
}

// NumberSpan is a maximal horizontal run of digits within one row.
// End is inclusive.
type NumberSpan struct {
	Row   int
	Start int
	End   int
	Value uint64
}

// Result holds the outcome of a scan.
type Result struct {
	// PartNumberSum is the sum of every span touching at least one symbol.
	// Like GearRatioSum it cannot wrap.
	PartNumberSum *big.Int
	// GearRatioSum is the sum of a*b over every symbol touching exactly two
	// spans with values a and b.
	GearRatioSum *big.Int
	// Spans lists the part number spans in scan order.
	Spans []NumberSpan
	// Adjacency maps each symbol touching a span to the span values, in the
	// order the spans were found.
	Adjacency map[Coord][]uint64
}

// Gears returns the symbol coordinates touching exactly two spans, sorted by
// row then column.
func (r Result) Gears() []Coord {
	gears := make([]Coord, 0)

	for c, values := range r.Adjacency {
		if len(values) == 2 {
			gears = append(gears, c)
		}
	}

	sort.Slice(gears, func(i, j int) bool {
		if gears[i].Row != gears[j].Row {
			return gears[i].Row < gears[j].Row
		}

		return gears[i].Col < gears[j].Col
	})

	return gears
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithStrict makes Scan fail with a *MalformedNumberError instead of counting
// an unparsable digit run as zero.
func WithStrict() Option {
	return func(s *Scanner) {
		s.strict = true
	}
}

// Scanner finds part numbers and gears in a Grid. A Scanner holds no scan
// state and can be reused.
type Scanner struct {
	strict bool
}

// NewScanner creates a Scanner. By default it is permissive.
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Scan walks g row by row, left to right, in a single pass.
func (s *Scanner) Scan(g Grid) (Result, error) {
	res := Result{
		PartNumberSum: new(big.Int),
		GearRatioSum:  new(big.Int),
		Adjacency:    make(map[Coord][]uint64),
	}

	for row := 0; row < g.Rows(); row++ {
		var current *spanBuilder

		// col == width closes a span that runs to the end of the row.
		for col := 0; col <= g.Width(row); col++ {
			r, ok := g.At(row, col)
			if ok && Classify(r) == Digit {
				if current == nil {
					current = newSpanBuilder(row, col)
				}

				current.push(r, col, g.neighbors(Coord{Row: row, Col: col}))

				continue
			}

			if current != nil {
				if err := s.close(&res, current); err != nil {
					return Result{}, err
				}

				current = nil
			}
		}
	}

	res.GearRatioSum = gearRatioSum(res.Adjacency)

	return res, nil
}

func (s *Scanner) close(res *Result, b *spanBuilder) error {
	if len(b.symbols) == 0 {
		return nil
	}

	value, err := s.parse(b)
	if err != nil {
		return err
	}

	res.PartNumberSum.Add(res.PartNumberSum, new(big.Int).SetUint64(value))
	res.Spans = append(res.Spans, NumberSpan{Row: b.row, Start: b.start, End: b.end, Value: value})

	for _, c := range b.symbols {
		res.Adjacency[c] = append(res.Adjacency[c], value)
	}

	return nil
}

func (s *Scanner) parse(b *spanBuilder) (uint64, error) {
	text := b.digits.String()

	value, err := strconv.ParseUint(text, 10, 64)
	if err == nil {
		return value, nil
	}

	if s.strict {
		return 0, &MalformedNumberError{Row: b.row, Col: b.start, Text: text}
	}

	return 0, nil
}

func gearRatioSum(adjacency map[Coord][]uint64) *big.Int {
	sum := new(big.Int)

	for _, values := range adjacency {
		if len(values) != 2 {
			continue
		}

		product := new(big.Int).SetUint64(values[0])
		product.Mul(product, new(big.Int).SetUint64(values[1]))
		sum.Add(sum, product)
	}

	return sum
}

// spanBuilder accumulates one digit run and the distinct symbols it touches.
type spanBuilder struct {
	row     int
	start   int
	end     int
	digits  strings.Builder
	symbols []Coord
	seen    map[Coord]struct{}
}

func newSpanBuilder(row, col int) *spanBuilder {
	return &spanBuilder{
		row:   row,
		start: col,
		end:   col,
		seen:  make(map[Coord]struct{}),
	}
}

func (b *spanBuilder) push(r rune, col int, symbols []Coord) {
	b.digits.WriteRune(r)
	b.end = col

	for _, c := range symbols {
		if _, ok := b.seen[c]; ok {
			continue
		}

		b.seen[c] = struct{}{}
		b.symbols = append(b.symbols, c)
	}
}
