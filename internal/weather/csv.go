package weather

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadFile reads a dataset from the CSV file at path.
// A missing or unreadable file yields ErrNotFound; malformed content yields ErrParse.
func LoadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV parses "date,min_temp_f,max_temp_f" rows from r. The first line is
// a header and is always discarded, even when it is blank; later blank rows are
// skipped. Parsing stops at the first malformed row and no partial dataset is
// returned.
func ParseCSV(r io.Reader) (Dataset, error) {
	br := bufio.NewReader(r)

	// encoding/csv skips empty lines, so a blank header has to be consumed here.
	header, skipped := true, 0
	if first, _ := br.Peek(2); bytes.HasPrefix(first, []byte("\n")) || bytes.HasPrefix(first, []byte("\r\n")) {
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		header, skipped = false, 1
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var ds Dataset
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		line += skipped
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ds = append(ds, rec)
	}

	return ds, nil
}

func parseRecord(row []string) (Record, error) {
	if len(row) < 3 {
		return Record{}, fmt.Errorf("%w: expected 3 columns, got %d", ErrParse, len(row))
	}

	minF, err := parseTemp(row[1])
	if err != nil {
		return Record{}, err
	}
	maxF, err := parseTemp(row[2])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Date:     row[0],
		MinTempF: minF,
		MaxTempF: maxF,
	}, nil
}

func parseTemp(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid temperature %q", ErrParse, s)
	}
	return v, nil
}
