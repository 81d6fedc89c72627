package poker

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// WriteFlush writes the flush table as "prime_product,rank" lines in rank
// order.
func (t *LookupTable) WriteFlush(w io.Writer) error {
	return writeEntries(w, t.flush)
}

// WriteUnsuited writes the unsuited table as "prime_product,rank" lines in
// rank order.
func (t *LookupTable) WriteUnsuited(w io.Writer) error {
	return writeEntries(w, t.unsuited)
}

func writeEntries(w io.Writer, table map[uint32]HandRank) error {
	keys := make([]uint32, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b uint32) int {
		return int(table[a]) - int(table[b])
	})

	bw := bufio.NewWriter(w)
	for _, k := range keys {
		if _, err := fmt.Fprintf(bw, "%d,%d\n", k, table[k]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadLookupTable loads tables previously written by WriteFlush and
// WriteUnsuited. The result is validated exactly like a freshly built table.
func ReadLookupTable(flush, unsuited io.Reader) (*LookupTable, error) {
	flushEntries, err := readEntries(flush, flushTableSize)
	if err != nil {
		return nil, fmt.Errorf("flush table: %w", err)
	}
	unsuitedEntries, err := readEntries(unsuited, unsuitedTableSize)
	if err != nil {
		return nil, fmt.Errorf("unsuited table: %w", err)
	}

	t := &LookupTable{flush: flushEntries, unsuited: unsuitedEntries}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func readEntries(r io.Reader, sizeHint int) (map[uint32]HandRank, error) {
	table := make(map[uint32]HandRank, sizeHint)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		keyStr, rankStr, ok := strings.Cut(text, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: %q", ErrTableFormat, line, text)
		}
		key, err := strconv.ParseUint(keyStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrTableFormat, line, err)
		}
		rank, err := strconv.ParseUint(rankStr, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrTableFormat, line, err)
		}
		if _, dup := table[uint32(key)]; dup {
			return nil, fmt.Errorf("%w: line %d: duplicate key %d", ErrTableFormat, line, key)
		}
		table[uint32(key)] = HandRank(rank)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}
