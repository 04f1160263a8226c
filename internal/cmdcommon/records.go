package cmdcommon

import (
	"bufio"
	"bytes"
	"io"
)

// maxRecordSize bounds a single input record.
const maxRecordSize = 1 << 20

// ScanRecords calls fn for every record in r. Records end with '\n', or with
// NUL when nul is set; a final record without terminator is still passed.
// Record content is passed through untouched, including any '\r'.
func ScanRecords(r io.Reader, nul bool, fn func(string) error) error {
	sep := byte('\n')
	if nul {
		sep = 0
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.IndexByte(data, sep); i >= 0 {
			return i + 1, data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	})
	for scanner.Scan() {
		if err := fn(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
