package dataset

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/kshedden/dstream/dstream"
	"github.com/pkg/errors"
)

// ReadBCols opens a binary column directory: one <name>.bin.gz file
// per variable plus a dtypes.json manifest.
func ReadBCols(dir string, chunk int) (dstream.Dstream, error) {
	if _, err := os.Stat(filepath.Join(dir, "dtypes.json")); err != nil {
		return nil, errors.Wrapf(err, "bcols %s", dir)
	}
	if chunk <= 0 {
		chunk = 100000
	}
	return dstream.NewBCols(dir, chunk).Done(), nil
}

// BColsWriter streams float64 rows into per-variable compressed column
// files, one value per variable per row.
type BColsWriter struct {
	dir   string
	names []string
	fw    []io.WriteCloser
	zw    []*gzip.Writer
	nrow  int
}

// NewBColsWriter creates the destination directory and one column
// file per variable.
func NewBColsWriter(dir string, names []string) (*BColsWriter, error) {

	if len(names) == 0 {
		return nil, errors.New("bcols: no variables to write")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "bcols %s", dir)
	}

	w := &BColsWriter{dir: dir, names: names}
	for _, na := range names {
		fid, err := os.Create(filepath.Join(dir, fmt.Sprintf("%s.bin.gz", na)))
		if err != nil {
			w.discard()
			return nil, errors.Wrapf(err, "bcols %s", na)
		}
		w.fw = append(w.fw, fid)
		w.zw = append(w.zw, gzip.NewWriter(fid))
	}
	return w, nil
}

// discard closes and removes every column file created so far,
// leaving no partial output behind.
func (w *BColsWriter) discard() {
	for j := range w.fw {
		w.zw[j].Close()
		w.fw[j].Close()
		os.Remove(filepath.Join(w.dir, fmt.Sprintf("%s.bin.gz", w.names[j])))
	}
	w.fw = nil
	w.zw = nil
}

// Append writes one row, in the variable order given at construction.
func (w *BColsWriter) Append(row []float64) error {
	if len(row) != len(w.names) {
		return errors.Errorf("bcols: row has %d values, expected %d", len(row), len(w.names))
	}
	for j, v := range row {
		if err := binary.Write(w.zw[j], binary.LittleEndian, v); err != nil {
			return errors.Wrapf(err, "bcols %s", w.names[j])
		}
	}
	w.nrow++
	return nil
}

// Rows returns the number of rows written so far.
func (w *BColsWriter) Rows() int { return w.nrow }

// Close flushes the column files and writes the dtypes.json manifest.
func (w *BColsWriter) Close() error {
	for j := range w.zw {
		// Close the gzip stream before the file beneath it.
		if err := w.zw[j].Close(); err != nil {
			return errors.Wrapf(err, "bcols %s", w.names[j])
		}
		if err := w.fw[j].Close(); err != nil {
			return errors.Wrapf(err, "bcols %s", w.names[j])
		}
	}

	dt := make(map[string]string)
	for _, na := range w.names {
		dt[na] = "float64"
	}
	buf, err := sonic.Marshal(dt)
	if err != nil {
		return errors.Wrap(err, "bcols manifest")
	}
	fname := filepath.Join(w.dir, "dtypes.json")
	if err := os.WriteFile(fname, buf, 0644); err != nil {
		return errors.Wrapf(err, "bcols %s", fname)
	}
	return nil
}

// Convert copies the named float64 variables of a dstream into a
// binary column directory and returns the number of rows written.
func Convert(ds dstream.Dstream, vars []string, dir string) (int, error) {

	if len(vars) == 0 {
		vars = ds.Names()
	}

	pos := make(map[string]int)
	for k, na := range ds.Names() {
		pos[na] = k
	}
	for _, na := range vars {
		if _, ok := pos[na]; !ok {
			return 0, errors.Errorf("convert: no variable %s", na)
		}
	}

	w, err := NewBColsWriter(dir, vars)
	if err != nil {
		return 0, err
	}

	row := make([]float64, len(vars))
	ds.Reset()
	for ds.Next() {
		var n int
		cols := make([][]float64, len(vars))
		for j, na := range vars {
			col, ok := ds.GetPos(pos[na]).([]float64)
			if !ok {
				return 0, errors.Errorf("convert: variable %s is not float64", na)
			}
			cols[j] = col
			n = len(col)
		}
		for i := 0; i < n; i++ {
			for j := range vars {
				row[j] = cols[j][i]
			}
			if err := w.Append(row); err != nil {
				return 0, err
			}
		}
	}

	return w.Rows(), w.Close()
}
