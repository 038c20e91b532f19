package dataset

import (
	"compress/gzip"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/brookluers/dimred"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Factors holds the output of the indicator matrix SVD.
type Factors struct {
	// Number of subjects (rows of U)
	N int

	// Left and right factor matrices
	U, V *mat.Dense

	// Approximate singular values
	Values []float64
}

// readIndicators parses a long-format indicator file with one
// subject,code pair per line. A header line is skipped when present.
func readIndicators(path string) (row, col []int, dat []float64, nrow int, err error) {

	fid, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, 0, errors.Wrapf(err, "open %s", path)
	}
	defer fid.Close()

	var rdr io.Reader = fid
	if strings.HasSuffix(path, ".gz") {
		gid, err := gzip.NewReader(fid)
		if err != nil {
			return nil, nil, nil, 0, errors.Wrapf(err, "gzip %s", path)
		}
		defer gid.Close()
		rdr = gid
	}

	cr := csv.NewReader(rdr)
	first := true
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, nil, nil, 0, errors.Wrapf(err, "indicators %s", path)
		}
		if len(rec) != 2 {
			return nil, nil, nil, 0, errors.Errorf("indicators %s: %d fields, expected 2", path, len(rec))
		}

		subj, err1 := strconv.Atoi(strings.TrimSpace(rec[0]))
		code, err2 := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err1 != nil || err2 != nil {
			if first {
				// Header line
				first = false
				continue
			}
			return nil, nil, nil, 0, errors.Errorf("indicators %s: non-integer pair %v", path, rec)
		}
		first = false

		if subj < 0 || code < 0 {
			return nil, nil, nil, 0, errors.Errorf("indicators %s: negative index %v", path, rec)
		}

		row = append(row, subj)
		col = append(col, code)
		dat = append(dat, 1)
		if subj+1 > nrow {
			nrow = subj + 1
		}
	}

	return row, col, dat, nrow, nil
}

// ReduceIndicators reads a long-format (subject, code) indicator file
// and reduces it to nfac centered, scaled factor columns using an
// approximate SVD with npow power iterations. maxcode bounds the code
// space (the column count of the sparse matrix).
func ReduceIndicators(path string, nfac, npow, maxcode int) (*Factors, error) {

	row, col, dat, nrow, err := readIndicators(path)
	if err != nil {
		return nil, err
	}
	if nrow == 0 {
		return nil, errors.Errorf("indicators %s: no records", path)
	}

	spm := dimred.NewSPM(row, col, dat, nrow, maxcode)
	sv := new(dimred.RSVD)
	sv.Factorize(spm, nfac, npow)
	umat := sv.UTo(nil)
	vmat := sv.VTo(nil)

	// Center and scale the factor columns
	nr, nc := umat.Dims()
	for j := 0; j < nc; j++ {
		v := umat.ColView(j)

		mn := 0.0
		for i := 0; i < nr; i++ {
			mn += v.AtVec(i)
		}
		mn /= float64(nr)

		for i := 0; i < nr; i++ {
			umat.Set(i, j, umat.At(i, j)-mn)
		}

		sc := 0.0
		for i := 0; i < nr; i++ {
			z := v.AtVec(i)
			sc += z * z
		}
		sc = math.Sqrt(sc)

		for i := 0; i < nr; i++ {
			umat.Set(i, j, umat.At(i, j)/sc)
		}
	}

	return &Factors{N: nrow, U: umat, V: vmat, Values: sv.Values(nil)}, nil
}

// WriteBCols stores the factor columns as binary columns named
// <prefix>_000, <prefix>_001, ... scaled by sqrt(n) so they are on a
// regression-friendly scale.
func (fa *Factors) WriteBCols(dir, prefix string) error {

	nr, nc := fa.U.Dims()
	names := make([]string, nc)
	for j := 0; j < nc; j++ {
		names[j] = fmt.Sprintf("%s_%03d", prefix, j)
	}

	w, err := NewBColsWriter(dir, names)
	if err != nil {
		return err
	}

	sf := math.Sqrt(float64(fa.N))
	row := make([]float64, nc)
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			row[j] = sf * fa.U.At(i, j)
		}
		if err := w.Append(row); err != nil {
			return err
		}
	}

	return w.Close()
}
