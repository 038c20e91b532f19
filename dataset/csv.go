package dataset

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/kshedden/dstream/dstream"
	"github.com/pkg/errors"
)

// CSVOptions configures CSV ingestion. Variables not listed in either
// type slice are dropped by the reader.
type CSVOptions struct {
	Float64   []string
	String    []string
	ChunkSize int
}

// FromCSV reads a CSV file, decompressing transparently when the name
// ends in .gz, and returns an in-memory dstream.
func FromCSV(path string, opts CSVOptions) (dstream.Dstream, error) {

	fid, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer fid.Close()

	var rdr io.Reader = fid
	if strings.HasSuffix(path, ".gz") {
		gid, err := gzip.NewReader(fid)
		if err != nil {
			return nil, errors.Wrapf(err, "gzip %s", path)
		}
		defer gid.Close()
		rdr = gid
	}

	chunk := opts.ChunkSize
	if chunk <= 0 {
		chunk = 1024
	}

	tc := &dstream.CSVTypeConf{
		Float64: opts.Float64,
		String:  opts.String,
	}

	ds := dstream.FromCSV(rdr).TypeConf(tc).ChunkSize(chunk).HasHeader().Done()
	dm := dstream.MemCopy(ds, false)
	dm.Reset()

	return dm, nil
}
