package utils

import (
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/bodgit/sevenzip"
)

// LoadFile loads the given file and performs decompression if necessary.
// ROM images (.gb) and boot images (.bin) are returned as-is; .gz, .zip and
// .7z archives are unpacked (the first file in the archive is used).
func LoadFile(filename string) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var decoder io.Reader
	switch filepath.Ext(filename) {
	case ".gz":
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		decoder, err = gzip.NewReader(f)
	case ".zip":
		var r *zip.Reader
		r, err = zip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = r.File[0].Open()
	case ".7z":
		var r *sevenzip.Reader
		r, err = sevenzip.NewReader(f, int64(len(data)))
		if err != nil {
			return nil, err
		}
		decoder, err = r.File[0].Open()
	default:
		// not an archive, return the data as is
		return data, nil
	}

	if err != nil {
		return nil, err
	}

	return io.ReadAll(decoder)
}
