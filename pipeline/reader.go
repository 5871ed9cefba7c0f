package pipeline

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// decodedFile decodes a legacy-encoded file to UTF-8 while reading.
type decodedFile struct {
	io.Reader
	file *os.File
}

func (d *decodedFile) Close() error {
	return d.file.Close()
}

// openText opens path for reading, transcoding to UTF-8 when encodingName
// names a legacy Chinese encoding. An empty name means the file is
// already UTF-8.
func openText(path, encodingName string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	var enc encoding.Encoding
	switch strings.ToLower(encodingName) {
	case "", "utf-8", "utf8":
		return file, nil
	case "gbk", "gb2312":
		// GBK is a superset of GB2312.
		enc = simplifiedchinese.GBK
	case "gb18030":
		enc = simplifiedchinese.GB18030
	default:
		file.Close()
		return nil, errors.Errorf("unsupported encoding %q", encodingName)
	}

	return &decodedFile{
		Reader: transform.NewReader(file, enc.NewDecoder()),
		file:   file,
	}, nil
}
