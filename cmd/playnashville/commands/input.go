package commands

import (
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"

	"github.com/imuzolev/playnashville/errors"
)

// readInput reads the whole song text from path (or stdin when path is
// empty), decoding it from the named encoding to UTF-8.
func readInput(path, encodingName string) (string, error) {
	var reader io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to open input file %s", path)
		}
		defer f.Close()
		reader = f
	}
	return decodeText(reader, encodingName)
}

// decodeText decodes reader from the named encoding. Encoding labels follow
// the WHATWG registry, so aliases like latin1 or cp1251 work too.
func decodeText(reader io.Reader, encodingName string) (string, error) {
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return "", errors.Wrapf(err, "unknown encoding %q", encodingName)
	}

	data, err := io.ReadAll(enc.NewDecoder().Reader(reader))
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode input as %s", encodingName)
	}
	return string(data), nil
}
