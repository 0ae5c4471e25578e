package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextUTF8(t *testing.T) {
	text, err := decodeText(bytes.NewReader([]byte("Привет Am Dm")), "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "Привет Am Dm", text)
}

func TestDecodeTextWindows1251(t *testing.T) {
	// "Привет Am" in windows-1251
	raw := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2, ' ', 'A', 'm'}
	text, err := decodeText(bytes.NewReader(raw), "windows-1251")
	require.NoError(t, err)
	assert.Equal(t, "Привет Am", text)
}

func TestDecodeTextEncodingAlias(t *testing.T) {
	raw := []byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2}
	text, err := decodeText(bytes.NewReader(raw), "cp1251")
	require.NoError(t, err)
	assert.Equal(t, "Привет", text)
}

func TestDecodeTextUnknownEncoding(t *testing.T) {
	_, err := decodeText(bytes.NewReader(nil), "klingon-8")
	assert.Error(t, err)
}

func TestReadInputFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song.txt")
	require.NoError(t, os.WriteFile(path, []byte("C F G Am"), 0o644))

	text, err := readInput(path, "utf-8")
	require.NoError(t, err)
	assert.Equal(t, "C F G Am", text)
}

func TestReadInputMissingFile(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "nope.txt"), "utf-8")
	assert.Error(t, err)
}
