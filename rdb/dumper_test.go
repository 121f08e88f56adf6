package rdb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/jo-migo/toml-to-rdb/checksum"
	"github.com/jo-migo/toml-to-rdb/encoding"
	"github.com/jo-migo/toml-to-rdb/errs"
	"github.com/jo-migo/toml-to-rdb/format"
)

func dump(t *testing.T, input string, opts ...Option) []byte {
	t.Helper()

	d, err := NewDumper(opts...)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, d.Dump(strings.NewReader(input), &out))

	return out.Bytes()
}

// requireTrailer checks that the dump ends with the EOF opcode and the
// little-endian CRC of everything before the trailer's own 8 bytes.
func requireTrailer(t *testing.T, dump []byte) {
	t.Helper()

	require.GreaterOrEqual(t, len(dump), 9)

	body := dump[:len(dump)-8]
	require.Equal(t, format.OpcodeEOF, body[len(body)-1])

	expected := checksum.Update(0, body)
	require.Equal(t, expected, binary.LittleEndian.Uint64(dump[len(dump)-8:]))
}

func encstr(s string) []byte {
	return encoding.AppendString(nil, s)
}

func TestDump_EmptyInput(t *testing.T) {
	got := dump(t, "")

	// Header, EOF opcode, 8-byte trailer and nothing else.
	require.Len(t, got, len("REDIS0007")+2+1+8)
	require.Equal(t, "REDIS0007", string(got[:9]))
	require.Equal(t, []byte{0xFE, 0x00}, got[9:11])
	requireTrailer(t, got)
}

func TestDump_HeaderDeterminism(t *testing.T) {
	for _, version := range []int{0, 1, 7, 11, 9999} {
		got := dump(t, "", WithVersion(version))

		expected := fmt.Sprintf("REDIS%04d", version)
		require.Equal(t, expected, string(got[:9]), "version %d", version)
		require.Equal(t, []byte{0xFE, 0x00}, got[9:11])
	}
}

func TestDump_FullFileLayout(t *testing.T) {
	input := "name = \"ada\"\n" +
		"\n" +
		"tags = [\"a\", \"b\", \"a\"]\n" +
		"\n" +
		"[person]\n" +
		"age = 30\n" +
		"city = \"nyc\"\n"

	got := dump(t, input)

	var expected []byte
	expected = append(expected, "REDIS0007"...)
	expected = append(expected, 0xFE, 0x00)

	expected = append(expected, 0x00)
	expected = append(expected, encstr("name")...)
	expected = append(expected, encstr("ada")...)

	expected = append(expected, 0x02)
	expected = append(expected, encstr("tags")...)
	expected = append(expected, encoding.AppendLength(nil, 3)...)
	expected = append(expected, encstr("a")...)
	expected = append(expected, encstr("b")...)
	expected = append(expected, encstr("a")...)

	expected = append(expected, 0x04)
	expected = append(expected, encstr("person")...)
	expected = append(expected, encoding.AppendLength(nil, 2)...)
	expected = append(expected, encstr("age")...)
	expected = append(expected, encstr("30")...)
	expected = append(expected, encstr("city")...)
	expected = append(expected, encstr("nyc")...)

	expected = append(expected, 0xFF)
	expected = binary.LittleEndian.AppendUint64(expected, checksum.Update(0, expected))

	require.Equal(t, expected, got)
}

func TestDump_TableBlockWithoutTrailingBlankLine(t *testing.T) {
	got := dump(t, "[person]\nage = 30")
	requireTrailer(t, got)

	// The implicit close emits the record: look for the hash type code
	// followed by the encoded key right after the header.
	body := got[11:]
	require.Equal(t, byte(0x04), body[0])
	require.Equal(t, encstr("person"), body[1:1+len(encstr("person"))])
}

func TestDump_MalformedFragmentAborts(t *testing.T) {
	d, err := NewDumper()
	require.NoError(t, err)

	var out bytes.Buffer
	err = d.Dump(strings.NewReader("good = 1\n\n= broken\n\nnever = 2\n"), &out)
	require.ErrorIs(t, err, errs.ErrMalformedFragment)

	// The header and the first record were flushed before the failure; the
	// truncated artifact carries no trailer and no later records.
	flushed := out.Bytes()
	require.Equal(t, "REDIS0007", string(flushed[:9]))
	require.NotContains(t, string(flushed), "never")
}

func TestDump_UnsupportedNestingAborts(t *testing.T) {
	d, err := NewDumper()
	require.NoError(t, err)

	var out bytes.Buffer
	err = d.Dump(strings.NewReader("[a]\n[a.b]\nx = 1\n"), &out)
	require.ErrorIs(t, err, errs.ErrUnsupportedScalar)
}

func TestDump_GzippedInput(t *testing.T) {
	input := "name = \"ada\"\n"

	var compressed bytes.Buffer
	zw := gzip.NewWriter(&compressed)
	_, err := zw.Write([]byte(input))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	d, err := NewDumper(WithCompression(format.CompressionGzip))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, d.Dump(&compressed, &out))

	require.Equal(t, dump(t, input), out.Bytes())
}

func TestDump_DumperIsReusable(t *testing.T) {
	d, err := NewDumper()
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, d.Dump(strings.NewReader("a = 1\n"), &first))
	require.NoError(t, d.Dump(strings.NewReader("a = 1\n"), &second))

	// Checksum state is per-pass, never carried across dumps.
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestNewDumper_VersionValidation(t *testing.T) {
	for _, version := range []int{-1, 10000} {
		_, err := NewDumper(WithVersion(version))
		require.ErrorIs(t, err, errs.ErrInvalidVersion, "version %d", version)
	}
}

func TestNewDumper_CompressionValidation(t *testing.T) {
	_, err := NewDumper(WithCompression(format.CompressionType(0xFF)))
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}
