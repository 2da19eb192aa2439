package object

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zlib"
)

// Encode serializes an object to its compressed on-disk form. The
// uncompressed layout is "<type> <len>\0<body>"; the returned hash is the
// SHA-1 of those uncompressed bytes. Pure function over buffers.
func Encode(objType ObjectType, body []byte) (Hash, []byte, error) {
	envelope := fmt.Sprintf("%s %d\x00", objType, len(body))
	raw := append([]byte(envelope), body...)

	h := HashObject(objType, body)

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		zw.Close()
		return "", nil, fmt.Errorf("encode %s: compress: %w", objType, err)
	}
	if err := zw.Close(); err != nil {
		return "", nil, fmt.Errorf("encode %s: compress flush: %w", objType, err)
	}
	return h, buf.Bytes(), nil
}

// Decode inflates a compressed object and splits it into type, declared
// size, and body. The header/body split uses the first NUL byte only, so
// body bytes are free to contain NULs of their own.
func Decode(compressed []byte) (ObjectType, int, []byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return "", 0, nil, fmt.Errorf("decode: %w: %v", ErrDecode, err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return "", 0, nil, fmt.Errorf("decode: %w: %v", ErrDecode, err)
	}

	nul := bytes.IndexByte(raw, 0)
	if nul < 0 {
		return "", 0, nil, fmt.Errorf("decode: %w: no NUL after header", ErrDecode)
	}
	header := string(raw[:nul])
	body := raw[nul+1:]

	typeStr, lenStr, ok := strings.Cut(header, " ")
	if !ok {
		return "", 0, nil, fmt.Errorf("decode: %w: malformed header %q", ErrDecode, header)
	}
	objType, err := ParseObjectType(typeStr)
	if err != nil {
		return "", 0, nil, fmt.Errorf("decode: %w: %v", ErrDecode, err)
	}
	size, err := strconv.Atoi(lenStr)
	if err != nil || size < 0 {
		return "", 0, nil, fmt.Errorf("decode: %w: invalid length %q", ErrDecode, lenStr)
	}
	if len(body) != size {
		return "", 0, nil, fmt.Errorf("decode: %w: length mismatch (header=%d, actual=%d)", ErrDecode, size, len(body))
	}
	return objType, size, body, nil
}
