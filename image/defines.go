package image

import (
	"bufio"
	"bytes"
	"io"
)

const (
	sigGIF    = "GIF8"
	sigJPEG   = "\xff\xd8\xff"
	sigPNG    = "\211PNG\r\n\032\n"
	sigBMP    = "BM"
	sigICO    = "\x00\x00\x01\x00"
	sigTIFFLE = "II*\x00"
	sigTIFFBE = "MM\x00*"
	sigRIFF   = "RIFF"
	sigWEBP   = "WEBP"
)

const headSize = 12

// A reader is an io.Reader that can also peek ahead.
type reader interface {
	io.Reader
	Peek(int) ([]byte, error)
}

// asReader converts an io.Reader to a reader.
func asReader(r io.Reader) reader {
	if rr, ok := r.(reader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// GuessFormat sniffs the magic bytes of data.
func GuessFormat(data []byte) Format {
	switch {
	case bytes.HasPrefix(data, []byte(sigPNG)):
		return PNG
	case bytes.HasPrefix(data, []byte(sigJPEG)):
		return JPEG
	case bytes.HasPrefix(data, []byte(sigGIF)):
		return GIF
	case bytes.HasPrefix(data, []byte(sigRIFF)) && len(data) >= 12 && string(data[8:12]) == sigWEBP:
		return WEBP
	case bytes.HasPrefix(data, []byte(sigTIFFLE)), bytes.HasPrefix(data, []byte(sigTIFFBE)):
		return TIFF
	case bytes.HasPrefix(data, []byte(sigICO)):
		return ICO
	case bytes.HasPrefix(data, []byte(sigBMP)):
		return BMP
	}
	return FormatNone
}

// readHead peeks the leading bytes without consuming them.
func readHead(rr reader) []byte {
	head, _ := rr.Peek(headSize)
	return head
}
