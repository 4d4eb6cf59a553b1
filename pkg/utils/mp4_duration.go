package utils

import (
	"encoding/binary"
	"errors"
	"io"
)

// ProbeMP4Duration scans the top-level boxes of an ISO BMFF (mp4/mov) payload
// for the movie header and returns the duration in seconds. It returns 0 for
// payloads that are not mp4 or carry no movie header; reading stops at the
// first moov box, so a payload with moov at the front is probed without
// touching the rest of the stream. The reader is left at an arbitrary offset.
func ProbeMP4Duration(r io.ReadSeeker, size int64) float64 {
	var offset int64

	for offset+8 <= size {
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return 0
		}

		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return 0
		}

		boxSize := int64(binary.BigEndian.Uint32(header[:4]))
		boxType := string(header[4:8])
		headerSize := int64(8)

		switch boxSize {
		case 0:
			boxSize = size - offset // box extends to end of file
		case 1:
			var large [8]byte
			if _, err := io.ReadFull(r, large[:]); err != nil {
				return 0
			}
			boxSize = int64(binary.BigEndian.Uint64(large[:]))
			headerSize = 16
		}

		if boxSize < headerSize {
			return 0
		}

		if boxType == "moov" {
			d, err := scanMovieHeader(r, offset+headerSize, offset+boxSize)
			if err != nil {
				return 0
			}

			return d
		}

		offset += boxSize
	}

	return 0
}

// scanMovieHeader walks the children of a moov box between start and end
// looking for mvhd.
func scanMovieHeader(r io.ReadSeeker, start, end int64) (float64, error) {
	offset := start

	for offset+8 <= end {
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return 0, err
		}

		var header [8]byte
		if _, err := io.ReadFull(r, header[:]); err != nil {
			return 0, err
		}

		boxSize := int64(binary.BigEndian.Uint32(header[:4]))
		if boxSize < 8 {
			return 0, errors.New("malformed box size")
		}

		if string(header[4:8]) == "mvhd" {
			return readMovieHeader(r)
		}

		offset += boxSize
	}

	return 0, nil
}

func readMovieHeader(r io.Reader) (float64, error) {
	var version [4]byte // version + flags
	if _, err := io.ReadFull(r, version[:]); err != nil {
		return 0, err
	}

	if version[0] == 1 {
		// 8-byte creation and modification times precede the timescale.
		var body [28]byte
		if _, err := io.ReadFull(r, body[:]); err != nil {
			return 0, err
		}
		timescale := binary.BigEndian.Uint32(body[16:20])
		duration := binary.BigEndian.Uint64(body[20:28])
		if timescale == 0 {
			return 0, nil
		}

		return float64(duration) / float64(timescale), nil
	}

	var body [16]byte
	if _, err := io.ReadFull(r, body[:]); err != nil {
		return 0, err
	}
	timescale := binary.BigEndian.Uint32(body[8:12])
	duration := binary.BigEndian.Uint32(body[12:16])
	if timescale == 0 {
		return 0, nil
	}

	return float64(duration) / float64(timescale), nil
}
