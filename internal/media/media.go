// Package media inspects uploaded files: content type and audio length.
package media

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/tcolgate/mp3"
)

// ContentType returns the normalized declared type, sniffing the content
// when the client sent none or a generic one. r is rewound afterwards.
func ContentType(declared string, r io.ReadSeeker) (string, error) {
	if t := normalize(declared); t != "" && t != "application/octet-stream" {
		return t, nil
	}

	detected, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("detecting content type: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding upload: %w", err)
	}
	return normalize(detected.String()), nil
}

func normalize(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mediaType
}

// MP3Duration sums the frame durations of an MPEG audio stream
func MP3Duration(r io.Reader) (time.Duration, error) {
	var (
		total   time.Duration
		frames  int
		dec     = mp3.NewDecoder(r)
		frame   mp3.Frame
		skipped int
	)

	for {
		if err := dec.Decode(&frame, &skipped); err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			return 0, fmt.Errorf("decoding mp3 frame %d: %w", frames, err)
		}
		total += frame.Duration()
		frames++
	}

	if frames == 0 {
		return 0, fmt.Errorf("no mp3 frames found")
	}
	return total, nil
}
