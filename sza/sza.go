package sza

// This file contains code directly related to reading the zipped
// animation container.

import (
	"archive/zip"
	"bufio"
	"bytes"
	"image"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	// Frame entries may come in any of the common raster encodings.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/pkg/errors"
)

// DescriptorName is the name of the text entry every animation archive
// must contain.
const DescriptorName = "animation.txt"

// Decode reads a zipped animation from the passed reader and returns the
// decoded Animation.
//
// The reader is treated as a forward-only stream: it is consumed exactly
// once and buffered in full before the zip directory is read. Closing the
// reader, where applicable, remains the caller's job; DecodeFile and
// DecodeURL take care of it for their streams.
func Decode(r io.Reader) (*Animation, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(ErrStream, "buffering archive: %v", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, errors.Wrapf(ErrStream, "opening archive: %v", err)
	}

	var descriptor []string
	images := map[string]image.Image{}
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, errors.Wrapf(ErrStream, "opening entry %q: %v", entry.Name, err)
		}
		if entry.Name == DescriptorName {
			sc := bufio.NewScanner(rc)
			for sc.Scan() {
				descriptor = append(descriptor, sc.Text())
			}
			err := sc.Err()
			rc.Close()
			if err != nil {
				return nil, errors.Wrapf(ErrStream, "reading %s: %v", DescriptorName, err)
			}
			continue
		}
		img, _, err := image.Decode(rc)
		rc.Close()
		if err != nil {
			return nil, errors.Wrapf(ErrImageDecode, "entry %q: %v", entry.Name, err)
		}
		// A later entry with the same name overwrites an earlier one.
		images[entry.Name] = img
	}

	if len(descriptor) == 0 {
		return nil, errors.Wrapf(ErrMissingDescriptor, "no %s in archive", DescriptorName)
	}

	frames := make([]Frame, 0, len(descriptor))
	for _, line := range descriptor {
		name, durationMS, err := parseDescriptorLine(line)
		if err != nil {
			return nil, err
		}
		img, ok := images[name]
		if !ok {
			return nil, errors.Wrapf(ErrMissingReferencedImage, "%q", name)
		}
		f, err := NewFrame(img, durationMS)
		if err != nil {
			return nil, errors.Wrapf(err, "line %q", line)
		}
		frames = append(frames, f)
	}
	return NewAnimation(frames)
}

// parseDescriptorLine splits a descriptor line of the form NAME (TIMEms)
// into the image entry name and the duration in milliseconds.
func parseDescriptorLine(line string) (string, int, error) {
	open := strings.Index(line, "(")
	end := strings.Index(line, "ms)")
	if open < 0 || end <= open {
		return "", 0, errors.Wrapf(ErrMalformedDescriptorLine,
			"%s should use the format NAME (TIMEms); got %q", DescriptorName, line)
	}
	name := strings.TrimSpace(line[:open])
	durationMS, err := strconv.Atoi(line[open+1 : end])
	if err != nil {
		return "", 0, errors.Wrapf(ErrMalformedDescriptorLine,
			"bad duration in %q: %v", line, err)
	}
	return name, durationMS, nil
}

// DecodeFile reads a zipped animation from the named file.
func DecodeFile(name string) (*Animation, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrStream, "%v", err)
	}
	defer f.Close()
	return Decode(f)
}

// DecodeURL fetches a zipped animation over HTTP and decodes it.
func DecodeURL(url string) (*Animation, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, errors.Wrapf(ErrStream, "fetching %q: %v", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(ErrStream, "fetching %q: status %d, want %d", url, resp.StatusCode, http.StatusOK)
	}
	return Decode(resp.Body)
}
