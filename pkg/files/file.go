// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentschema/agentschema-go/pkg/dataformat"
	"github.com/pkg/errors"
)

type File struct {
	src     Source
	relPath string
	format  dataformat.Format
}

// NewFiles resolves paths into files. "-" is stdin, http(s) URLs are fetched,
// directories are walked (only files of a known format are kept).
func NewFiles(paths []string) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, errors.Wrapf(err, "Checking file '%s'", path)
			}

			if !fileInfo.IsDir() {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
				continue
			}

			var selectedPaths []string

			err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() {
					return err
				}
				if dataformat.FormatFromPath(walkedPath) != dataformat.FormatUnknown {
					selectedPaths = append(selectedPaths, walkedPath)
				}
				return nil
			})
			if err != nil {
				return nil, errors.Wrapf(err, "Listing files '%s'", path)
			}

			sort.Strings(selectedPaths)

			for _, selectedPath := range selectedPaths {
				fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, errors.Wrapf(err, "Calculating relative path for '%s'", fileSrc.Description())
	}

	return &File{src: fileSrc, relPath: relPath, format: dataformat.FormatFromPath(relPath)}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

// Format is the format guessed from the file name; FormatUnknown if none.
func (r *File) Format() dataformat.Format { return r.format }

// OverrideFormat forces the format used to decode this file.
func (r *File) OverrideFormat(format dataformat.Format) { r.format = format }

// RelativePathWithFormat swaps the file extension for one matching format.
func (r *File) RelativePathWithFormat(format dataformat.Format) string {
	ext := filepath.Ext(r.relPath)
	return strings.TrimSuffix(r.relPath, ext) + "." + string(format)
}
