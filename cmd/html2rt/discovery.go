package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/alnah/go-html2richtext/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension = errors.New("file must have .html, .htm, .md or .markdown extension")
	ErrNoFiles          = errors.New("no convertible files found")
	ErrOutputCollision  = errors.New("output path collides with another input or output")
)

// stdinPath is the positional argument selecting standard input.
const stdinPath = "-"

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Markdown   bool
}

// discoverFiles expands inputs (files and directories) into conversion jobs.
// output is a file when it carries the format extension, a directory otherwise.
func discoverFiles(inputs []string, output, ext string, forceMarkdown bool) ([]FileToConvert, error) {
	if err := checkOutputDir(output, ext); err != nil {
		return nil, err
	}

	var files []FileToConvert
	for _, input := range inputs {
		found, err := discoverInput(input, output, ext)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %v", ErrNoFiles, inputs)
	}

	seen := make(map[string]string, len(files))
	for i := range files {
		files[i].Markdown = forceMarkdown || fileutil.IsMarkdownFile(files[i].InputPath)
		out := files[i].OutputPath
		if filepath.Clean(out) == filepath.Clean(files[i].InputPath) {
			return nil, fmt.Errorf("%w: %s would overwrite its input", ErrOutputCollision, out)
		}
		if prev, ok := seen[out]; ok {
			return nil, fmt.Errorf("%w: %s and %s -> %s", ErrOutputCollision, prev, files[i].InputPath, out)
		}
		seen[out] = files[i].InputPath
	}
	return files, nil
}

// checkOutputDir rejects an output that would be used as a directory but
// already exists as a regular file, such as one of the inputs.
func checkOutputDir(output, ext string) error {
	if output == "" || filepath.Ext(output) == ext {
		return nil
	}
	info, err := os.Stat(output)
	if err != nil || info.IsDir() {
		return nil
	}
	return fmt.Errorf("%w: %s is an existing file, not a directory", ErrOutputCollision, output)
}

func discoverInput(inputPath, output, ext string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if !fileutil.IsInputFile(inputPath) {
			return nil, fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(inputPath))
		}
		outPath := resolveOutputPath(inputPath, output, "", ext)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsInputFile(path) {
			return nil
		}
		outPath := resolveOutputPath(path, output, inputPath, ext)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	return files, err
}

// resolveOutputPath determines the output path for an input file.
func resolveOutputPath(inputPath, output, baseInputDir, ext string) string {
	name := fileutil.ReplaceExtension(filepath.Base(inputPath), ext)

	if output == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if filepath.Ext(output) == ext {
		return output
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(output, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(output, name)
}
