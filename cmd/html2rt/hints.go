package main

import (
	"errors"

	html2richtext "github.com/alnah/go-html2richtext"
	"github.com/alnah/go-html2richtext/htmltree"
	"github.com/alnah/go-html2richtext/internal/config"
	"github.com/alnah/go-html2richtext/internal/fileutil"
	"github.com/alnah/go-html2richtext/internal/hints"
)

// hintFor returns an actionable hint for err, or "" when none applies.
func hintFor(err error) string {
	switch {
	case errors.Is(err, html2richtext.ErrUnknownNodeType):
		return hints.ForMappingTarget(html2richtext.MappingTargets())
	case errors.Is(err, ErrNoFiles), errors.Is(err, ErrInvalidExtension):
		exts := append(append([]string{}, fileutil.HTMLExtensions...), fileutil.MarkdownExtensions...)
		return hints.ForNoFiles(exts)
	case errors.Is(err, htmltree.ErrInvalidSelector):
		return hints.ForSelector()
	case errors.Is(err, html2richtext.ErrInvalidBaseURL), errors.Is(err, htmltree.ErrInvalidBaseURL):
		return hints.ForBaseURL()
	case errors.Is(err, ErrOutputCollision):
		return hints.ForOverwrite()
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}

// configNotFoundHint suggests where a named config may be created.
func configNotFoundHint(name string) string {
	if fileutil.IsFilePath(name) {
		return hints.ForConfigNotFound(nil, "")
	}
	return hints.ForConfigNotFound(config.SearchPaths(name), config.AppDirName)
}
