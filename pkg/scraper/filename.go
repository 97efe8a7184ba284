package scraper

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// MaxFilenameLength is the longest final path segment used as-is
const MaxFilenameLength = 50

// FilenameFor derives the file name of an image: the final segment of the
// URL path, ignoring the query. Empty or over-long segments are replaced by
// image_<counter>.jpg.
func FilenameFor(imageURL *url.URL, counter int) string {
	return filenameFromPath(imageURL.EscapedPath(), counter)
}

// FilenameForReference derives the file name for a source that does not parse
// as a URL, cutting the query and fragment by hand.
func FilenameForReference(ref string, counter int) string {
	if i := strings.IndexAny(ref, "?#"); i >= 0 {
		ref = ref[:i]
	}
	return filenameFromPath(ref, counter)
}

func filenameFromPath(p string, counter int) string {
	name := p[strings.LastIndex(p, "/")+1:]

	if name == "" || name == "." || name == ".." || utf8.RuneCountInString(name) > MaxFilenameLength {
		return fallbackFilename(counter)
	}
	return name
}

func fallbackFilename(counter int) string {
	return fmt.Sprintf("image_%d.jpg", counter)
}
