package editor

import "regexp"

// Best-effort markup→markdown conversion. The replacement order
// matters: block tags first, then inline marks, then a final pass
// stripping whatever is left. Known to be lossy for nested and
// complex structures.
var (
	reH1     = regexp.MustCompile(`<h1>(.*?)</h1>`)
	reH2     = regexp.MustCompile(`<h2>(.*?)</h2>`)
	reH3     = regexp.MustCompile(`<h3>(.*?)</h3>`)
	reP      = regexp.MustCompile(`<p>(.*?)</p>`)
	reStrong = regexp.MustCompile(`<strong>(.*?)</strong>`)
	reEm     = regexp.MustCompile(`<em>(.*?)</em>`)
	reUl     = regexp.MustCompile(`<ul>(.*?)</ul>`)
	reLi     = regexp.MustCompile(`<li>(.*?)</li>`)
	reBr     = regexp.MustCompile(`<br\s*/?>`)
	reTag    = regexp.MustCompile(`<[^>]*>`)
)

// ToMarkdown converts serialized markup to a markdown-like string.
func ToMarkdown(markup string) string {
	content := markup
	content = reH1.ReplaceAllString(content, "# $1\n")
	content = reH2.ReplaceAllString(content, "## $1\n")
	content = reH3.ReplaceAllString(content, "### $1\n")
	content = reP.ReplaceAllString(content, "$1\n\n")
	content = reStrong.ReplaceAllString(content, "**$1**")
	content = reEm.ReplaceAllString(content, "*$1*")
	content = reUl.ReplaceAllString(content, "$1")
	content = reLi.ReplaceAllString(content, "- $1\n")
	content = reBr.ReplaceAllString(content, "\n")
	content = reTag.ReplaceAllString(content, "")
	return content
}

// ExportMarkdown renders a full note export: title heading plus the
// converted body.
func ExportMarkdown(title, markup string) string {
	return "# " + title + "\n\n" + ToMarkdown(markup)
}

// MarkdownFileName names the download, falling back to "note".
func MarkdownFileName(title string) string {
	if title == "" {
		title = "note"
	}
	return title + ".md"
}
