package pipeline

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// linkAttrs lists the attributes RebaseLinks rewrites, by element.
var linkAttrs = map[atom.Atom]string{
	atom.Img: "src",
	atom.A:   "href",
}

// RebaseLinks turns relative img and link targets of a preview fragment into
// file:// URLs under baseDir, so a preview written elsewhere still shows the
// post's images. URLs, anchors and absolute paths are left alone. An empty
// baseDir returns the fragment unchanged.
//
// Run it after sanitizing: the sanitizer drops file:// URLs.
func RebaseLinks(fragment, baseDir string) (string, error) {
	if baseDir == "" || !strings.Contains(fragment, "<") {
		return fragment, nil
	}

	absDir, err := filepath.Abs(baseDir)
	if err != nil {
		return "", fmt.Errorf("rebasing links: %w", err)
	}

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", fmt.Errorf("rebasing links: %w", err)
	}

	var b strings.Builder
	for _, n := range nodes {
		rebaseNode(n, absDir)
		if err := html.Render(&b, n); err != nil {
			return "", fmt.Errorf("rebasing links: %w", err)
		}
	}
	return b.String(), nil
}

func rebaseNode(n *html.Node, dir string) {
	if n.Type == html.ElementNode {
		if key, ok := linkAttrs[n.DataAtom]; ok {
			for i := range n.Attr {
				if n.Attr[i].Key == key && isLocalTarget(n.Attr[i].Val) {
					n.Attr[i].Val = fileURL(filepath.Join(dir, filepath.FromSlash(n.Attr[i].Val)))
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, dir)
	}
}

// isLocalTarget reports whether target is a relative file path.
func isLocalTarget(target string) bool {
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return false
	}
	if u, err := url.Parse(target); err != nil || u.Scheme != "" {
		return false
	}
	return !filepath.IsAbs(target) && !strings.HasPrefix(target, "/")
}

func fileURL(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		p = "/" + p // C:/x becomes /C:/x
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
