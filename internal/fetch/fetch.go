// Package fetch discovers and downloads ARFF files linked from a
// dataset-repository HTML index page.
package fetch

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Links parses an HTML page and returns the absolute URLs of every
// hyperlink pointing at a .arff file, in document order and without
// duplicates.
func Links(r io.Reader, base *url.URL) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []string
	seen := make(map[string]struct{})

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				href := strings.TrimSpace(attr.Val)
				if !strings.HasSuffix(strings.ToLower(href), ".arff") {
					continue
				}
				u, err := url.Parse(href)
				if err != nil {
					continue
				}
				if base != nil {
					u = base.ResolveReference(u)
				}
				abs := u.String()
				if _, dup := seen[abs]; dup {
					continue
				}
				seen[abs] = struct{}{}
				links = append(links, abs)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return links, nil
}

// Index downloads the page at pageURL and extracts its .arff links.
func Index(pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %s: %w", pageURL, err)
	}

	resp, err := http.Get(pageURL)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", pageURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get %s: status %d", pageURL, resp.StatusCode)
	}

	return Links(resp.Body, base)
}

// Download fetches one file into destDir, naming it after the last
// path element of the URL, and returns the local path.
func Download(fileURL, destDir string) (string, error) {
	u, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("parse url %s: %w", fileURL, err)
	}
	name := path.Base(u.Path)
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("no file name in url %s", fileURL)
	}

	resp, err := http.Get(fileURL)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", fileURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("get %s: status %d", fileURL, resp.StatusCode)
	}

	dest := filepath.Join(destDir, name)
	out, err := os.Create(dest)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	return dest, nil
}
