package wxr

import (
	"encoding/xml"
	"strings"
)

// Namespace URIs used by WordPress eXtended RSS exports
const (
	wpNamespacePrefix = "http://wordpress.org/export/"
	contentNamespace  = "http://purl.org/rss/1.0/modules/content/"
	dcNamespace       = "http://purl.org/dc/elements/1.1/"
)

// Namespace prefixes as they appear in exports
const (
	prefixNone    = ""
	prefixWP      = "wp"
	prefixContent = "content"
	prefixExcerpt = "excerpt"
	prefixDC      = "dc"
)

// Taxonomy domains on item category elements
const (
	domainCategory = "category"
	domainTag      = "post_tag"
)

// PostTypePost is the only post type that is imported
const PostTypePost = "post"

// node is one direct child of an item element
type node struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
}

func (n node) attr(local string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// item holds the children of one item element in document order
type item struct {
	children []node
}

// value returns the text of the first child matching prefix:local,
// falling back to the first bare child named local.
func (it item) value(prefix, local string) string {
	return it.valueAt(prefix, local, 0)
}

// valueAt is value with the bare fallback taking the nth bare match.
// content:encoded and excerpt:encoded both become "encoded" when prefixes are
// stripped, and exports always write the content first.
func (it item) valueAt(prefix, local string, bareIndex int) string {
	for _, n := range it.children {
		if n.XMLName.Local == local && namespacePrefix(n.XMLName.Space) == prefix {
			return strings.TrimSpace(n.Text)
		}
	}
	seen := 0
	for _, n := range it.children {
		if n.XMLName.Local != local || n.XMLName.Space != "" {
			continue
		}
		if seen == bareIndex {
			return strings.TrimSpace(n.Text)
		}
		seen++
	}
	return ""
}

// terms splits the item's category elements into categories and tags
func (it item) terms() (categories, tags []string) {
	categories = make([]string, 0)
	tags = make([]string, 0)
	for _, n := range it.children {
		if n.XMLName.Local != "category" || namespacePrefix(n.XMLName.Space) != prefixNone {
			continue
		}
		term := strings.TrimSpace(n.Text)
		if term == "" {
			continue
		}
		switch n.attr("domain") {
		case domainCategory:
			categories = append(categories, term)
		case domainTag:
			tags = append(tags, term)
		}
	}
	return categories, tags
}

// namespacePrefix maps a decoded namespace to its conventional prefix.
// Undeclared prefixes are reported by encoding/xml as the prefix itself.
func namespacePrefix(space string) string {
	switch {
	case space == "":
		return prefixNone
	case space == prefixWP, space == prefixContent, space == prefixExcerpt, space == prefixDC:
		return space
	case strings.HasPrefix(space, wpNamespacePrefix) && strings.Contains(space, "/excerpt"):
		return prefixExcerpt
	case strings.HasPrefix(space, wpNamespacePrefix):
		return prefixWP
	case space == contentNamespace:
		return prefixContent
	case space == dcNamespace:
		return prefixDC
	default:
		return space
	}
}
