package wxr

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/verdante/import-service/internal/normalize"
	"github.com/verdante/import-service/internal/parsers/charset"
	"github.com/verdante/import-service/internal/types"
)

// ErrInvalidDocument is returned for input that cannot be parsed as XML
var ErrInvalidDocument = errors.New("invalid XML document")

// Parse reads a WordPress export and returns its blog posts.
// Items of any other post type are skipped; posts without a title are dropped.
// A document without posts is not an error.
func Parse(content []byte) (*types.BlogParseResult, error) {
	items, err := decodeItems(content)
	if err != nil {
		return nil, err
	}

	result := &types.BlogParseResult{
		Records:    make([]types.BlogRecord, 0, len(items)),
		TotalItems: len(items),
	}

	for i, it := range items {
		postType := it.value(prefixWP, "post_type")
		if postType != PostTypePost {
			log.Debug().Int("item", i+1).Str("postType", postType).Msg("Skipping non-post item")
			result.Skipped++
			continue
		}

		categories, tags := it.terms()
		record, ok := normalize.BlogPost(normalize.BlogFields{
			Title:      it.value(prefixNone, "title"),
			Content:    it.valueAt(prefixContent, "encoded", 0),
			Excerpt:    it.valueAt(prefixExcerpt, "encoded", 1),
			Slug:       it.value(prefixWP, "post_name"),
			Date:       it.value(prefixWP, "post_date"),
			Author:     it.value(prefixDC, "creator"),
			Status:     it.value(prefixWP, "status"),
			Categories: categories,
			Tags:       tags,
		})
		if !ok {
			result.Dropped++
			continue
		}
		result.Records = append(result.Records, record)
	}

	return result, nil
}

// decodeItems streams the document and collects every un-namespaced item
// element at any depth outside another item. Item bodies are opaque, so an
// item nested inside an item is never collected on its own.
func decodeItems(content []byte) ([]item, error) {
	decoder := xml.NewDecoder(bytes.NewReader(content))
	decoder.CharsetReader = charset.ReaderFor
	decoder.Entity = xml.HTMLEntity

	items := make([]item, 0)
	sawElement := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}

		start, ok := token.(xml.StartElement)
		if !ok {
			continue
		}
		sawElement = true
		if start.Name.Local != "item" || start.Name.Space != "" {
			continue
		}

		it, err := decodeItem(decoder)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		items = append(items, it)
	}

	if !sawElement {
		return nil, fmt.Errorf("%w: no root element", ErrInvalidDocument)
	}

	return items, nil
}

// decodeItem reads the direct children of an item up to its end element
func decodeItem(decoder *xml.Decoder) (item, error) {
	var it item
	for {
		token, err := decoder.Token()
		if err != nil {
			return it, err
		}

		switch t := token.(type) {
		case xml.StartElement:
			var n node
			if err := decoder.DecodeElement(&n, &t); err != nil {
				return it, err
			}
			it.children = append(it.children, n)
		case xml.EndElement:
			return it, nil
		}
	}
}
