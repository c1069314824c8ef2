package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

type ImageFormat struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Image struct {
	ID              int                    `json:"id,omitempty"`
	URL             string                 `json:"url"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	Name            string                 `json:"name,omitempty"`
	Width           int                    `json:"width,omitempty"`
	Height          int                    `json:"height,omitempty"`
	Formats         map[string]ImageFormat `json:"formats,omitempty"`
}

// Images is the media field of a menu item. The CMS has served it as a
// flat array, a single object, a {data: {attributes}} wrapper and a bare
// string depending on version and populate options; all of them decode
// into the same list.
type Images []Image

func (imgs *Images) UnmarshalJSON(data []byte) error {
	list, err := decodeImages(data)
	if err != nil {
		return err
	}
	*imgs = list
	return nil
}

func (imgs Images) First() (Image, bool) {
	for _, img := range imgs {
		if img.URL != "" {
			return img, true
		}
	}
	return Image{}, false
}

type imageEnvelope struct {
	ID         int             `json:"id"`
	Attributes json.RawMessage `json:"attributes"`
	Data       json.RawMessage `json:"data"`
}

func decodeImages(data []byte) (Images, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch data[0] {
	case '"':
		var url string
		if err := json.Unmarshal(data, &url); err != nil {
			return nil, err
		}
		if url == "" {
			return nil, nil
		}
		return Images{{URL: url}}, nil
	case '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}
		var out Images
		for _, raw := range raws {
			imgs, err := decodeImages(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, imgs...)
		}
		return out, nil
	case '{':
		var env imageEnvelope
		if err := json.Unmarshal(data, &env); err != nil {
			return nil, err
		}
		if env.Data != nil {
			return decodeImages(env.Data)
		}
		if env.Attributes != nil {
			var img Image
			if err := json.Unmarshal(env.Attributes, &img); err != nil {
				return nil, err
			}
			if img.ID == 0 {
				img.ID = env.ID
			}
			return Images{img}, nil
		}
		var img Image
		if err := json.Unmarshal(data, &img); err != nil {
			return nil, err
		}
		return Images{img}, nil
	}

	// numbers and booleans carry no media reference
	return nil, nil
}

// ResolveMediaURL makes a CMS media path absolute against mediaBase.
func ResolveMediaURL(mediaBase, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") || strings.HasPrefix(raw, "//") {
		return raw
	}
	return strings.TrimRight(mediaBase, "/") + "/" + strings.TrimLeft(raw, "/")
}
