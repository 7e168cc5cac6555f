package mime

import (
	"strings"
)

type Type int32

const (
	TypeUnknown Type = iota - 1

	TypeText
	TypeImage
	TypePath
	TypeHTML

	TypeAudio
	TypeVideo
	TypeBinary
)

func (t Type) IsImage() bool { return t == TypeImage }
func (t Type) IsText() bool  { return t == TypeText }
func (t Type) IsPath() bool  { return t == TypePath }
func (t Type) IsHTML() bool  { return t == TypeHTML }

func (t Type) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeImage:
		return "image"
	case TypePath:
		return "path"
	case TypeHTML:
		return "html"
	case TypeAudio:
		return "audio"
	case TypeVideo:
		return "video"
	case TypeBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Targets as advertised by Wayland and X11 clipboard owners.
const (
	URIList    = "text/uri-list"
	HTML       = "text/html"
	PlainUTF8  = "text/plain;charset=utf-8"
	Plain      = "text/plain"
	UTF8String = "UTF8_STRING"
	String     = "STRING"

	ImagePrefix = "image/"
	TextPrefix  = "text/"

	// Default is selected when nothing better is advertised.
	Default = PlainUTF8
)

type rule struct {
	target string
	prefix bool
}

func (r rule) match(t string) bool {
	if r.prefix {
		return strings.HasPrefix(t, r.target)
	}
	return t == r.target
}

// priority is shared by both backends, otherwise propagation stops being symmetric.
var priority = []rule{
	{target: URIList},
	{target: HTML},
	{target: ImagePrefix, prefix: true},
	{target: PlainUTF8},
	{target: Plain},
	{target: UTF8String},
}

// Select picks the single target to read out of the advertised ones.
// It never fails: when no rule matches, Default is returned and the caller
// reads it anyway.
func Select(available []string) string {
	targets := Unique(available)

	for _, r := range priority {
		for _, t := range targets {
			if r.match(t) {
				return t
			}
		}
	}

	return Default
}

// Unique drops repeated targets, keeping the first-seen order.
func Unique(available []string) []string {
	seen := make(map[string]struct{}, len(available))
	res := make([]string, 0, len(available))

	for _, t := range available {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		res = append(res, t)
	}

	return res
}

// IsText reports whether data of type m is compared as text.
func IsText(m string) bool {
	return m == UTF8String || m == String || strings.HasPrefix(m, TextPrefix)
}

var pathTypes = map[string]struct{}{
	URIList:                        {},
	"x-special/gnome-copied-files": {},
}

// AsType classifies a target for log output.
func AsType(m string) Type {
	ct := strings.ToLower(strings.TrimSpace(m))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}

	if _, ok := pathTypes[ct]; ok {
		return TypePath
	}

	switch {
	case ct == "":
		return TypeUnknown
	case ct == HTML:
		return TypeHTML
	case strings.HasPrefix(ct, ImagePrefix):
		return TypeImage
	case strings.HasPrefix(ct, TextPrefix), ct == "utf8_string", ct == "string", ct == "text":
		return TypeText
	case strings.HasPrefix(ct, "video/"):
		return TypeVideo
	case strings.HasPrefix(ct, "audio/"):
		return TypeAudio
	default:
		return TypeBinary
	}
}
