package recipe

import (
	"net/url"
	"strings"

	"beautypulse-backend/internal/intent"
)

// BuildQuery renders recipe parameters as the query string the recipe
// builder view reads on load. Field order is fixed (audio, keyword,
// platform, audience, action) and empty fields are omitted.
func BuildQuery(p intent.Params) string {
	var b strings.Builder
	add := func(key, val string) {
		if val == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(val))
	}
	add("audio", p.Audio)
	add("keyword", p.Keyword)
	add("platform", p.Platform)
	add("audience", p.Audience)
	add("action", p.Action)
	return b.String()
}

// ParseQuery reads recipe parameters back out of a query string produced by
// BuildQuery (or typed into the recipe builder URL by hand).
func ParseQuery(query string) (intent.Params, error) {
	values, err := url.ParseQuery(query)
	if err != nil {
		return intent.Params{}, err
	}
	return intent.Params{
		Audio:    values.Get("audio"),
		Keyword:  values.Get("keyword"),
		Platform: values.Get("platform"),
		Audience: values.Get("audience"),
		Action:   values.Get("action"),
	}, nil
}
