package vite

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

// Attrs is an open set of extra HTML attributes merged into generated
// tags. Caller values override generator defaults for the same key.
type Attrs map[string]string

// attr keeps attribute emission order deterministic; maps alone would
// shuffle the output between runs.
type attr struct {
	key   string
	value string
}

// scriptAttrs returns the default attributes for module script tags.
func scriptAttrs() []attr {
	return []attr{{"type", "module"}, {"crossorigin", ""}}
}

// legacyScriptAttrs returns the default attributes for legacy bundle
// script tags. nomodule keeps modern browsers from double-loading.
func legacyScriptAttrs() []attr {
	return []attr{{"nomodule", ""}, {"crossorigin", ""}}
}

// mergeAttrs overlays extra on defaults: a caller key matching a default
// overrides it in place, new keys are appended in sorted order.
func mergeAttrs(defaults []attr, extra Attrs) []attr {
	merged := make([]attr, len(defaults))
	copy(merged, defaults)

	extraKeys := make([]string, 0, len(extra))
	for key, value := range extra {
		overrode := false
		for i := range merged {
			if merged[i].key == key {
				merged[i].value = value
				overrode = true
				break
			}
		}
		if !overrode {
			extraKeys = append(extraKeys, key)
		}
	}
	sort.Strings(extraKeys)
	for _, key := range extraKeys {
		merged = append(merged, attr{key, extra[key]})
	}
	return merged
}

// renderScriptTag emits a <script> tag with src always last. Attribute
// values are HTML-escaped; keys are trusted (they come from the generator
// or the host template, not end users).
func renderScriptTag(src string, attrs []attr) string {
	var b strings.Builder
	b.WriteString("<script")
	for _, a := range attrs {
		fmt.Fprintf(&b, ` %s="%s"`, a.key, html.EscapeString(a.value))
	}
	fmt.Fprintf(&b, ` src="%s"></script>`, html.EscapeString(src))
	return b.String()
}

// renderStylesheetTag emits a <link rel="stylesheet"> tag.
func renderStylesheetTag(href string) string {
	return fmt.Sprintf(`<link rel="stylesheet" href="%s" />`, html.EscapeString(href))
}
