package vite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeAttrs(t *testing.T) {
	t.Run("defaults only", func(t *testing.T) {
		merged := mergeAttrs(scriptAttrs(), nil)
		assert.Equal(t, []attr{{"type", "module"}, {"crossorigin", ""}}, merged)
	})

	t.Run("caller overrides default in place", func(t *testing.T) {
		merged := mergeAttrs(scriptAttrs(), Attrs{"crossorigin": "anonymous"})
		assert.Equal(t, []attr{{"type", "module"}, {"crossorigin", "anonymous"}}, merged)
	})

	t.Run("new keys appended sorted", func(t *testing.T) {
		merged := mergeAttrs(scriptAttrs(), Attrs{"id": "app", "defer": ""})
		assert.Equal(t, []attr{
			{"type", "module"},
			{"crossorigin", ""},
			{"defer", ""},
			{"id", "app"},
		}, merged)
	})
}

func TestRenderScriptTag(t *testing.T) {
	t.Run("src is always last", func(t *testing.T) {
		tag := renderScriptTag("/static/main.js", scriptAttrs())
		assert.Equal(t, `<script type="module" crossorigin="" src="/static/main.js"></script>`, tag)
	})

	t.Run("escapes attribute values", func(t *testing.T) {
		tag := renderScriptTag("/static/a.js?x=1&y=2", []attr{{"data-title", `say "hi" <now>`}})
		assert.Equal(t, `<script data-title="say &#34;hi&#34; &lt;now&gt;" src="/static/a.js?x=1&amp;y=2"></script>`, tag)
	})
}

func TestRenderStylesheetTag(t *testing.T) {
	tag := renderStylesheetTag("/static/assets/main.css")
	assert.Equal(t, `<link rel="stylesheet" href="/static/assets/main.css" />`, tag)
}
