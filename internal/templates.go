package internal

import (
	"fmt"
	"html/template"

	"github.com/gofiber/template/html/v2"

	"github.com/bryan1001/govite/vite"
)

// RegisterViteHelpers registers the vite_* helpers on the view engine.
// This is the counterpart of a template tag library: templates call the
// helpers by name and the loader resolves assets at render time.
//
// Extra HTML attributes are passed as trailing key/value string pairs:
//
//	{{ vite_asset "main.js" "default" "defer" "" "id" "app" }}
//
// The helpers return template.HTML because the generated markup is
// trusted; attribute values are escaped by the loader itself.
func RegisterViteHelpers(engine *html.Engine, loader *vite.AssetLoader) {
	engine.AddFunc("vite_hmr_client", func(configName string) (template.HTML, error) {
		tag, err := loader.HMRClientTag(configName)
		return template.HTML(tag), err
	})

	engine.AddFunc("vite_asset", func(path, configName string, pairs ...string) (template.HTML, error) {
		attrs, err := attrsFromPairs(pairs)
		if err != nil {
			return "", err
		}
		tags, err := loader.AssetTags(path, configName, attrs)
		return template.HTML(tags), err
	})

	engine.AddFunc("vite_asset_url", func(path, configName string) (string, error) {
		return loader.AssetURL(path, configName)
	})

	engine.AddFunc("vite_legacy_polyfills", func(configName string, pairs ...string) (template.HTML, error) {
		attrs, err := attrsFromPairs(pairs)
		if err != nil {
			return "", err
		}
		tag, err := loader.LegacyPolyfillsTag(configName, attrs)
		return template.HTML(tag), err
	})

	engine.AddFunc("vite_legacy_asset", func(path, configName string, pairs ...string) (template.HTML, error) {
		attrs, err := attrsFromPairs(pairs)
		if err != nil {
			return "", err
		}
		tag, err := loader.LegacyAssetTag(path, configName, attrs)
		return template.HTML(tag), err
	})
}

func attrsFromPairs(pairs []string) (vite.Attrs, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("attributes require key value pairs, got %d values", len(pairs))
	}
	attrs := make(vite.Attrs, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		attrs[pairs[i]] = pairs[i+1]
	}
	return attrs, nil
}
