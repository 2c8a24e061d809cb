// Package sitemap genera sitemap.xml (protocolo sitemaps.org 0.9) de las rutas públicas.
package sitemap

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/newtop/marmoleria-api/internal/domain/navigation"
)

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Build un <url> por ruta pública (sin /login) bajo baseURL. La raíz tiene prioridad 1.0.
func Build(baseURL string) ([]byte, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("sitemap: base URL vacía")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", namespace)

	for _, r := range navigation.PublicRoutes() {
		u := urlset.CreateElement("url")
		loc := baseURL + r.Path
		if r.Path == navigation.RouteHome {
			loc = baseURL + "/"
		}
		u.CreateElement("loc").SetText(loc)
		u.CreateElement("changefreq").SetText("weekly")
		priority := "0.8"
		if r.Path == navigation.RouteHome {
			priority = "1.0"
		}
		u.CreateElement("priority").SetText(priority)
	}

	doc.Indent(2)
	b, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("sitemap: serializar: %w", err)
	}
	return b, nil
}
