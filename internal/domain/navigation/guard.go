// Package navigation tabla de rutas del sitio y guardia de acceso por estado de sesión.
package navigation

import (
	"net/url"
	"strings"
)

// Rutas del sitio.
const (
	RouteHome         = "/"
	RouteCatalogo     = "/catalogo"
	RouteNosotros     = "/nosotros"
	RouteContacto     = "/contacto"
	RouteAsistente    = "/asistente"
	RouteLogin        = "/login"
	RouteInventario   = "/inventario"
	RouteClientes     = "/clientes"
	RouteCotizaciones = "/cotizaciones"
)

// Access nivel de acceso de una ruta.
type Access int

const (
	Public Access = iota
	AdminOnly
)

// Route entrada de la tabla.
type Route struct {
	Path   string
	Title  string
	Access Access
}

// Routes tabla completa en orden de menú.
var Routes = []Route{
	{Path: RouteHome, Title: "Inicio", Access: Public},
	{Path: RouteCatalogo, Title: "Catálogo", Access: Public},
	{Path: RouteNosotros, Title: "Nosotros", Access: Public},
	{Path: RouteContacto, Title: "Contacto", Access: Public},
	{Path: RouteAsistente, Title: "Asistente", Access: Public},
	{Path: RouteLogin, Title: "Iniciar sesión", Access: Public},
	{Path: RouteInventario, Title: "Inventario", Access: AdminOnly},
	{Path: RouteClientes, Title: "Clientes", Access: AdminOnly},
	{Path: RouteCotizaciones, Title: "Cotizaciones", Access: AdminOnly},
}

// Lookup busca una ruta por path exacto (sin barra final salvo la raíz).
func Lookup(path string) (Route, bool) {
	path = normalize(path)
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// PublicRoutes rutas públicas indexables (excluye /login).
func PublicRoutes() []Route {
	out := make([]Route, 0, len(Routes))
	for _, r := range Routes {
		if r.Access == Public && r.Path != RouteLogin {
			out = append(out, r)
		}
	}
	return out
}

func normalize(path string) string {
	if path == "" {
		return RouteHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// SessionState estado de sesión visto por la guardia.
type SessionState string

const (
	Anonymous           SessionState = "anonymous"
	AuthenticatedClient SessionState = "authenticated-client"
	AuthenticatedAdmin  SessionState = "authenticated-admin"
)

// Outcome resultado de la guardia.
type Outcome string

const (
	Allow             Outcome = "allow"
	RedirectLogin     Outcome = "redirect_login"
	RedirectHome      Outcome = "redirect_home"
	UnknownRouteAllow Outcome = "unknown"
)

// Decision resultado con destino de redirección cuando aplica.
type Decision struct {
	Path       string
	Outcome    Outcome
	RedirectTo string
}

// Allowed indica si la navegación procede.
func (d Decision) Allowed() bool {
	return d.Outcome == Allow || d.Outcome == UnknownRouteAllow
}

// Decide anónimo en ruta protegida va a /login?from=<ruta>; cliente en ruta de admin va a "/".
// Las rutas desconocidas no se protegen.
func Decide(state SessionState, path string) Decision {
	path = normalize(path)
	r, ok := Lookup(path)
	if !ok {
		return Decision{Path: path, Outcome: UnknownRouteAllow}
	}
	if r.Access == Public {
		return Decision{Path: path, Outcome: Allow}
	}
	switch state {
	case AuthenticatedAdmin:
		return Decision{Path: path, Outcome: Allow}
	case AuthenticatedClient:
		return Decision{Path: path, Outcome: RedirectHome, RedirectTo: RouteHome}
	default:
		return Decision{Path: path, Outcome: RedirectLogin, RedirectTo: LoginURL(path)}
	}
}

// LoginURL /login?from=<ruta>.
func LoginURL(from string) string {
	return RouteLogin + "?from=" + url.QueryEscape(normalize(from))
}

// AfterLogin destino tras un login exitoso: la ruta de origen si el nuevo estado puede verla, si no "/".
func AfterLogin(state SessionState, from string) string {
	if from == "" {
		return RouteHome
	}
	d := Decide(state, from)
	if d.Outcome != Allow || d.Path == RouteLogin {
		return RouteHome
	}
	return d.Path
}
