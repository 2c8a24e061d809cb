package dto

// NavigationResponse decisión de la guardia para una ruta.
type NavigationResponse struct {
	Path       string `json:"path"`
	State      string `json:"state"`
	Allowed    bool   `json:"allowed"`
	Outcome    string `json:"outcome"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// RouteResponse entrada de la tabla de rutas.
type RouteResponse struct {
	Path      string `json:"path"`
	Title     string `json:"title"`
	AdminOnly bool   `json:"admin_only"`
}
