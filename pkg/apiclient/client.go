// Package apiclient implementa el lado cliente de la autenticación: login y
// logout contra la API, el hecho de usuario en memoria rehidratado desde el
// store persistente, y el gating de rutas. No es una frontera de seguridad:
// el servidor no valida la sesión, igual que el frontend original.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"
)

// User hecho de usuario autenticado tal como lo devuelve POST /api/login.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Rutas públicas: todo lo demás exige usuario autenticado.
const (
	RouteLogin    = "/login"
	RouteRegister = "/register"
)

// Client mantiene el estado de autenticación del lado cliente.
type Client struct {
	baseURL string
	httpc   *http.Client
	store   SessionStore

	mu   sync.RWMutex
	user *User
}

// New construye el cliente y rehidrata la sesión desde el store: si hay un
// usuario guardado se considera autenticado, sin chequeo de expiración ni
// validación contra el servidor.
func New(baseURL string, store SessionStore) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
		store:   store,
	}
	if store != nil {
		if u, err := store.Load(); err == nil && u != nil {
			c.user = u
		}
	}
	return c
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// Login envía las credenciales al servidor. Si el login es exitoso guarda el
// usuario en memoria y en el store persistente y devuelve true. Cualquier
// fallo (HTTP no-2xx, transporte, JSON) devuelve false; nunca retorna error.
func (c *Client) Login(ctx context.Context, email, password string) bool {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return false
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false
	}

	c.mu.Lock()
	c.user = &out.User
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Save(&out.User)
	}
	return true
}

// Logout limpia el usuario en memoria y el store persistente.
func (c *Client) Logout() {
	c.mu.Lock()
	c.user = nil
	c.mu.Unlock()
	if c.store != nil {
		_ = c.store.Clear()
	}
}

// CurrentUser devuelve el usuario autenticado, o nil.
func (c *Client) CurrentUser() *User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

// IsAuthenticated indica si hay un hecho de usuario presente.
func (c *Client) IsAuthenticated() bool {
	return c.CurrentUser() != nil
}

// Allowed decide si la ruta es accesible con el estado actual: login y
// registro siempre lo son, el resto solo con usuario autenticado.
func (c *Client) Allowed(route string) bool {
	if route == RouteLogin || route == RouteRegister {
		return true
	}
	return c.IsAuthenticated()
}

// RedirectTarget devuelve la ruta de redirección para una ruta no permitida,
// o cadena vacía si el acceso procede.
func (c *Client) RedirectTarget(route string) string {
	if c.Allowed(route) {
		return ""
	}
	return RouteLogin
}

// ShowUserAdmin indica si se muestra el enlace de administración de usuarios.
// Solo oculta UI para no-admins; el servidor no lo verifica.
func (c *Client) ShowUserAdmin() bool {
	u := c.CurrentUser()
	return u != nil && u.Role == "admin"
}
