package domain

// Identity is the authenticated principal a request acts as. It is
// resolved once at the transport boundary and passed explicitly into
// services.
type Identity struct {
	UserID  string
	IsAdmin bool
}
