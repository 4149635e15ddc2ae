package domain

// Storage keys for the persisted session. Two independent entries, matching
// the client storage contract.
const (
	SessionAuthKey = "isLoggedIn"
	SessionRoleKey = "userRole"
)

// KeyValueStore is the durable client-side storage the session is mirrored
// to. Implementations must tolerate missing keys by returning ("", false).
type KeyValueStore interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Session is the authentication state of one client context.
// Role is meaningful only while Authenticated is true.
type Session struct {
	Authenticated bool
	Role          Role
}

// Anonymous returns the logged-out session.
func Anonymous() Session {
	return Session{}
}

// Login returns the session produced by a successful authentication
// response carrying a role.
func Login(role Role) Session {
	if role == RoleAnonymous {
		return Anonymous()
	}
	return Session{Authenticated: true, Role: role}
}

// Logout transitions any session back to anonymous.
func (s Session) Logout() Session {
	return Anonymous()
}

// Save mirrors the session to durable storage as two independent entries.
func (s Session) Save(store KeyValueStore) {
	if !s.Authenticated {
		store.Delete(SessionAuthKey)
		store.Delete(SessionRoleKey)
		return
	}
	store.Set(SessionAuthKey, "true")
	store.Set(SessionRoleKey, s.Role.String())
}

// LoadSession rehydrates a session from storage. Any inconsistency (missing
// auth flag, unparseable role, stale "null"/"undefined" strings) degrades to
// the anonymous session rather than an error.
func LoadSession(store KeyValueStore) Session {
	flag, ok := store.Get(SessionAuthKey)
	if !ok || flag != "true" {
		return Anonymous()
	}
	roleStr, _ := store.Get(SessionRoleKey)
	role := ParseRole(roleStr)
	if role == RoleAnonymous {
		// Authenticated flag without a usable role is not a valid state.
		return Anonymous()
	}
	return Session{Authenticated: true, Role: role}
}
