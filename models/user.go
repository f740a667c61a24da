package models

// Utente is a user profile as returned by /utenti/{id}.
type Utente struct {
	ID       int    `json:"id"`
	Nome     string `json:"nome"`
	Cognome  string `json:"cognome"`
	Mail     string `json:"mail"`
	Ruolo    string `json:"ruolo"`
	Classe   string `json:"classe,omitempty"`
	Username string `json:"username,omitempty"`
	FotoURL  string `json:"foto_url,omitempty"`
	Bannato  bool   `json:"bannato,omitempty"`
}

// SessionUser is the authenticated user held by the auth store.
// Ruolo drives every authorization decision; observed values:
// admin, terminale, prof, segreteria, paninaro, studente, gestore.
type SessionUser struct {
	Nome  string `json:"nome"`
	Foto  string `json:"foto"`
	Ruolo string `json:"ruolo"`
}
