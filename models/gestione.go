package models

// Gestione is an administrative unit that owns products and users.
type Gestione struct {
	IDGestione int    `json:"idGestione"`
	Nome       string `json:"nome"`
}

// GestioneUser is a user as listed under /gestioni/{id}/utenti.
type GestioneUser struct {
	IDUtente int    `json:"idUtente"`
	Mail     string `json:"mail"`
	Ruolo    string `json:"ruolo"`
	Classe   string `json:"classe,omitempty"`
	Bannato  bool   `json:"bannato,omitempty"`
	FotoURL  string `json:"foto_url,omitempty"`
	Username string `json:"username,omitempty"`
}
