package models

import "encoding/json"

// OrderProduct is one product line inside a server-recorded order.
// Each line is independently markable as prepared by kitchen staff.
type OrderProduct struct {
	IDProdotto int     `json:"idProdotto"`
	Nome       string  `json:"nome"`
	Quantita   int     `json:"quantita"`
	Prezzo     float64 `json:"prezzo"`
	Preparato  bool    `json:"preparato"`
}

// Ordine is a class- or professor-scoped order owned by the server.
// Prodotti is kept raw on the wire type so a malformed sub-list can be
// coerced to empty without failing the whole fetch; see OrdineWire.
type Ordine struct {
	IDOrdine   int            `json:"idOrdine"`
	Data       string         `json:"data"`
	NTurno     int            `json:"nTurno"`
	Giorno     string         `json:"giorno"`
	User       int            `json:"user"`
	Classe     string         `json:"classe"`
	Confermato bool           `json:"confermato"`
	Preparato  bool           `json:"preparato"`
	OraRitiro  *string        `json:"oraRitiro,omitempty"`
	Prodotti   []OrderProduct `json:"prodotti"`
	UserRole   string         `json:"userRole,omitempty"`
	UserData   *Utente        `json:"userData,omitempty"`
}

// OrdineWire is the tolerant decode target for /ordini/classi responses.
type OrdineWire struct {
	IDOrdine   int             `json:"idOrdine"`
	Data       string          `json:"data"`
	NTurno     int             `json:"nTurno"`
	Giorno     string          `json:"giorno"`
	User       int             `json:"user"`
	Classe     string          `json:"classe"`
	Confermato bool            `json:"confermato"`
	Preparato  bool            `json:"preparato"`
	OraRitiro  *string         `json:"oraRitiro"`
	Prodotti   json.RawMessage `json:"prodotti"`
}

// OwnOrder is the caller's own order for a shift, as returned by /ordini/me.
type OwnOrder struct {
	IDOrdine   int            `json:"idOrdine"`
	NTurno     int            `json:"nTurno"`
	Confermato bool           `json:"confermato"`
	Prodotti   []OrderProduct `json:"prodotti"`
}
