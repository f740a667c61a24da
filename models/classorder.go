package models

// ClassMember identifies the student behind one member order.
type ClassMember struct {
	ID   int    `json:"id"`
	Nome string `json:"nome"`
}

// MemberOrder is one student's order inside the class order of the day.
type MemberOrder struct {
	IDOrdine   int            `json:"idOrdine"`
	Confermato bool           `json:"confermato"`
	Totale     float64        `json:"totale"`
	User       ClassMember    `json:"user"`
	Prodotti   []OrderProduct `json:"prodotti"`
}

// OrdineClasse aggregates every member order of the caller's class for
// one shift, as returned by /ordini/classi/me/oggi.
type OrdineClasse struct {
	NTurno     int           `json:"nTurno"`
	Totale     float64       `json:"totale"`
	Confermato bool          `json:"confermato"`
	Ordini     []MemberOrder `json:"ordini"`
}
