package models

// NoTurno is the sentinel value meaning no shift has been selected yet.
const NoTurno = -1

// Turno represents one ordering/pickup window as returned by the remote API.
// Entries are immutable client-side and replaced wholesale on every refetch.
type Turno struct {
	N               int    `json:"n"`
	Nome            string `json:"nome"`
	Giorno          string `json:"giorno"` // 3-letter Italian weekday: lun, mar, mer, gio, ven, sab, dom
	OraInizioOrdine string `json:"oraInizioOrdine"`
	OraFineOrdine   string `json:"oraFineOrdine"`
	OraInizioRitiro string `json:"oraInizioRitiro"`
	OraFineRitiro   string `json:"oraFineRitiro"`
}
