package models

// QRCode is one pickup token for the selected shift, from /qr/me.
type QRCode struct {
	Token    string  `json:"token"`
	Nome     string  `json:"nome"`
	Totale   float64 `json:"totale"`
	Ritirato bool    `json:"ritirato"`
}
