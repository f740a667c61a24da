package models

import "encoding/json"

// ProdottoWire is a product as the remote API serializes it. Prezzo
// arrives as a string and attivo/bevanda as 0/1 integers.
type ProdottoWire struct {
	IDProdotto    int         `json:"idProdotto"`
	Nome          string      `json:"nome"`
	Descrizione   string      `json:"descrizione"`
	Ingredienti   []string    `json:"ingredienti"`
	Prezzo        json.Number `json:"prezzo"`
	Quantita      int         `json:"quantita"`
	Disponibilita int         `json:"disponibilita"`
	Tags          []string    `json:"tags"`
	Attivo        int         `json:"attivo"`
	Bevanda       int         `json:"bevanda"`
}

// Product is the cleaned-up product the UI consumes.
type Product struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Ingredients   []string `json:"ingredients"`
	ImageSrc      string   `json:"imageSrc"`
	Price         float64  `json:"price"`
	Quantity      int      `json:"quantity"`
	Disponibility int      `json:"disponibility"`
	Tags          []string `json:"tags"`
	IsActive      bool     `json:"isActive"`
	Bevanda       bool     `json:"bevanda"`
}
