package entity

import "time"

// OrderStatusEvent é um evento imutável da linha do tempo do pedido.
// Cada transição de status (exceto a criação direta) gera exatamente um evento.
type OrderStatusEvent struct {
	ID         string
	OrderID    string
	FromStatus string
	ToStatus   string
	Label      string // rótulo legível opcional (ex.: "reaberto")
	Visible    bool
	Note       string
	ActorID    string
	ActorRole  string
	CreatedAt  time.Time
}
