package entity

import "time"

// Establishment é o escopo de tenant/loja: todo registro é particionado por ele.
type Establishment struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
