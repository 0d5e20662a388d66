package domain

import "fmt"

// SideEffect é a falha de um efeito colateral best-effort (registro de
// produtividade, resumo de sessão de contagem). A operação primária não
// falha por causa dela: o chamador recebe o valor e decide logar e ignorar
// — a permissão de falhar em silêncio fica visível no código.
type SideEffect struct {
	Op  string
	Err error
}

func (s SideEffect) Error() string {
	return fmt.Sprintf("efeito colateral %s: %v", s.Op, s.Err)
}

func (s SideEffect) Unwrap() error { return s.Err }
