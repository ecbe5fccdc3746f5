package entity

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tipos de operação válidos para Movement.
const (
	MovementKindIn  = "Entrada"
	MovementKindOut = "Saída"
)

// Movement é um lançamento do livro de movimentações. Criado somente pela
// transação de movimentação; imutável depois disso e nunca removido.
type Movement struct {
	ID        int64
	UserID    int64
	ProductID int64
	Date      time.Time
	Kind      string // Entrada | Saída
	Quantity  int    // sempre positivo; o sinal é dado pelo tipo
	CreatedAt time.Time
}

// MovementDetail é a visão do movimento com os nomes de produto e usuário,
// usada pelo painel de gestão de estoque (join read-only).
type MovementDetail struct {
	Movement
	ProductName string
	UserName    string
}

// ParseMovementKind normaliza a entrada do formulário para um tipo canônico.
// Aceita variações de caixa e sem acento ("saida" -> "Saída").
func ParseMovementKind(s string) (string, bool) {
	switch foldKind(s) {
	case "entrada":
		return MovementKindIn, true
	case "saida":
		return MovementKindOut, true
	}
	return "", false
}

// foldKind remove acentos (NFD + descarte das marcas combinantes) e baixa a caixa.
func foldKind(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
