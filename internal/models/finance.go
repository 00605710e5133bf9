package models

type FinanceStatus string

const (
	FinancePending  FinanceStatus = "PENDENTE"
	FinancePaid     FinanceStatus = "PAGO"
	FinanceCanceled FinanceStatus = "CANCELADO"
)

// FinanceEntry é um lançamento do caixa, independente de agendamentos.
type FinanceEntry struct {
	ID            ID            `json:"id"`
	Description   string        `json:"descricao"`
	PaymentMethod string        `json:"tipo_pagamento"`
	Price         float64       `json:"preco"`
	Status        FinanceStatus `json:"status"`
	Category      string        `json:"categoria"`
	CreatedAt     Timestamp     `json:"data_criacao"`
}

type FinanceInput struct {
	Description   string        `json:"descricao" binding:"required"`
	PaymentMethod string        `json:"tipo_pagamento" binding:"required"`
	Price         float64       `json:"preco"`
	Status        FinanceStatus `json:"status"`
	Category      string        `json:"categoria"`
}
