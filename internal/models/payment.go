package models

type Payment struct {
	ID            ID        `json:"id"`
	AppointmentID ID        `json:"agendamentoId"`
	Amount        float64   `json:"valor"`
	AmountPaid    float64   `json:"valorPago"`
	Method        string    `json:"formaPagamento"`
	Status        string    `json:"status,omitempty"`
	PaidAt        Timestamp `json:"dataPagamento"`
}

type PaymentInput struct {
	AppointmentID string  `json:"agendamentoId" binding:"required"`
	Amount        float64 `json:"valor"`
	AmountPaid    float64 `json:"valorPago"`
	Method        string  `json:"formaPagamento" binding:"required"`
	Status        string  `json:"status,omitempty"`
	PaidAt        string  `json:"dataPagamento,omitempty"`
}
