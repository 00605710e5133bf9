package models

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "PENDENTE"
	AppointmentConfirmed AppointmentStatus = "CONFIRMADO"
	AppointmentCanceled  AppointmentStatus = "CANCELADO"
	AppointmentCompleted AppointmentStatus = "CONCLUIDO"
)

type Appointment struct {
	ID             ID                `json:"id"`
	DateTime       Timestamp         `json:"data_hora"`
	ClientID       ID                `json:"id_cliente"`
	ProfessionalID ID                `json:"id_profissional"`
	Service        string            `json:"servico"`
	Status         AppointmentStatus `json:"status"`
	ServicePrice   *float64          `json:"valor_servico,omitempty"`
	Notes          string            `json:"observacao,omitempty"`

	Client       *Client       `json:"cliente,omitempty"`
	Professional *Professional `json:"profissional,omitempty"`
}

type AppointmentInput struct {
	ClientID       ID                `json:"id_cliente" binding:"required"`
	ProfessionalID ID                `json:"id_profissional" binding:"required"`
	Service        string            `json:"servico" binding:"required"`
	DateTime       string            `json:"data_hora" binding:"required"`
	Status         AppointmentStatus `json:"status"`
	Notes          string            `json:"observacao,omitempty"`
}
