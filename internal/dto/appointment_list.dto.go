package dto

import "time"

type AppointmentListDTO struct {
	ID               string    `json:"id"`
	DateTime         time.Time `json:"data_hora"`
	Date             string    `json:"data"`
	Time             string    `json:"hora"`
	Status           string    `json:"status"`
	Service          string    `json:"servico"`
	ClientName       string    `json:"cliente"`
	ProfessionalName string    `json:"profissional"`
}
