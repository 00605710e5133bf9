package models

// Cliente do salão. Não há login; os dados vivem no backend.
type Client struct {
	ID        ID        `json:"id_cliente,omitempty"`
	Name      string    `json:"nome"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"telefone"`
	BirthDate Timestamp `json:"dataNascimento"`
	CPF       string    `json:"cpf"`
}

type ClientInput struct {
	Name      string `json:"nome" binding:"required"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"telefone" binding:"required"`
	BirthDate string `json:"dataNascimento,omitempty"`
	CPF       string `json:"cpf" binding:"required"`
}
