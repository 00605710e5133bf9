package models

// User é o usuário logado, reconstruído a partir das claims do token.
type User struct {
	ID     ID     `json:"id"`
	Name   string `json:"nome"`
	Email  string `json:"email"`
	Perfil Perfil `json:"perfil"`
}

type Credentials struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type UserInput struct {
	Name     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"senha,omitempty"`
	Perfil   Perfil `json:"perfil"`
}
