package models

type Perfil string

const (
	PerfilAdmin        Perfil = "admin"
	PerfilProfissional Perfil = "profissional"
)

// IsStaff reconhece também o "PROFISSIONAL" em caixa alta que algumas
// versões do backend devolvem.
func (p Perfil) IsStaff() bool {
	return p == PerfilProfissional || p == "PROFISSIONAL"
}

type Professional struct {
	ID       ID       `json:"id_profissional,omitempty"`
	Name     string   `json:"nome"`
	Email    string   `json:"email"`
	Role     string   `json:"cargo"`
	Schedule string   `json:"horario,omitempty"`
	Services []string `json:"servicos"`
	Perfil   Perfil   `json:"perfil"`
}

type ProfessionalInput struct {
	Name     string   `json:"nome" binding:"required"`
	Email    string   `json:"email" binding:"required"`
	Role     string   `json:"cargo" binding:"required"`
	Schedule string   `json:"horario,omitempty"`
	Services []string `json:"servicos"`
	Password string   `json:"senha,omitempty"`
	Perfil   Perfil   `json:"perfil"`
}
