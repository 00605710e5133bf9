package validators

import (
	"strings"

	"github.com/BruksfildServices01/salon-console/internal/httperr"
)

const MissingFieldsMessage = "Preencha todos os campos obrigatórios!"

// Required falha se algum dos valores estiver em branco.
func Required(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return httperr.ErrBusinessMsg("missing_fields", MissingFieldsMessage)
		}
	}
	return nil
}
