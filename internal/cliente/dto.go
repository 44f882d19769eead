package cliente

// LoginRequest é usado em POST /clientes/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateClienteRequest é usado em POST /clientes
type CreateClienteRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Foto      string `json:"foto"`
	Senha     string `json:"senha"`
}

// UpdateClienteRequest é usado em PUT /clientes/me
// Campos como ponteiro permitem omitir no JSON se não quiser alterar
type UpdateClienteRequest struct {
	Nome      *string `json:"nome,omitempty"`
	Sobrenome *string `json:"sobrenome,omitempty"`
	Telefone  *string `json:"telefone,omitempty"`
	Foto      *string `json:"foto,omitempty"`
}
