package fudodomain

// AuthRequest é o corpo enviado ao endpoint de autenticação da Fudo
type AuthRequest struct {
	APIKey    string `json:"apiKey"`
	APISecret string `json:"apiSecret"`
}

// AuthResponse é a resposta do endpoint de autenticação: um bearer token
// válido por 24 horas e o instante de expiração em epoch seconds
type AuthResponse struct {
	Token string `json:"token"`
	Exp   int64  `json:"exp"`
}
