package request

type UpdateWhatsApp struct {
	WhatsApp *string `json:"whatsapp" validate:"omitempty,e164"`
	Enabled  bool    `json:"enabled"`
}
