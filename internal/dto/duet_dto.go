package dto

type CustomDuetRequest struct {
	Musician    string `query:"musician" validate:"required"`
	Author      string `query:"author" validate:"required"`
	FilterLevel string `query:"filter_level" validate:"omitempty,oneof=none hi"`
}

type DuetResponse struct {
	Author   string   `json:"author"`
	Musician string   `json:"musician"`
	Mashup   []string `json:"mashup"`
}

type PairingResponse struct {
	Author     string   `json:"author"`
	Musician   string   `json:"musician"`
	NewsSource string   `json:"news_source"`
	Mashup     []string `json:"mashup"`
}
