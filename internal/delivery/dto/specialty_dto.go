package dto

type SpecialtyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
