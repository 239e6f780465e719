package models

type Doctor struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}
