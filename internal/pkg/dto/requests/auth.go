package requests

type AdminLogin struct {
	Passkey string `json:"passkey" validate:"required,min=6,max=64"`
}
