package constvars

const (
	RegexPhoneNumber = `^\+\d{10,15}$`
)
