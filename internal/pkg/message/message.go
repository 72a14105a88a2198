package message

const (
	KeysHeader      = "--- YOUR GENERATED KEYS ---"
	CopyInstruction = "Copy and paste these values into your .env file"
	SecretInvalid   = "%s must be set to your project's JWT secret, not the template placeholder"
)
