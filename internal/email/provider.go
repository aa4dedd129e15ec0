package email

// Provider abstracts outbound email delivery.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// SendVerificationCode mails a verification code to the address.
	SendVerificationCode(to string, code string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders mail bodies from named templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
	LoadTemplates(dirPath string) error
}
