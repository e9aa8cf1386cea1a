package mailer

// Mailer sends provider-side email templates identified by id.
type Mailer interface {
	SendMail(to string, id string, data map[string]any) error
	SendMailAsync(to string, id string, data map[string]any, operationName string)
}
