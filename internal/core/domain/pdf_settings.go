package domain

// PDFTemplateSettings stores one user's invoice PDF layout preferences.
// Settings is an opaque JSON object owned by the client.
type PDFTemplateSettings struct {
	ID       string
	UserID   string
	Settings map[string]any
	Timestamps
}
