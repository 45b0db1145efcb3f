package dto

// ReportResponse points at a generated workbook uploaded to object storage.
type ReportResponse struct {
	FileName    string `json:"file_name"`
	URL         string `json:"url"`
	From        string `json:"from"`
	To          string `json:"to"`
	GeneratedAt string `json:"generated_at"`
}
