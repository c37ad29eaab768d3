package models

// BulkRow is one CSV row resolved into a dispatcher input. Line is the
// 1-based CSV line number the row came from (header excluded).
type BulkRow struct {
	Line        int       `json:"line"`
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Content     QRContent `json:"content"`
}

// BulkItem is the per-row outcome of a bulk generation run. Rows that fail
// gating keep their position with Error set; valid rows carry the payload.
type BulkItem struct {
	Line    int    `json:"line"`
	Title   string `json:"title,omitempty"`
	Payload string `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// BulkResponse is the body returned by POST /api/bulk/csv.
type BulkResponse struct {
	Items  []BulkItem `json:"items"`
	Total  int        `json:"total"`
	Failed int        `json:"failed"`
}
