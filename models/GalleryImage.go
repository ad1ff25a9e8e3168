package models

// GalleryImage is one image in the festival gallery. Src is the canonical
// payload (remote URL or inline data URI); Base64Image is the legacy field
// some stored documents still carry.
type GalleryImage struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Src         string `json:"src"`
	Base64Image string `json:"base64Image,omitempty"`
	FileName    string `json:"fileName,omitempty"`
	FileSize    int64  `json:"fileSize,omitempty"`
	UploadedBy  string `json:"uploadedBy,omitempty"`
	UploadedAt  string `json:"uploadedAt,omitempty"`
}

// Normalize folds the legacy base64 variant into Src so internal code only
// ever sees one payload field
func (g *GalleryImage) Normalize() {
	if g.Src == "" && g.Base64Image != "" {
		g.Src = g.Base64Image
	}
	g.Base64Image = ""
}
