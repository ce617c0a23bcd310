package domain

import "time"

// GalleryItem stores the photo itself as a base64 payload, matching what the
// frontend uploads.
type GalleryItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"judul"`
	Description string    `json:"deskripsi"`
	Photo       string    `json:"foto"`
	Category    string    `json:"kategori"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
