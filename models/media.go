package models

import "time"

// MediaFile, yüklenen her dosya için tutulan kayıt.
// Dosyanın kendisi diskte uploads/<folder>/ altında durur; bu tablo
// admin panelindeki medya listesi ve temizlik için envanterdir.
type MediaFile struct {
	ID        string    `json:"id"`
	Folder    string    `json:"folder"`
	Filename  string    `json:"filename"`
	FileURL   string    `json:"file_url"`
	MimeType  string    `json:"mime_type"`
	FileSize  int64     `json:"file_size"`
	CreatedAt time.Time `json:"created_at"`
}
