package dto

// UploadResponse salida de la subida de una imagen.
type UploadResponse struct {
	ImageID     string `json:"imageId"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
}
