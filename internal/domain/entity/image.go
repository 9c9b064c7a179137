package entity

import "time"

// Image es un archivo de imagen almacenado en la base de datos, asociado
// opcionalmente a un producto. Reemplaza al bucket de archivos del sistema anterior.
type Image struct {
	ID          string
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
	UploadedAt  time.Time
}
